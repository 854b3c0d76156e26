package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

func (s *Store) GetChallenge(date string) (models.DailyChallenge, error) {
	row := s.db.QueryRow(`
		SELECT date, type, description, target, progress, completed, xp_reward, completed_at
		FROM daily_challenges WHERE date = ?`, date)

	var c models.DailyChallenge
	var ctype string
	var completedAt sql.NullString
	err := row.Scan(&c.Date, &ctype, &c.Description, &c.Target, &c.Progress,
		&c.Completed, &c.XPReward, &completedAt)
	if err != nil {
		return models.DailyChallenge{}, err
	}
	c.Type = constants.ChallengeType(ctype)
	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return models.DailyChallenge{}, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		c.CompletedAt = &t
	}
	return c, nil
}

func (s *Store) SaveChallenge(c models.DailyChallenge) error {
	var completedAt interface{}
	if c.CompletedAt != nil {
		completedAt = c.CompletedAt.Format(time.RFC3339)
	}
	_, err := s.db.Exec(`
		INSERT INTO daily_challenges (date, type, description, target, progress, completed, xp_reward, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			progress = excluded.progress,
			completed = excluded.completed,
			completed_at = excluded.completed_at`,
		c.Date, string(c.Type), c.Description, c.Target, c.Progress,
		c.Completed, c.XPReward, completedAt)
	return err
}

func (s *Store) CountCompletedChallenges() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM daily_challenges WHERE completed").Scan(&count)
	return count, err
}
