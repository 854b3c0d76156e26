package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	return models.MapToSettings(data)
}

func (s *Store) SaveSettings(settings models.Settings) error {
	for key, value := range models.SettingsToMap(settings) {
		_, err := s.db.Exec(`
			INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) AddIntake(record models.IntakeRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO intake_records (id, date, kind, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.Date, string(record.Kind), record.Amount,
		record.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetIntakesForDay(date string) ([]models.IntakeRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, date, kind, amount, created_at
		FROM intake_records WHERE date = $1 ORDER BY created_at`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.IntakeRecord
	for rows.Next() {
		var r models.IntakeRecord
		var kind, createdAt string
		if err := rows.Scan(&r.ID, &r.Date, &kind, &r.Amount, &createdAt); err != nil {
			return nil, err
		}
		r.Kind = constants.IntakeKind(kind)
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) GetTotalForDay(date string) (int, error) {
	var total int
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM intake_records WHERE date = $1`, date).Scan(&total)
	return total, err
}

func (s *Store) GetDailyTotals() ([]models.DayTotal, error) {
	rows, err := s.db.Query(`
		SELECT date, SUM(amount) FROM intake_records
		GROUP BY date ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.DayTotal
	for rows.Next() {
		var t models.DayTotal
		if err := rows.Scan(&t.Date, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (s *Store) GetProfile() (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT total_xp, spendable_xp, level, total_volume, best_streak, active_days, daily_record, last_active_date
		FROM profile WHERE id = 1`)

	var p models.Profile
	err := row.Scan(&p.TotalXP, &p.SpendableXP, &p.Level, &p.TotalVolume,
		&p.BestStreak, &p.ActiveDays, &p.DailyRecord, &p.LastActiveDate)
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *Store) SaveProfile(p models.Profile) error {
	_, err := s.db.Exec(`
		UPDATE profile
		SET total_xp = $1, spendable_xp = $2, level = $3, total_volume = $4,
		    best_streak = $5, active_days = $6, daily_record = $7, last_active_date = $8
		WHERE id = 1`,
		p.TotalXP, p.SpendableXP, p.Level, p.TotalVolume,
		p.BestStreak, p.ActiveDays, p.DailyRecord, p.LastActiveDate)
	return err
}

func (s *Store) EnsureGoalSnapshot(date string, goal int) error {
	_, err := s.db.Exec(`
		INSERT INTO goal_snapshots (date, goal) VALUES ($1, $2)
		ON CONFLICT (date) DO NOTHING`, date, goal)
	return err
}

func (s *Store) GetGoalSnapshot(date string) (models.GoalSnapshot, error) {
	row := s.db.QueryRow("SELECT date, goal FROM goal_snapshots WHERE date = $1", date)

	var g models.GoalSnapshot
	if err := row.Scan(&g.Date, &g.Goal); err != nil {
		return models.GoalSnapshot{}, err
	}
	return g, nil
}

func (s *Store) GetChallenge(date string) (models.DailyChallenge, error) {
	row := s.db.QueryRow(`
		SELECT date, type, description, target, progress, completed, xp_reward, completed_at
		FROM daily_challenges WHERE date = $1`, date)

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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (date) DO UPDATE SET
			progress = EXCLUDED.progress,
			completed = EXCLUDED.completed,
			completed_at = EXCLUDED.completed_at`,
		c.Date, string(c.Type), c.Description, c.Target, c.Progress,
		c.Completed, c.XPReward, completedAt)
	return err
}

func (s *Store) CountCompletedChallenges() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM daily_challenges WHERE completed").Scan(&count)
	return count, err
}

func (s *Store) GetBadges() ([]models.Badge, error) {
	rows, err := s.db.Query("SELECT type, description, earned_at FROM badges ORDER BY earned_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []models.Badge
	for rows.Next() {
		var b models.Badge
		var earnedAt string
		if err := rows.Scan(&b.Type, &b.Description, &earnedAt); err != nil {
			return nil, err
		}
		b.EarnedAt, err = time.Parse(time.RFC3339, earnedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse earned_at: %w", err)
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

func (s *Store) HasBadge(badgeType string) (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM badges WHERE type = $1", badgeType).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) AddBadge(b models.Badge) error {
	_, err := s.db.Exec(`
		INSERT INTO badges (type, description, earned_at) VALUES ($1, $2, $3)
		ON CONFLICT (type) DO NOTHING`,
		b.Type, b.Description, b.EarnedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetCollectibles() ([]models.Collectible, error) {
	rows, err := s.db.Query(`
		SELECT id, name, kind, cost, unlocked, selected, unlocked_at
		FROM collectibles ORDER BY kind, cost, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collectibles []models.Collectible
	for rows.Next() {
		c, err := scanCollectible(rows)
		if err != nil {
			return nil, err
		}
		collectibles = append(collectibles, c)
	}
	return collectibles, rows.Err()
}

func (s *Store) GetCollectible(id string) (models.Collectible, error) {
	row := s.db.QueryRow(`
		SELECT id, name, kind, cost, unlocked, selected, unlocked_at
		FROM collectibles WHERE id = $1`, id)
	return scanCollectible(row)
}

func (s *Store) SaveCollectible(c models.Collectible) error {
	var unlockedAt interface{}
	if c.UnlockedAt != nil {
		unlockedAt = c.UnlockedAt.Format(time.RFC3339)
	}
	_, err := s.db.Exec(`
		UPDATE collectibles
		SET unlocked = $1, selected = $2, unlocked_at = $3
		WHERE id = $4`,
		c.Unlocked, c.Selected, unlockedAt, c.ID)
	return err
}

func (s *Store) SetSelectedPet(id string) error {
	if _, err := s.db.Exec(`UPDATE collectibles SET selected = FALSE WHERE kind = $1`,
		string(constants.CollectiblePet)); err != nil {
		return err
	}
	_, err := s.db.Exec(`UPDATE collectibles SET selected = TRUE WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCollectible(row rowScanner) (models.Collectible, error) {
	var c models.Collectible
	var kind string
	var unlockedAt sql.NullString
	err := row.Scan(&c.ID, &c.Name, &kind, &c.Cost, &c.Unlocked, &c.Selected, &unlockedAt)
	if err != nil {
		return models.Collectible{}, err
	}
	c.Kind = constants.CollectibleKind(kind)
	if unlockedAt.Valid {
		t, err := time.Parse(time.RFC3339, unlockedAt.String)
		if err != nil {
			return models.Collectible{}, fmt.Errorf("failed to parse unlocked_at: %w", err)
		}
		c.UnlockedAt = &t
	}
	return c, nil
}
