package sqlite

import (
	"fmt"
	"time"

	"github.com/driplog/drip/internal/models"
)

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
	if err := s.db.QueryRow("SELECT COUNT(*) FROM badges WHERE type = ?", badgeType).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) AddBadge(b models.Badge) error {
	// ON CONFLICT DO NOTHING keeps awarding idempotent at the storage layer
	// as well as in the engine.
	_, err := s.db.Exec(`
		INSERT INTO badges (type, description, earned_at) VALUES (?, ?, ?)
		ON CONFLICT(type) DO NOTHING`,
		b.Type, b.Description, b.EarnedAt.Format(time.RFC3339))
	return err
}
