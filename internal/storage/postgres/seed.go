package postgres

import (
	"fmt"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

// seed mirrors the SQLite seed pass: default settings, profile singleton,
// collectible catalog. Idempotent.
func (s *Store) seed() error {
	settings, err := s.GetSettings()
	if err != nil {
		settings = models.Settings{}
	}
	models.ApplyDefaultSettings(&settings)
	if has, herr := s.hasSetting(constants.SettingNotificationsEnabled); herr == nil && !has {
		settings.NotificationsEnabled = constants.DefaultNotificationsEnabled
	}
	if err := s.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save default settings: %w", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM profile WHERE id = 1").Scan(&count); err != nil {
		return fmt.Errorf("failed to check profile row: %w", err)
	}
	if count == 0 {
		_, err := s.db.Exec(`
			INSERT INTO profile (id, total_xp, spendable_xp, level, total_volume, best_streak, active_days, daily_record, last_active_date)
			VALUES (1, 0, 0, 1, 0, 0, 0, 0, '')`)
		if err != nil {
			return fmt.Errorf("failed to insert profile row: %w", err)
		}
	}

	for _, c := range models.SeedCollectibles() {
		_, err := s.db.Exec(`
			INSERT INTO collectibles (id, name, kind, cost, unlocked, selected, unlocked_at)
			VALUES ($1, $2, $3, $4, $5, $6, NULL)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, string(c.Kind), c.Cost, c.Unlocked, c.Selected)
		if err != nil {
			return fmt.Errorf("failed to insert collectible %s: %w", c.ID, err)
		}
	}

	return nil
}

func (s *Store) hasSetting(key string) (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM settings WHERE key = $1", key).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
