package sqlite

import (
	"fmt"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

// seed inserts the rows every fresh database needs: default settings, the
// profile singleton, and the collectible catalog. Each insert checks for an
// existing row first so re-running the pass is a no-op.
func (s *Store) seed() error {
	// Default settings for any key not yet present
	settings, err := s.GetSettings()
	if err != nil {
		settings = models.Settings{}
	}
	models.ApplyDefaultSettings(&settings)
	// A fresh table has no notifications row at all; only then apply the
	// default, so an explicit "false" setting survives re-seeding.
	if has, herr := s.hasSetting(constants.SettingNotificationsEnabled); herr == nil && !has {
		settings.NotificationsEnabled = constants.DefaultNotificationsEnabled
	}
	if err := s.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save default settings: %w", err)
	}

	// Profile singleton
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

	// Collectible catalog
	for _, c := range models.SeedCollectibles() {
		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM collectibles WHERE id = ?", c.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check collectible %s: %w", c.ID, err)
		}
		if exists > 0 {
			continue
		}
		_, err := s.db.Exec(`
			INSERT INTO collectibles (id, name, kind, cost, unlocked, selected, unlocked_at)
			VALUES (?, ?, ?, ?, ?, ?, NULL)`,
			c.ID, c.Name, string(c.Kind), c.Cost, c.Unlocked, c.Selected)
		if err != nil {
			return fmt.Errorf("failed to insert collectible %s: %w", c.ID, err)
		}
	}

	return nil
}

func (s *Store) hasSetting(key string) (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM settings WHERE key = ?", key).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
