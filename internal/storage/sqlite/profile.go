package sqlite

import (
	"github.com/driplog/drip/internal/models"
)

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
		SET total_xp = ?, spendable_xp = ?, level = ?, total_volume = ?,
		    best_streak = ?, active_days = ?, daily_record = ?, last_active_date = ?
		WHERE id = 1`,
		p.TotalXP, p.SpendableXP, p.Level, p.TotalVolume,
		p.BestStreak, p.ActiveDays, p.DailyRecord, p.LastActiveDate)
	return err
}
