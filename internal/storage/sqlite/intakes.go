package sqlite

import (
	"fmt"
	"time"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

func (s *Store) AddIntake(record models.IntakeRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO intake_records (id, date, kind, amount, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		record.ID, record.Date, string(record.Kind), record.Amount,
		record.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetIntakesForDay(date string) ([]models.IntakeRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, date, kind, amount, created_at
		FROM intake_records WHERE date = ? ORDER BY created_at`, date)
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
		SELECT COALESCE(SUM(amount), 0) FROM intake_records WHERE date = ?`, date).Scan(&total)
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
