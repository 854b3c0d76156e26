package sqlite

import (
	"github.com/driplog/drip/internal/models"
)

func (s *Store) EnsureGoalSnapshot(date string, goal int) error {
	// Insert-if-absent: a date that already has a snapshot keeps it, so later
	// goal edits never rewrite history.
	_, err := s.db.Exec(`
		INSERT INTO goal_snapshots (date, goal) VALUES (?, ?)
		ON CONFLICT(date) DO NOTHING`, date, goal)
	return err
}

func (s *Store) GetGoalSnapshot(date string) (models.GoalSnapshot, error) {
	row := s.db.QueryRow("SELECT date, goal FROM goal_snapshots WHERE date = ?", date)

	var g models.GoalSnapshot
	if err := row.Scan(&g.Date, &g.Goal); err != nil {
		return models.GoalSnapshot{}, err
	}
	return g, nil
}
