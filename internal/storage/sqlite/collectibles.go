package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

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
		FROM collectibles WHERE id = ?`, id)
	return scanCollectible(row)
}

func (s *Store) SaveCollectible(c models.Collectible) error {
	var unlockedAt interface{}
	if c.UnlockedAt != nil {
		unlockedAt = c.UnlockedAt.Format(time.RFC3339)
	}
	_, err := s.db.Exec(`
		UPDATE collectibles
		SET unlocked = ?, selected = ?, unlocked_at = ?
		WHERE id = ?`,
		c.Unlocked, c.Selected, unlockedAt, c.ID)
	return err
}

func (s *Store) SetSelectedPet(id string) error {
	if _, err := s.db.Exec(`UPDATE collectibles SET selected = FALSE WHERE kind = ?`,
		string(constants.CollectiblePet)); err != nil {
		return err
	}
	_, err := s.db.Exec(`UPDATE collectibles SET selected = TRUE WHERE id = ?`, id)
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
