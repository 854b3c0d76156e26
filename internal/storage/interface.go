package storage

import "github.com/driplog/drip/internal/models"

// Provider is the persistence contract shared by the SQLite and PostgreSQL
// backends. Dates are YYYY-MM-DD strings; the profile is a singleton row.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Intake records (append-only)
	AddIntake(models.IntakeRecord) error
	GetIntakesForDay(date string) ([]models.IntakeRecord, error)
	GetTotalForDay(date string) (int, error)
	GetDailyTotals() ([]models.DayTotal, error)

	// Profile singleton
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Goal snapshots
	EnsureGoalSnapshot(date string, goal int) error
	GetGoalSnapshot(date string) (models.GoalSnapshot, error)

	// Daily challenges
	GetChallenge(date string) (models.DailyChallenge, error)
	SaveChallenge(models.DailyChallenge) error
	CountCompletedChallenges() (int, error)

	// Badges (write-once per type)
	GetBadges() ([]models.Badge, error)
	HasBadge(badgeType string) (bool, error)
	AddBadge(models.Badge) error

	// Collectibles
	GetCollectibles() ([]models.Collectible, error)
	GetCollectible(id string) (models.Collectible, error)
	SaveCollectible(models.Collectible) error
	// SetSelectedPet marks the given pet as selected and clears the flag on
	// every other pet in the same statement sequence.
	SetSelectedPet(id string) error

	// Reset wipes every table and re-runs the seed pass.
	Reset() error

	// Utils
	GetConfigPath() string
}
