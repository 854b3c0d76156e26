package constants

import "time"

const (
	AppName            = "drip"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/drip/drip.db"
	Version            = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "drip-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.driplog.drip"
)

// IntakeKind distinguishes what was logged. The amount unit is
// kind-specific: milliliters for water, centiliters for beer.
type IntakeKind string

const (
	IntakeWater IntakeKind = "water"
	IntakeBeer  IntakeKind = "beer"
)

// ChallengeType identifies one of the fixed daily challenge variants.
type ChallengeType string

const (
	ChallengeEarlyBird     ChallengeType = "early_bird"
	ChallengeConsistent    ChallengeType = "consistent"
	ChallengeBigGulp       ChallengeType = "big_gulp"
	ChallengeAfternoonGoal ChallengeType = "afternoon_goal"
	ChallengeFullTank      ChallengeType = "full_tank"
)

// CollectibleKind distinguishes aquarium pets from decorations.
type CollectibleKind string

const (
	CollectiblePet        CollectibleKind = "pet"
	CollectibleDecoration CollectibleKind = "decoration"
)
