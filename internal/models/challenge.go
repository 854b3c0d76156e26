package models

import (
	"time"

	"github.com/driplog/drip/internal/constants"
)

// DailyChallenge is the single randomly-drawn task for one calendar day.
// Type and Target are fixed at generation; only Progress and Completed move.
type DailyChallenge struct {
	Date        string                  `json:"date"` // YYYY-MM-DD, primary key
	Type        constants.ChallengeType `json:"type"`
	Description string                  `json:"description"`
	Target      int                     `json:"target"`
	Progress    int                     `json:"progress"`
	Completed   bool                    `json:"completed"`
	XPReward    int                     `json:"xp_reward"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
}
