package models

import "time"

// Badge is a write-once achievement. A badge type is awarded at most once
// and never removed.
type Badge struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}
