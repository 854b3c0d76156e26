package models

import (
	"time"

	"github.com/driplog/drip/internal/constants"
)

// IntakeRecord represents a single logged drink. Records are append-only;
// the amount unit follows the kind (ml for water, cl for beer).
type IntakeRecord struct {
	ID        string               `json:"id"`
	Date      string               `json:"date"` // YYYY-MM-DD format
	Kind      constants.IntakeKind `json:"kind"`
	Amount    int                  `json:"amount"`
	CreatedAt time.Time            `json:"created_at"`
}

// DayTotal is the summed intake for one calendar day.
type DayTotal struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}
