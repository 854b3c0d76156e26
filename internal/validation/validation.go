package validation

import (
	"fmt"
	"time"

	"github.com/driplog/drip/internal/constants"
)

// ValidateAmount checks that an intake amount is a positive quantity within
// a sane single-drink range for its kind.
func ValidateAmount(kind constants.IntakeKind, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", amount)
	}
	switch kind {
	case constants.IntakeWater:
		if amount > 5000 {
			return fmt.Errorf("amount %d ml exceeds the single-drink limit of 5000 ml", amount)
		}
	case constants.IntakeBeer:
		if amount > 500 {
			return fmt.Errorf("amount %d cl exceeds the single-drink limit of 500 cl", amount)
		}
	default:
		return fmt.Errorf("unknown intake kind %q", kind)
	}
	return nil
}

// ValidateGoal checks that a daily goal is positive.
func ValidateGoal(goal int) error {
	if goal <= 0 {
		return fmt.Errorf("daily goal must be positive, got %d", goal)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
