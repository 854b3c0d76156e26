package engine

import (
	"sort"

	"github.com/driplog/drip/internal/models"
	"github.com/driplog/drip/internal/utils"
)

// StreakFromTotals computes the consecutive-day streak from per-day totals.
// A day qualifies when its total meets the goal. The streak counts the run
// of consecutive qualifying days ending today or yesterday: today not yet
// met and "yesterday met, today not yet" are both within grace, and the
// streak only breaks once a full day has been skipped.
func StreakFromTotals(totals []models.DayTotal, goal int, today string) int {
	var qualifying []string
	for _, t := range totals {
		if t.Total >= goal {
			qualifying = append(qualifying, t.Date)
		}
	}
	return streakFromDates(qualifying, today)
}

func streakFromDates(qualifying []string, today string) int {
	if len(qualifying) == 0 {
		return 0
	}

	dates := make([]string, len(qualifying))
	copy(dates, qualifying)
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	// More than one full day since the last qualifying date means the
	// streak is already broken.
	gap, err := utils.DaysBetween(dates[0], today)
	if err != nil || gap > 1 || gap < 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		step, err := utils.DaysBetween(dates[i], dates[i-1])
		if err != nil || step != 1 {
			break
		}
		streak++
	}
	return streak
}
