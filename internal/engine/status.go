package engine

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/driplog/drip/internal/models"
	"github.com/driplog/drip/internal/utils"
)

// TodayStatus is the dashboard projection for the current day.
type TodayStatus struct {
	Date      string
	Total     int
	Goal      int
	Events    int
	Streak    int
	Profile   models.Profile
	Challenge models.DailyChallenge
}

// Today assembles the current day's totals, streak, profile, and challenge.
func (e *Engine) Today() (TodayStatus, error) {
	settings, err := e.store.GetSettings()
	if err != nil {
		return TodayStatus{}, fmt.Errorf("failed to get settings: %w", err)
	}
	today, err := e.today(settings)
	if err != nil {
		return TodayStatus{}, err
	}

	total, err := e.store.GetTotalForDay(today)
	if err != nil {
		return TodayStatus{}, fmt.Errorf("failed to get today's total: %w", err)
	}
	intakes, err := e.store.GetIntakesForDay(today)
	if err != nil {
		return TodayStatus{}, fmt.Errorf("failed to get today's intakes: %w", err)
	}
	totals, err := e.store.GetDailyTotals()
	if err != nil {
		return TodayStatus{}, fmt.Errorf("failed to get daily totals: %w", err)
	}
	profile, err := e.store.GetProfile()
	if err != nil {
		return TodayStatus{}, fmt.Errorf("failed to get profile: %w", err)
	}
	challenge, err := e.ensureChallenge(today, settings.DailyGoal)
	if err != nil {
		return TodayStatus{}, err
	}

	return TodayStatus{
		Date:      today,
		Total:     total,
		Goal:      settings.DailyGoal,
		Events:    len(intakes),
		Streak:    StreakFromTotals(totals, settings.DailyGoal, today),
		Profile:   profile,
		Challenge: challenge,
	}, nil
}

// DayHistory is one day of the history projection. Goal is the snapshot
// pinned when the day had activity, or the current goal for empty days.
type DayHistory struct {
	Date    string
	Total   int
	Goal    int
	Met     bool
	Percent int
}

// History returns the last days calendar days ending today, oldest first.
// Days with no intakes appear with a zero total.
func (e *Engine) History(days int) ([]DayHistory, error) {
	if days <= 0 {
		return nil, nil
	}
	settings, err := e.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	today, err := e.today(settings)
	if err != nil {
		return nil, err
	}

	totals, err := e.store.GetDailyTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}
	byDate := make(map[string]int, len(totals))
	for _, t := range totals {
		byDate[t.Date] = t.Total
	}

	history := make([]DayHistory, 0, days)
	for i := days - 1; i >= 0; i-- {
		date, err := utils.AddDays(today, -i)
		if err != nil {
			return nil, err
		}
		goal := settings.DailyGoal
		snapshot, err := e.store.GetGoalSnapshot(date)
		if err == nil {
			goal = snapshot.Goal
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to get goal snapshot: %w", err)
		}

		total := byDate[date]
		percent := 0
		if goal > 0 {
			percent = total * 100 / goal
		}
		history = append(history, DayHistory{
			Date:    date,
			Total:   total,
			Goal:    goal,
			Met:     total >= goal,
			Percent: percent,
		})
	}
	return history, nil
}

// Stats is the aggregate projection across all recorded days.
type Stats struct {
	Profile       models.Profile
	CurrentStreak int
	DaysTracked   int
	DaysGoalMet   int
	AveragePerDay int
	XPIntoLevel   int
	XPLevelSpan   int
	Badges        int
	Challenges    int
}

// Statistics aggregates lifetime numbers for the stats view.
func (e *Engine) Statistics() (Stats, error) {
	settings, err := e.store.GetSettings()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get settings: %w", err)
	}
	today, err := e.today(settings)
	if err != nil {
		return Stats{}, err
	}

	profile, err := e.store.GetProfile()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get profile: %w", err)
	}
	totals, err := e.store.GetDailyTotals()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get daily totals: %w", err)
	}
	badges, err := e.store.GetBadges()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get badges: %w", err)
	}
	challenges, err := e.store.CountCompletedChallenges()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count completed challenges: %w", err)
	}

	stats := Stats{
		Profile:       profile,
		CurrentStreak: StreakFromTotals(totals, settings.DailyGoal, today),
		DaysTracked:   len(totals),
		Badges:        len(badges),
		Challenges:    challenges,
	}
	stats.XPIntoLevel, stats.XPLevelSpan = XPIntoLevel(profile.TotalXP)

	var sum int
	for _, t := range totals {
		sum += t.Total
		goal := settings.DailyGoal
		if snapshot, err := e.store.GetGoalSnapshot(t.Date); err == nil {
			goal = snapshot.Goal
		}
		if t.Total >= goal {
			stats.DaysGoalMet++
		}
	}
	if len(totals) > 0 {
		stats.AveragePerDay = sum / len(totals)
	}
	return stats, nil
}
