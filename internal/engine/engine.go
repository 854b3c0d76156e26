// Package engine implements the progression core: XP and levels, streaks,
// daily challenges, badges, and collectible unlocks. The arithmetic lives in
// pure functions; Engine orchestrates them against the storage Provider as
// an ordered sequence of reads and writes.
package engine

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/logger"
	"github.com/driplog/drip/internal/models"
	"github.com/driplog/drip/internal/storage"
	"github.com/driplog/drip/internal/utils"
	"github.com/driplog/drip/internal/validation"
)

// Notifier pushes a progress render to the tray collaborator. Failures are
// logged and swallowed; progression never depends on the notifier.
type Notifier interface {
	NotifyProgress(current, goal int) error
}

type Engine struct {
	store    storage.Provider
	notifier Notifier
	now      func() time.Time
	rng      *rand.Rand
}

type Option func(*Engine)

// WithClock injects the time source, used by tests to pin "today" and the
// time-of-day challenge cutoffs.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand injects the random source used for daily challenge selection.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithNotifier attaches the tray notifier collaborator.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func New(store storage.Provider, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IntakeResult summarizes what one recorded intake changed, for display.
type IntakeResult struct {
	Date               string
	Amount             int
	CurrentTotal       int
	Goal               int
	Streak             int
	XPEarned           int
	GoalCrossed        bool
	LeveledUp          bool
	Level              int
	ChallengeCompleted *models.DailyChallenge
	Badge              *models.Badge
	Unlocked           []models.Collectible
}

// RecordIntake appends an intake for today and runs the full progression
// update: XP, level, streak, challenge progress, badge and unlock
// evaluation, then the tray notification. The steps are sequential writes,
// not one transaction; re-invoking after a failure is safe because every
// award path is idempotent.
func (e *Engine) RecordIntake(kind constants.IntakeKind, amount int) (IntakeResult, error) {
	if err := validation.ValidateAmount(kind, amount); err != nil {
		return IntakeResult{}, err
	}

	settings, err := e.store.GetSettings()
	if err != nil {
		return IntakeResult{}, fmt.Errorf("failed to get settings: %w", err)
	}
	goal := settings.DailyGoal

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return IntakeResult{}, err
	}
	now := e.now().In(loc)
	today := now.Format(constants.DateFormat)

	// 1. Append the record
	record := models.IntakeRecord{
		ID:        uuid.New().String(),
		Date:      today,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: now,
	}
	if err := e.store.AddIntake(record); err != nil {
		return IntakeResult{}, fmt.Errorf("failed to add intake: %w", err)
	}

	// 2. Pin today's goal for history
	if err := e.store.EnsureGoalSnapshot(today, goal); err != nil {
		return IntakeResult{}, fmt.Errorf("failed to ensure goal snapshot: %w", err)
	}

	// 3. Re-read the running total
	currentTotal, err := e.store.GetTotalForDay(today)
	if err != nil {
		return IntakeResult{}, fmt.Errorf("failed to get today's total: %w", err)
	}
	previousTotal := currentTotal - amount

	// 4. Streak against the live goal (not the snapshot)
	totals, err := e.store.GetDailyTotals()
	if err != nil {
		return IntakeResult{}, fmt.Errorf("failed to get daily totals: %w", err)
	}
	streak := StreakFromTotals(totals, goal, today)

	// 5-7. XP with streak multiplier and goal-crossing bonus
	xpEarned, goalCrossed := computeXP(amount, streak, previousTotal, currentTotal, goal)

	// 8. Fold into the profile
	profile, err := e.store.GetProfile()
	if err != nil {
		return IntakeResult{}, fmt.Errorf("failed to get profile: %w", err)
	}
	levelBefore := profile.Level
	profile = applyIntake(profile, today, amount, currentTotal, streak, xpEarned)
	if err := e.store.SaveProfile(profile); err != nil {
		return IntakeResult{}, fmt.Errorf("failed to save profile: %w", err)
	}

	result := IntakeResult{
		Date:         today,
		Amount:       amount,
		CurrentTotal: currentTotal,
		Goal:         goal,
		Streak:       streak,
		XPEarned:     xpEarned,
		GoalCrossed:  goalCrossed,
	}

	// 9. Challenge progress
	intakes, err := e.store.GetIntakesForDay(today)
	if err != nil {
		return IntakeResult{}, fmt.Errorf("failed to get today's intakes: %w", err)
	}
	challenge, err := e.ensureChallenge(today, goal)
	if err != nil {
		return IntakeResult{}, err
	}
	completedNow := updateChallenge(&challenge, challengeEvent{
		Amount:       amount,
		CurrentTotal: currentTotal,
		Goal:         goal,
		EventsToday:  len(intakes),
		MinutesOfDay: utils.MinutesOfDay(now),
	})
	if completedNow {
		t := now
		challenge.CompletedAt = &t
		profile = awardXP(profile, challenge.XPReward)
		if err := e.store.SaveProfile(profile); err != nil {
			return IntakeResult{}, fmt.Errorf("failed to save profile: %w", err)
		}
		result.ChallengeCompleted = &challenge
	}
	if err := e.store.SaveChallenge(challenge); err != nil {
		return IntakeResult{}, fmt.Errorf("failed to save challenge: %w", err)
	}

	// Badge scan: at most one new badge per intake
	completedCount, err := e.store.CountCompletedChallenges()
	if err != nil {
		return IntakeResult{}, fmt.Errorf("failed to count completed challenges: %w", err)
	}
	badge, err := e.evaluateBadges(BadgeContext{
		CurrentTotal:        currentTotal,
		Goal:                goal,
		Streak:              streak,
		Profile:             profile,
		CompletedChallenges: completedCount,
	}, now)
	if err != nil {
		return IntakeResult{}, err
	}
	result.Badge = badge

	// 10. Threshold pet unlocks against the post-update stats
	unlocked, err := e.evaluateUnlocks(UnlockStats{
		Level:               profile.Level,
		BestStreak:          profile.BestStreak,
		TotalVolume:         profile.TotalVolume,
		CompletedChallenges: completedCount,
	}, now)
	if err != nil {
		return IntakeResult{}, err
	}
	result.Unlocked = unlocked

	result.Level = profile.Level
	result.LeveledUp = profile.Level > levelBefore

	// 11. Tray refresh, side effect only
	if e.notifier != nil && settings.NotificationsEnabled {
		if err := e.notifier.NotifyProgress(currentTotal, goal); err != nil {
			logger.Debug("Tray notification failed", "error", err)
		}
	}

	return result, nil
}

// ensureChallenge returns today's challenge, generating one if the day has
// none yet. Generation is idempotent: an existing row is returned untouched.
func (e *Engine) ensureChallenge(date string, goal int) (models.DailyChallenge, error) {
	challenge, err := e.store.GetChallenge(date)
	if err == nil {
		return challenge, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.DailyChallenge{}, fmt.Errorf("failed to get challenge: %w", err)
	}

	challenge = generateChallenge(date, goal, e.rng)
	if err := e.store.SaveChallenge(challenge); err != nil {
		return models.DailyChallenge{}, fmt.Errorf("failed to save challenge: %w", err)
	}
	return challenge, nil
}

// today formats the injected clock's date in the configured timezone.
func (e *Engine) today(settings models.Settings) (string, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return "", err
	}
	return e.now().In(loc).Format(constants.DateFormat), nil
}

// DailyChallenge returns today's challenge, generating it on first access.
func (e *Engine) DailyChallenge() (models.DailyChallenge, error) {
	settings, err := e.store.GetSettings()
	if err != nil {
		return models.DailyChallenge{}, fmt.Errorf("failed to get settings: %w", err)
	}
	today, err := e.today(settings)
	if err != nil {
		return models.DailyChallenge{}, err
	}
	return e.ensureChallenge(today, settings.DailyGoal)
}

// evaluateBadges persists and returns at most one newly-earned badge.
func (e *Engine) evaluateBadges(ctx BadgeContext, now time.Time) (*models.Badge, error) {
	existing, err := e.store.GetBadges()
	if err != nil {
		return nil, fmt.Errorf("failed to get badges: %w", err)
	}
	earned := make(map[string]bool, len(existing))
	for _, b := range existing {
		earned[b.Type] = true
	}

	spec := firstNewBadge(ctx, earned)
	if spec == nil {
		return nil, nil
	}
	badge := models.Badge{
		Type:        spec.Type,
		Description: spec.Description,
		EarnedAt:    now,
	}
	if err := e.store.AddBadge(badge); err != nil {
		return nil, fmt.Errorf("failed to add badge: %w", err)
	}
	return &badge, nil
}

// evaluateUnlocks flips any threshold pet whose condition is newly met.
func (e *Engine) evaluateUnlocks(stats UnlockStats, now time.Time) ([]models.Collectible, error) {
	var unlocked []models.Collectible
	for _, spec := range unlockCatalog {
		if !spec.Qualifies(stats) {
			continue
		}
		c, err := e.store.GetCollectible(spec.CollectibleID)
		if err != nil {
			return nil, fmt.Errorf("failed to get collectible %s: %w", spec.CollectibleID, err)
		}
		if c.Unlocked {
			continue
		}
		t := now
		c.Unlocked = true
		c.UnlockedAt = &t
		if err := e.store.SaveCollectible(c); err != nil {
			return nil, fmt.Errorf("failed to save collectible %s: %w", c.ID, err)
		}
		unlocked = append(unlocked, c)
	}
	return unlocked, nil
}

// SetDailyGoal updates the configured goal and pins today's snapshot so the
// day's history reflects the goal it was first touched with. A snapshot
// already written by an earlier intake or goal change today stays as is.
func (e *Engine) SetDailyGoal(goal int) error {
	if err := validation.ValidateGoal(goal); err != nil {
		return err
	}
	settings, err := e.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.DailyGoal = goal
	if err := e.store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	today, err := e.today(settings)
	if err != nil {
		return err
	}
	if err := e.store.EnsureGoalSnapshot(today, goal); err != nil {
		return fmt.Errorf("failed to ensure goal snapshot: %w", err)
	}
	return nil
}

// Streak returns the current streak against the live goal.
func (e *Engine) Streak() (int, error) {
	settings, err := e.store.GetSettings()
	if err != nil {
		return 0, fmt.Errorf("failed to get settings: %w", err)
	}
	today, err := e.today(settings)
	if err != nil {
		return 0, err
	}
	totals, err := e.store.GetDailyTotals()
	if err != nil {
		return 0, fmt.Errorf("failed to get daily totals: %w", err)
	}
	return StreakFromTotals(totals, settings.DailyGoal, today), nil
}

// Reset wipes every entity and re-runs initialization. No partial reset.
func (e *Engine) Reset() error {
	return e.store.Reset()
}
