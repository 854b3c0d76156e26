package engine

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
	"github.com/driplog/drip/internal/storage/sqlite"
	"github.com/driplog/drip/internal/utils"
)

// newTestEngine builds an engine over a fresh SQLite store with a pinned
// clock and a deterministic challenge draw.
func newTestEngine(t *testing.T, now time.Time) (*Engine, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "drip.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.Timezone = "UTC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	eng := New(store,
		WithClock(func() time.Time { return now }),
		WithRand(rand.New(rand.NewSource(1))),
	)
	return eng, store
}

// pinChallenge writes today's challenge so RecordIntake skips generation
// and the test controls which progress rule runs.
func pinChallenge(t *testing.T, store *sqlite.Store, date string, ctype constants.ChallengeType, target int) {
	t.Helper()
	err := store.SaveChallenge(models.DailyChallenge{
		Date:     date,
		Type:     ctype,
		Target:   target,
		XPReward: 40,
	})
	if err != nil {
		t.Fatalf("failed to save challenge: %v", err)
	}
}

func TestRecordIntakeAccumulates(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)

	res, err := eng.RecordIntake(constants.IntakeWater, 1000)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if res.CurrentTotal != 1000 || res.Goal != 2000 {
		t.Errorf("total/goal = %d/%d, want 1000/2000", res.CurrentTotal, res.Goal)
	}
	if res.Streak != 0 {
		t.Errorf("streak = %d, want 0 (goal not met yet)", res.Streak)
	}
	if res.XPEarned != 10 || res.GoalCrossed {
		t.Errorf("xp = %d crossed = %v, want 10 false", res.XPEarned, res.GoalCrossed)
	}
	if res.Badge == nil || res.Badge.Type != "first_sip" {
		t.Errorf("badge = %+v, want first_sip", res.Badge)
	}

	res, err = eng.RecordIntake(constants.IntakeWater, 1000)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if res.CurrentTotal != 2000 {
		t.Errorf("total = %d, want 2000", res.CurrentTotal)
	}
	if res.Streak != 1 {
		t.Errorf("streak = %d, want 1", res.Streak)
	}
	// Base 10, streak multiplier 1.1, flat crossing bonus 50
	if res.XPEarned != 61 || !res.GoalCrossed {
		t.Errorf("xp = %d crossed = %v, want 61 true", res.XPEarned, res.GoalCrossed)
	}
	if res.Badge == nil || res.Badge.Type != "goal_met" {
		t.Errorf("badge = %+v, want goal_met", res.Badge)
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if profile.TotalXP != 71 || profile.SpendableXP != 71 {
		t.Errorf("XP pools = %d/%d, want 71/71", profile.TotalXP, profile.SpendableXP)
	}
	if profile.TotalVolume != 2000 || profile.ActiveDays != 1 || profile.DailyRecord != 2000 {
		t.Errorf("profile = %+v", profile)
	}
	if profile.BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1", profile.BestStreak)
	}
}

func TestSetDailyGoalPinsSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)

	if err := eng.SetDailyGoal(3000); err != nil {
		t.Fatalf("SetDailyGoal failed: %v", err)
	}

	snap, err := store.GetGoalSnapshot("2026-03-10")
	if err != nil {
		t.Fatalf("no goal snapshot after goal change: %v", err)
	}
	if snap.Goal != 3000 {
		t.Errorf("snapshot goal = %d, want 3000", snap.Goal)
	}

	// A later change the same day updates settings but not the snapshot.
	if err := eng.SetDailyGoal(2500); err != nil {
		t.Fatalf("SetDailyGoal failed: %v", err)
	}
	snap, err = store.GetGoalSnapshot("2026-03-10")
	if err != nil {
		t.Fatalf("failed to get goal snapshot: %v", err)
	}
	if snap.Goal != 3000 {
		t.Errorf("snapshot goal = %d, want 3000 (first touch wins)", snap.Goal)
	}
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.DailyGoal != 2500 {
		t.Errorf("DailyGoal = %d, want 2500", settings.DailyGoal)
	}

	if err := eng.SetDailyGoal(0); err == nil {
		t.Error("SetDailyGoal accepted a non-positive goal")
	}
}

func TestRecordIntakeGoalBonusOnlyOnce(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)

	res, err := eng.RecordIntake(constants.IntakeWater, 2000)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if !res.GoalCrossed {
		t.Error("first crossing intake did not report GoalCrossed")
	}

	res, err = eng.RecordIntake(constants.IntakeWater, 400)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if res.GoalCrossed {
		t.Error("intake past the goal reported GoalCrossed again")
	}
	// Base 4 with streak 1 multiplier, no bonus
	if res.XPEarned != 4 {
		t.Errorf("xp = %d, want 4", res.XPEarned)
	}
}

func TestRecordIntakeCompletesChallenge(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeBigGulp, 500)

	res, err := eng.RecordIntake(constants.IntakeWater, 600)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if res.ChallengeCompleted == nil {
		t.Fatal("challenge not reported as completed")
	}
	if res.ChallengeCompleted.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	// 6 intake XP plus the 40 XP reward
	if profile.TotalXP != 46 {
		t.Errorf("TotalXP = %d, want 46", profile.TotalXP)
	}

	// The reward must not repeat on later intakes
	res, err = eng.RecordIntake(constants.IntakeWater, 700)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if res.ChallengeCompleted != nil {
		t.Error("completed challenge reported again")
	}

	count, err := store.CountCompletedChallenges()
	if err != nil {
		t.Fatalf("failed to count challenges: %v", err)
	}
	if count != 1 {
		t.Errorf("completed challenges = %d, want 1", count)
	}
}

func TestRecordIntakeGeneratesChallengeOnce(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)

	if _, err := eng.RecordIntake(constants.IntakeWater, 250); err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	first, err := store.GetChallenge("2026-03-10")
	if err != nil {
		t.Fatalf("no challenge generated: %v", err)
	}

	if _, err := eng.RecordIntake(constants.IntakeWater, 250); err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	second, err := store.GetChallenge("2026-03-10")
	if err != nil {
		t.Fatalf("failed to get challenge: %v", err)
	}
	if first.Type != second.Type || first.Target != second.Target {
		t.Errorf("challenge changed between intakes: %+v vs %+v", first, second)
	}
}

func TestRecordIntakeAwardsAtMostOneBadge(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)

	// One intake satisfies both first_sip and goal_met; only the first
	// catalog entry is awarded now.
	res, err := eng.RecordIntake(constants.IntakeWater, 2000)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if res.Badge == nil || res.Badge.Type != "first_sip" {
		t.Errorf("badge = %+v, want first_sip", res.Badge)
	}
	badges, err := store.GetBadges()
	if err != nil {
		t.Fatalf("failed to get badges: %v", err)
	}
	if len(badges) != 1 {
		t.Errorf("badge count = %d, want 1", len(badges))
	}
}

func TestRecordIntakeUnlocksThresholdPet(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)

	// Level 10 needs 8100 XP
	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	profile.TotalXP = 8099
	profile.Level = 9
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	res, err := eng.RecordIntake(constants.IntakeWater, 400)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if !res.LeveledUp || res.Level != 10 {
		t.Fatalf("level = %d leveledUp = %v, want 10 true", res.Level, res.LeveledUp)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "royal_jelly" {
		t.Fatalf("unlocked = %+v, want royal_jelly", res.Unlocked)
	}

	pet, err := store.GetCollectible("royal_jelly")
	if err != nil {
		t.Fatalf("failed to get collectible: %v", err)
	}
	if !pet.Unlocked || pet.UnlockedAt == nil {
		t.Errorf("royal_jelly = %+v, want unlocked with timestamp", pet)
	}

	// A later intake must not report it again
	res, err = eng.RecordIntake(constants.IntakeWater, 400)
	if err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if len(res.Unlocked) != 0 {
		t.Errorf("unlocked reported twice: %+v", res.Unlocked)
	}
}

func TestRecordIntakeRejectsInvalidAmount(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, _ := newTestEngine(t, now)

	if _, err := eng.RecordIntake(constants.IntakeWater, 0); err == nil {
		t.Error("zero amount accepted")
	}
	if _, err := eng.RecordIntake(constants.IntakeWater, 5001); err == nil {
		t.Error("oversized water amount accepted")
	}
	if _, err := eng.RecordIntake(constants.IntakeBeer, 501); err == nil {
		t.Error("oversized beer amount accepted")
	}
}

func TestStreakWithPriorDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)

	for _, daysAgo := range []int{1, 2} {
		date, err := utils.AddDays("2026-03-10", -daysAgo)
		if err != nil {
			t.Fatalf("AddDays failed: %v", err)
		}
		err = store.AddIntake(models.IntakeRecord{
			ID: date, Date: date, Kind: constants.IntakeWater, Amount: 2000, CreatedAt: now,
		})
		if err != nil {
			t.Fatalf("failed to add intake: %v", err)
		}
	}

	streak, err := eng.Streak()
	if err != nil {
		t.Fatalf("Streak failed: %v", err)
	}
	if streak != 2 {
		t.Errorf("streak = %d, want 2 (grace before today's first log)", streak)
	}
}

func TestTodayStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)

	if _, err := eng.RecordIntake(constants.IntakeWater, 750); err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}

	status, err := eng.Today()
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if status.Date != "2026-03-10" || status.Total != 750 || status.Goal != 2000 {
		t.Errorf("status = %+v", status)
	}
	if status.Events != 1 {
		t.Errorf("events = %d, want 1", status.Events)
	}
	if status.Challenge.Type != constants.ChallengeConsistent {
		t.Errorf("challenge type = %s, want consistent", status.Challenge.Type)
	}
}

func TestHistoryFillsEmptyDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)

	if _, err := eng.RecordIntake(constants.IntakeWater, 2000); err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}

	history, err := eng.History(3)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[0].Date != "2026-03-08" || history[0].Total != 0 || history[0].Met {
		t.Errorf("empty day = %+v", history[0])
	}
	last := history[2]
	if last.Date != "2026-03-10" || last.Total != 2000 || !last.Met || last.Percent != 100 {
		t.Errorf("today = %+v", last)
	}
}

func TestHistoryUsesGoalSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)

	if _, err := eng.RecordIntake(constants.IntakeWater, 1500); err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}

	// Raising the goal afterwards must not rewrite the day's snapshot
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.DailyGoal = 3000
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	history, err := eng.History(1)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if history[0].Goal != 2000 {
		t.Errorf("goal = %d, want pinned 2000", history[0].Goal)
	}
}

func TestResetRestoresSeedState(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)

	if _, err := eng.RecordIntake(constants.IntakeWater, 2000); err != nil {
		t.Fatalf("RecordIntake failed: %v", err)
	}
	if err := eng.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if profile.TotalXP != 0 || profile.TotalVolume != 0 || profile.ActiveDays != 0 {
		t.Errorf("profile after reset = %+v", profile)
	}
	total, err := store.GetTotalForDay("2026-03-10")
	if err != nil {
		t.Fatalf("failed to get total: %v", err)
	}
	if total != 0 {
		t.Errorf("total after reset = %d, want 0", total)
	}

	starter, err := store.GetCollectible("moon_jelly")
	if err != nil {
		t.Fatalf("failed to get starter pet: %v", err)
	}
	if !starter.Unlocked || !starter.Selected {
		t.Errorf("starter pet after reset = %+v", starter)
	}
}

func TestNotifierFailureDoesNotFailIntake(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	eng, store := newTestEngine(t, now)
	pinChallenge(t, store, "2026-03-10", constants.ChallengeConsistent, 6)
	WithNotifier(failingNotifier{})(eng)

	if _, err := eng.RecordIntake(constants.IntakeWater, 250); err != nil {
		t.Errorf("RecordIntake failed on notifier error: %v", err)
	}
}

type failingNotifier struct{}

func (failingNotifier) NotifyProgress(current, goal int) error {
	return errors.New("tray unreachable")
}
