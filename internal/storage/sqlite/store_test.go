package sqlite

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "drip.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected error loading a database that was never initialized")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	// Mutate state that the seed pass must not clobber
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.DailyGoal = 2500
	settings.NotificationsEnabled = false
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	if err := store.Init(); err != nil {
		t.Fatalf("second init failed: %v", err)
	}

	settings, err = store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.DailyGoal != 2500 {
		t.Errorf("DailyGoal = %d, want 2500 (seed overwrote it)", settings.DailyGoal)
	}
	if settings.NotificationsEnabled {
		t.Error("explicit notifications_enabled=false was reset by re-seeding")
	}
}

func TestSeedDefaults(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.DailyGoal != constants.DefaultDailyGoal {
		t.Errorf("DailyGoal = %d, want %d", settings.DailyGoal, constants.DefaultDailyGoal)
	}
	if !settings.NotificationsEnabled {
		t.Error("notifications not enabled by default")
	}
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", settings.Timezone, constants.DefaultTimezone)
	}
	if len(settings.Presets) == 0 {
		t.Error("no default presets")
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if profile.Level != 1 || profile.TotalXP != 0 {
		t.Errorf("fresh profile = %+v, want level 1 with 0 XP", profile)
	}

	collectibles, err := store.GetCollectibles()
	if err != nil {
		t.Fatalf("failed to get collectibles: %v", err)
	}
	if len(collectibles) != len(models.SeedCollectibles()) {
		t.Errorf("collectible count = %d, want %d", len(collectibles), len(models.SeedCollectibles()))
	}

	starter, err := store.GetCollectible("moon_jelly")
	if err != nil {
		t.Fatalf("failed to get starter pet: %v", err)
	}
	if !starter.Unlocked || !starter.Selected {
		t.Errorf("starter pet = %+v, want unlocked and selected", starter)
	}
}

func TestIntakeTotals(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	records := []models.IntakeRecord{
		{ID: "a", Date: "2026-03-10", Kind: constants.IntakeWater, Amount: 500, CreatedAt: now},
		{ID: "b", Date: "2026-03-10", Kind: constants.IntakeBeer, Amount: 33, CreatedAt: now.Add(time.Hour)},
		{ID: "c", Date: "2026-03-11", Kind: constants.IntakeWater, Amount: 250, CreatedAt: now.AddDate(0, 0, 1)},
	}
	for _, r := range records {
		if err := store.AddIntake(r); err != nil {
			t.Fatalf("failed to add intake %s: %v", r.ID, err)
		}
	}

	total, err := store.GetTotalForDay("2026-03-10")
	if err != nil {
		t.Fatalf("failed to get total: %v", err)
	}
	if total != 533 {
		t.Errorf("total = %d, want 533", total)
	}

	total, err = store.GetTotalForDay("2026-03-12")
	if err != nil {
		t.Fatalf("failed to get total for empty day: %v", err)
	}
	if total != 0 {
		t.Errorf("empty day total = %d, want 0", total)
	}

	intakes, err := store.GetIntakesForDay("2026-03-10")
	if err != nil {
		t.Fatalf("failed to get intakes: %v", err)
	}
	if len(intakes) != 2 {
		t.Fatalf("intake count = %d, want 2", len(intakes))
	}
	if intakes[0].Kind != constants.IntakeWater || intakes[1].Kind != constants.IntakeBeer {
		t.Errorf("kinds = %s, %s", intakes[0].Kind, intakes[1].Kind)
	}

	totals, err := store.GetDailyTotals()
	if err != nil {
		t.Fatalf("failed to get daily totals: %v", err)
	}
	if len(totals) != 2 {
		t.Errorf("daily totals length = %d, want 2", len(totals))
	}
}

func TestProfileRoundtrip(t *testing.T) {
	store := newTestStore(t)

	want := models.Profile{
		TotalXP:        750,
		SpendableXP:    250,
		Level:          3,
		TotalVolume:    42000,
		BestStreak:     9,
		ActiveDays:     21,
		DailyRecord:    3100,
		LastActiveDate: "2026-03-10",
	}
	if err := store.SaveProfile(want); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if got != want {
		t.Errorf("profile = %+v, want %+v", got, want)
	}
}

func TestGoalSnapshotNeverRewrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.EnsureGoalSnapshot("2026-03-10", 2000); err != nil {
		t.Fatalf("failed to ensure snapshot: %v", err)
	}
	if err := store.EnsureGoalSnapshot("2026-03-10", 3000); err != nil {
		t.Fatalf("failed to re-ensure snapshot: %v", err)
	}

	snapshot, err := store.GetGoalSnapshot("2026-03-10")
	if err != nil {
		t.Fatalf("failed to get snapshot: %v", err)
	}
	if snapshot.Goal != 2000 {
		t.Errorf("goal = %d, want the original 2000", snapshot.Goal)
	}
}

func TestChallengeUpsert(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetChallenge("2026-03-10"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for missing challenge, got %v", err)
	}

	challenge := models.DailyChallenge{
		Date:        "2026-03-10",
		Type:        constants.ChallengeBigGulp,
		Description: "Log a single drink of at least 500",
		Target:      500,
		XPReward:    25,
	}
	if err := store.SaveChallenge(challenge); err != nil {
		t.Fatalf("failed to save challenge: %v", err)
	}

	completedAt := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	challenge.Progress = 600
	challenge.Completed = true
	challenge.CompletedAt = &completedAt
	if err := store.SaveChallenge(challenge); err != nil {
		t.Fatalf("failed to update challenge: %v", err)
	}

	got, err := store.GetChallenge("2026-03-10")
	if err != nil {
		t.Fatalf("failed to get challenge: %v", err)
	}
	if !got.Completed || got.Progress != 600 {
		t.Errorf("challenge = %+v", got)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, completedAt)
	}

	count, err := store.CountCompletedChallenges()
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("completed count = %d, want 1", count)
	}
}

func TestBadgeWriteOnce(t *testing.T) {
	store := newTestStore(t)
	earned := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	badge := models.Badge{Type: "first_sip", Description: "Logged your very first drink", EarnedAt: earned}
	if err := store.AddBadge(badge); err != nil {
		t.Fatalf("failed to add badge: %v", err)
	}

	// A second insert for the same type must be a silent no-op
	badge.EarnedAt = earned.AddDate(0, 0, 5)
	if err := store.AddBadge(badge); err != nil {
		t.Fatalf("duplicate badge insert errored: %v", err)
	}

	badges, err := store.GetBadges()
	if err != nil {
		t.Fatalf("failed to get badges: %v", err)
	}
	if len(badges) != 1 {
		t.Fatalf("badge count = %d, want 1", len(badges))
	}
	if !badges[0].EarnedAt.Equal(earned) {
		t.Errorf("EarnedAt = %v, want original %v", badges[0].EarnedAt, earned)
	}

	has, err := store.HasBadge("first_sip")
	if err != nil {
		t.Fatalf("HasBadge failed: %v", err)
	}
	if !has {
		t.Error("HasBadge = false, want true")
	}
	has, err = store.HasBadge("goal_met")
	if err != nil {
		t.Fatalf("HasBadge failed: %v", err)
	}
	if has {
		t.Error("HasBadge = true for unearned badge")
	}
}

func TestSetSelectedPet(t *testing.T) {
	store := newTestStore(t)

	// Unlock a second pet so there is something to switch to
	pet, err := store.GetCollectible("pufferfish")
	if err != nil {
		t.Fatalf("failed to get pufferfish: %v", err)
	}
	now := time.Now()
	pet.Unlocked = true
	pet.UnlockedAt = &now
	if err := store.SaveCollectible(pet); err != nil {
		t.Fatalf("failed to save pufferfish: %v", err)
	}

	if err := store.SetSelectedPet("pufferfish"); err != nil {
		t.Fatalf("failed to select pet: %v", err)
	}

	collectibles, err := store.GetCollectibles()
	if err != nil {
		t.Fatalf("failed to get collectibles: %v", err)
	}
	for _, c := range collectibles {
		if c.Kind != constants.CollectiblePet {
			continue
		}
		wantSelected := c.ID == "pufferfish"
		if c.Selected != wantSelected {
			t.Errorf("%s selected = %v, want %v", c.ID, c.Selected, wantSelected)
		}
	}
}

func TestResetRestoresSeed(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddIntake(models.IntakeRecord{
		ID: "a", Date: "2026-03-10", Kind: constants.IntakeWater, Amount: 500, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("failed to add intake: %v", err)
	}
	if err := store.SaveProfile(models.Profile{TotalXP: 100, SpendableXP: 100, Level: 2}); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	total, err := store.GetTotalForDay("2026-03-10")
	if err != nil {
		t.Fatalf("failed to get total: %v", err)
	}
	if total != 0 {
		t.Errorf("total after reset = %d, want 0", total)
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if profile.TotalXP != 0 || profile.Level != 1 {
		t.Errorf("profile after reset = %+v", profile)
	}

	collectibles, err := store.GetCollectibles()
	if err != nil {
		t.Fatalf("failed to get collectibles: %v", err)
	}
	if len(collectibles) != len(models.SeedCollectibles()) {
		t.Errorf("collectible count after reset = %d, want %d",
			len(collectibles), len(models.SeedCollectibles()))
	}
}
