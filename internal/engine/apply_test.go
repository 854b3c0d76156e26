package engine

import (
	"testing"

	"github.com/driplog/drip/internal/models"
)

func TestComputeXP(t *testing.T) {
	tests := []struct {
		name          string
		amount        int
		streak        int
		previousTotal int
		currentTotal  int
		goal          int
		wantXP        int
		wantCrossed   bool
	}{
		{"base rate", 500, 0, 0, 500, 2000, 5, false},
		{"sub-100 amount earns nothing", 99, 0, 0, 99, 2000, 0, false},
		{"truncates per 100", 250, 0, 0, 250, 2000, 2, false},
		{"streak multiplier", 1000, 3, 0, 1000, 2000, 13, false},
		{"multiplier caps at 5 days", 1000, 12, 0, 1000, 2000, 15, false},
		{"goal cross adds flat bonus", 1000, 0, 1500, 2500, 2000, 60, true},
		{"bonus is not multiplied", 1000, 5, 1500, 2500, 2000, 65, true},
		{"exact landing on goal crosses", 500, 0, 1500, 2000, 2000, 55, true},
		{"already past goal, no bonus", 500, 0, 2000, 2500, 2000, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xp, crossed := computeXP(tt.amount, tt.streak, tt.previousTotal, tt.currentTotal, tt.goal)
			if xp != tt.wantXP {
				t.Errorf("computeXP() xp = %d, want %d", xp, tt.wantXP)
			}
			if crossed != tt.wantCrossed {
				t.Errorf("computeXP() crossed = %v, want %v", crossed, tt.wantCrossed)
			}
		})
	}
}

func TestApplyIntake(t *testing.T) {
	p := models.Profile{Level: 1}

	p = applyIntake(p, "2026-03-10", 1000, 1000, 0, 10)
	if p.TotalXP != 10 || p.SpendableXP != 10 {
		t.Errorf("XP pools = %d/%d, want 10/10", p.TotalXP, p.SpendableXP)
	}
	if p.TotalVolume != 1000 {
		t.Errorf("TotalVolume = %d, want 1000", p.TotalVolume)
	}
	if p.ActiveDays != 1 || p.LastActiveDate != "2026-03-10" {
		t.Errorf("ActiveDays = %d, LastActiveDate = %q", p.ActiveDays, p.LastActiveDate)
	}
	if p.DailyRecord != 1000 {
		t.Errorf("DailyRecord = %d, want 1000", p.DailyRecord)
	}

	// Same day again: ActiveDays must not move
	p = applyIntake(p, "2026-03-10", 500, 1500, 1, 5)
	if p.ActiveDays != 1 {
		t.Errorf("ActiveDays after same-day intake = %d, want 1", p.ActiveDays)
	}
	if p.DailyRecord != 1500 {
		t.Errorf("DailyRecord = %d, want 1500", p.DailyRecord)
	}
	if p.BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1", p.BestStreak)
	}

	// New day increments ActiveDays; lower daily total keeps the record
	p = applyIntake(p, "2026-03-11", 300, 300, 1, 3)
	if p.ActiveDays != 2 {
		t.Errorf("ActiveDays after new day = %d, want 2", p.ActiveDays)
	}
	if p.DailyRecord != 1500 {
		t.Errorf("DailyRecord = %d, want 1500", p.DailyRecord)
	}
}

func TestAwardXPRecomputesLevel(t *testing.T) {
	p := models.Profile{TotalXP: 95, SpendableXP: 20, Level: 1}
	p = awardXP(p, 10)
	if p.TotalXP != 105 || p.SpendableXP != 30 {
		t.Errorf("XP pools = %d/%d, want 105/30", p.TotalXP, p.SpendableXP)
	}
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2", p.Level)
	}
}
