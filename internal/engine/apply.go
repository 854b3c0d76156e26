package engine

import (
	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

// computeXP derives the XP for one intake: base XP per 100 units, the streak
// multiplier (capped at +50%), then the flat goal-crossing bonus when this
// event is the one that pushes the day's total over the goal. The bonus is
// not multiplied.
func computeXP(amount, streak, previousTotal, currentTotal, goal int) (xp int, goalCrossed bool) {
	base := amount / 100 * constants.XPPerHundredUnits

	bonusDays := streak
	if bonusDays > constants.StreakBonusCapDays {
		bonusDays = constants.StreakBonusCapDays
	}
	xp = int(float64(base) * (1 + constants.StreakBonusStep*float64(bonusDays)))

	if previousTotal < goal && goal <= currentTotal {
		xp += constants.XPGoalBonus
		goalCrossed = true
	}
	return xp, goalCrossed
}

// applyIntake folds one intake into the profile and returns the new profile.
// Pure: persistence is the caller's job.
func applyIntake(p models.Profile, date string, amount, currentTotal, streak, xpEarned int) models.Profile {
	p.TotalXP += xpEarned
	p.SpendableXP += xpEarned
	p.Level = LevelForXP(p.TotalXP)
	p.TotalVolume += amount
	if currentTotal > p.DailyRecord {
		p.DailyRecord = currentTotal
	}
	if streak > p.BestStreak {
		p.BestStreak = streak
	}
	// First intake of a new calendar day
	if p.LastActiveDate != date {
		p.ActiveDays++
		p.LastActiveDate = date
	}
	return p
}

// awardXP credits both pools and recomputes the level. Used for challenge
// rewards.
func awardXP(p models.Profile, xp int) models.Profile {
	p.TotalXP += xp
	p.SpendableXP += xp
	p.Level = LevelForXP(p.TotalXP)
	return p
}
