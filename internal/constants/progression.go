package constants

const (
	// XP awards
	XPPerHundredUnits  = 1   // 1 XP per 100 units logged
	XPGoalBonus        = 50  // flat bonus the moment an intake crosses the daily goal
	StreakBonusStep    = 0.1 // +10% XP per consecutive streak day
	StreakBonusCapDays = 5   // multiplier stops growing at a 5-day streak

	// Time-of-day cutoffs for challenges, minutes from midnight
	EarlyBirdCutoffMin     = 9 * 60
	AfternoonGoalCutoffMin = 15 * 60
)
