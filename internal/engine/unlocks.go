package engine

// UnlockStats are the post-update figures the threshold pets are judged
// against.
type UnlockStats struct {
	Level               int
	BestStreak          int
	TotalVolume         int
	CompletedChallenges int
}

type unlockSpec struct {
	CollectibleID string
	Qualifies     func(UnlockStats) bool
}

// unlockCatalog maps each threshold pet to its condition. These are free
// unlocks, separate from the XP shop; each fires at most once.
var unlockCatalog = []unlockSpec{
	{"crystal_jelly", func(s UnlockStats) bool { return s.BestStreak >= 30 }},
	{"abyssal_jelly", func(s UnlockStats) bool { return s.TotalVolume >= 100000 }},
	{"royal_jelly", func(s UnlockStats) bool { return s.Level >= 10 }},
	{"neon_jelly", func(s UnlockStats) bool { return s.CompletedChallenges >= 30 }},
	{"cosmic_jelly", func(s UnlockStats) bool { return s.Level >= 20 }},
}
