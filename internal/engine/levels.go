package engine

import "math"

// LevelForXP converts lifetime XP to a level: floor(sqrt(xp/100)) + 1.
// The adjustment loops pin the result to the integer boundaries of
// XPRequiredForLevel so the two functions stay exact inverses.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	level := int(math.Sqrt(float64(xp)/100)) + 1
	for XPRequiredForLevel(level+1) <= xp {
		level++
	}
	for level > 1 && XPRequiredForLevel(level) > xp {
		level--
	}
	return level
}

// XPRequiredForLevel is the inverse of LevelForXP: the minimum lifetime XP
// at which the given level is reached.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// XPIntoLevel returns how far into the current level the XP total is, and
// the size of the level, for progress-bar display.
func XPIntoLevel(xp int) (into, span int) {
	level := LevelForXP(xp)
	floor := XPRequiredForLevel(level)
	ceil := XPRequiredForLevel(level + 1)
	return xp - floor, ceil - floor
}
