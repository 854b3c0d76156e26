package engine

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{8100, 10},
		{36100, 20},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXPNegative(t *testing.T) {
	if got := LevelForXP(-10); got != 1 {
		t.Errorf("LevelForXP(-10) = %d, want 1", got)
	}
}

func TestXPRequiredForLevelIsExactInverse(t *testing.T) {
	for level := 1; level <= 60; level++ {
		threshold := XPRequiredForLevel(level)
		if got := LevelForXP(threshold); got != level {
			t.Errorf("LevelForXP(XPRequiredForLevel(%d)=%d) = %d, want %d",
				level, threshold, got, level)
		}
		if level > 1 {
			if got := LevelForXP(threshold - 1); got != level-1 {
				t.Errorf("LevelForXP(%d) = %d, want %d", threshold-1, got, level-1)
			}
		}
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := 1
	for xp := 0; xp <= 10000; xp += 7 {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("LevelForXP(%d) = %d dropped below previous level %d", xp, level, prev)
		}
		prev = level
	}
}

func TestXPIntoLevel(t *testing.T) {
	into, span := XPIntoLevel(150)
	if into != 50 {
		t.Errorf("XPIntoLevel(150) into = %d, want 50", into)
	}
	if span != 300 {
		t.Errorf("XPIntoLevel(150) span = %d, want 300", span)
	}
}
