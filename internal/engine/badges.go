package engine

import (
	"github.com/driplog/drip/internal/models"
)

// BadgeContext is the snapshot a badge predicate sees: the post-update
// profile plus today's running total and the live goal.
type BadgeContext struct {
	CurrentTotal        int
	Goal                int
	Streak              int
	Profile             models.Profile
	CompletedChallenges int
}

type badgeSpec struct {
	Type        string
	Description string
	Qualifies   func(BadgeContext) bool
}

// badgeCatalog is scanned in order; the first newly-qualifying entry wins.
// A user crossing two thresholds on one intake gets the earlier badge now
// and the later one on the next triggering event. That ordering-dependent
// behavior is kept as-is.
var badgeCatalog = []badgeSpec{
	{"first_sip", "Logged your very first drink", func(c BadgeContext) bool {
		return c.Profile.TotalVolume > 0
	}},
	{"goal_met", "Met your daily goal for the first time", func(c BadgeContext) bool {
		return c.CurrentTotal >= c.Goal
	}},
	{"streak_3", "Met your goal 3 days in a row", func(c BadgeContext) bool {
		return c.Streak >= 3
	}},
	{"streak_7", "Met your goal 7 days in a row", func(c BadgeContext) bool {
		return c.Streak >= 7
	}},
	{"streak_14", "Met your goal 14 days in a row", func(c BadgeContext) bool {
		return c.Streak >= 14
	}},
	{"streak_30", "Met your goal 30 days in a row", func(c BadgeContext) bool {
		return c.Streak >= 30
	}},
	{"volume_10k", "Logged 10,000 units all-time", func(c BadgeContext) bool {
		return c.Profile.TotalVolume >= 10000
	}},
	{"volume_50k", "Logged 50,000 units all-time", func(c BadgeContext) bool {
		return c.Profile.TotalVolume >= 50000
	}},
	{"volume_100k", "Logged 100,000 units all-time", func(c BadgeContext) bool {
		return c.Profile.TotalVolume >= 100000
	}},
	{"active_7", "Logged a drink on 7 different days", func(c BadgeContext) bool {
		return c.Profile.ActiveDays >= 7
	}},
	{"active_30", "Logged a drink on 30 different days", func(c BadgeContext) bool {
		return c.Profile.ActiveDays >= 30
	}},
	{"level_5", "Reached level 5", func(c BadgeContext) bool {
		return c.Profile.Level >= 5
	}},
	{"level_10", "Reached level 10", func(c BadgeContext) bool {
		return c.Profile.Level >= 10
	}},
	{"challenges_5", "Completed 5 daily challenges", func(c BadgeContext) bool {
		return c.CompletedChallenges >= 5
	}},
	{"challenges_15", "Completed 15 daily challenges", func(c BadgeContext) bool {
		return c.CompletedChallenges >= 15
	}},
}

// firstNewBadge returns the first catalog entry whose condition holds and
// whose type is not in earned, or nil when nothing new qualifies.
func firstNewBadge(ctx BadgeContext, earned map[string]bool) *badgeSpec {
	for i := range badgeCatalog {
		spec := &badgeCatalog[i]
		if earned[spec.Type] {
			continue
		}
		if spec.Qualifies(ctx) {
			return spec
		}
	}
	return nil
}
