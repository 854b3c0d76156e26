package engine

import (
	"math/rand"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

// challengeSpec is one entry in the fixed daily-challenge catalog.
type challengeSpec struct {
	Type        constants.ChallengeType
	Description string
	Target      int // 0 means the target is derived at generation time
	XPReward    int
}

// challengeCatalog is the fixed set a day's challenge is drawn from.
var challengeCatalog = []challengeSpec{
	{constants.ChallengeEarlyBird, "Log a drink before 09:00", 1, 30},
	{constants.ChallengeConsistent, "Log 6 separate drinks today", 6, 40},
	{constants.ChallengeBigGulp, "Log a single drink of at least 500", 500, 25},
	{constants.ChallengeAfternoonGoal, "Reach your daily goal before 15:00", 0, 50},
	{constants.ChallengeFullTank, "Fill the tank to 120% of your goal", 120, 60},
}

// generateChallenge draws one challenge uniformly at random from the catalog
// for the given date. The afternoon_goal target is the goal in effect at
// generation time.
func generateChallenge(date string, goal int, rng *rand.Rand) models.DailyChallenge {
	spec := challengeCatalog[rng.Intn(len(challengeCatalog))]
	target := spec.Target
	if spec.Type == constants.ChallengeAfternoonGoal {
		target = goal
	}
	return models.DailyChallenge{
		Date:        date,
		Type:        spec.Type,
		Description: spec.Description,
		Target:      target,
		XPReward:    spec.XPReward,
	}
}

// challengeEvent carries everything a progress rule can look at for one
// just-recorded intake.
type challengeEvent struct {
	Amount       int
	CurrentTotal int
	Goal         int
	EventsToday  int // count of today's intake events including this one
	MinutesOfDay int // local time of this event, minutes from midnight
}

// updateChallenge applies the per-type progress rule to the challenge in
// place and reports whether this event completed it. A challenge that is
// already completed is never re-evaluated.
func updateChallenge(c *models.DailyChallenge, ev challengeEvent) bool {
	if c.Completed {
		return false
	}

	switch c.Type {
	case constants.ChallengeEarlyBird:
		if ev.MinutesOfDay < constants.EarlyBirdCutoffMin {
			c.Progress = c.Target
			c.Completed = true
		}
	case constants.ChallengeConsistent:
		c.Progress = ev.EventsToday
		if c.Progress >= c.Target {
			c.Completed = true
		}
	case constants.ChallengeBigGulp:
		if ev.Amount > c.Progress {
			c.Progress = ev.Amount
		}
		if ev.Amount >= c.Target {
			c.Completed = true
		}
	case constants.ChallengeAfternoonGoal:
		c.Progress = ev.CurrentTotal
		if ev.CurrentTotal >= ev.Goal && ev.MinutesOfDay < constants.AfternoonGoalCutoffMin {
			c.Completed = true
		}
	case constants.ChallengeFullTank:
		if ev.Goal > 0 {
			c.Progress = ev.CurrentTotal * 100 / ev.Goal
		}
		if c.Progress >= c.Target {
			c.Completed = true
		}
	}

	return c.Completed
}
