package cli

import (
	"fmt"

	"github.com/driplog/drip/internal/models"
)

type ChallengeCmd struct{}

func (c *ChallengeCmd) Run(ctx *Context) error {
	challenge, err := ctx.Engine.DailyChallenge()
	if err != nil {
		return err
	}
	printChallenge(challenge)
	return nil
}

func printChallenge(c models.DailyChallenge) {
	status := fmt.Sprintf("%d / %d", c.Progress, c.Target)
	if c.Completed {
		status = "✓ completed"
	}
	fmt.Printf("Today's challenge: %s\n", c.Description)
	fmt.Printf("  Progress: %s  (reward: %d XP)\n", status, c.XPReward)
}
