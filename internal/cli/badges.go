package cli

import (
	"fmt"

	"github.com/driplog/drip/internal/constants"
)

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *Context) error {
	badges, err := ctx.Store.GetBadges()
	if err != nil {
		return fmt.Errorf("failed to get badges: %w", err)
	}

	if len(badges) == 0 {
		fmt.Println("No badges earned yet. Keep drinking!")
		return nil
	}

	fmt.Printf("Badges earned (%d):\n", len(badges))
	for _, b := range badges {
		fmt.Printf("  🏅 %-14s %s (%s)\n", b.Type, b.Description, b.EarnedAt.Format(constants.DateFormat))
	}
	return nil
}
