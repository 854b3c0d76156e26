package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/driplog/drip/internal/cli"
)

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all progress?").
				Description("This wipes every intake, your XP, badges, challenges, and unlocks. There is no undo.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := ctx.Engine.Reset(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	fmt.Println("✓ All progress reset. Your moon jelly awaits a fresh start.")
	return nil
}
