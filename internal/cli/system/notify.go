package system

import (
	"fmt"

	"github.com/driplog/drip/internal/cli"
	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/logger"
	"github.com/driplog/drip/internal/notifier"
)

// NotifyCmd pushes the current progress to the tray. It is hidden; the tray
// itself and cron-style schedulers invoke it.
type NotifyCmd struct {
	DryRun bool `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	// A failed read degrades to a default render rather than skipping the
	// notification entirely.
	current, goal := 0, constants.DefaultDailyGoal
	if status, err := ctx.Engine.Today(); err != nil {
		logger.Warn("Falling back to default progress render", "error", err)
	} else {
		current, goal = status.Total, status.Goal
	}

	if c.DryRun {
		fmt.Printf("[DryRun] %d / %d\n", current, goal)
		return nil
	}

	n := notifier.New()
	if err := n.NotifyProgress(current, goal); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
