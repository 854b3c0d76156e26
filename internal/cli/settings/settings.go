package settings

import (
	"fmt"

	"github.com/driplog/drip/internal/cli"
	"github.com/driplog/drip/internal/models"
	"github.com/driplog/drip/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Goal                 *int    `help:"Daily goal in ml."`
	Presets              *string `help:"Comma-separated quick-log amounts, e.g. 250,330,500."`
	NotificationsEnabled *bool   `help:"Enable or disable tray notifications."`
	Timezone             *string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Daily Goal:            %d ml\n", settings.DailyGoal)
		fmt.Printf("  Presets:               %s\n", models.FormatPresets(settings.Presets))
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.Presets != nil {
		presets, err := models.ParsePresets(*c.Presets)
		if err != nil {
			return err
		}
		settings.Presets = presets
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.Timezone != nil {
		if !validation.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}

	// Goal changes go through the engine so today's snapshot gets pinned.
	// Saved after the other flags so the snapshot uses the new timezone.
	if c.Goal != nil {
		if err := ctx.Engine.SetDailyGoal(*c.Goal); err != nil {
			return err
		}
		updated = true
	}

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
