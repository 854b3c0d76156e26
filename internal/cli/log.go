package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/driplog/drip/internal/constants"
)

type LogCmd struct {
	Amount string `arg:"" optional:"" help:"Amount in ml (water) or cl (beer). Omit to pick a preset."`
	Beer   bool   `help:"Log beer (cl) instead of water (ml)."`
	Preset int    `short:"p" help:"Log the Nth configured preset (1-based)."`
}

func (c *LogCmd) Run(ctx *Context) error {
	kind := constants.IntakeWater
	if c.Beer {
		kind = constants.IntakeBeer
	}

	amount, err := c.resolveAmount(ctx)
	if err != nil {
		return err
	}

	res, err := ctx.Engine.RecordIntake(kind, amount)
	if err != nil {
		return err
	}

	PrintIntakeResult(res, kind)
	return nil
}

// resolveAmount parses the argument, or picks a preset when no amount was
// given. Without --preset the first preset is used.
func (c *LogCmd) resolveAmount(ctx *Context) (int, error) {
	if c.Amount != "" {
		amount, err := strconv.Atoi(c.Amount)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", c.Amount)
		}
		return amount, nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return 0, fmt.Errorf("failed to get settings: %w", err)
	}
	if len(settings.Presets) == 0 {
		return 0, fmt.Errorf("no amount given and no presets configured")
	}
	if c.Preset != 0 {
		if c.Preset < 1 || c.Preset > len(settings.Presets) {
			return 0, fmt.Errorf("preset %d out of range (1-%d)", c.Preset, len(settings.Presets))
		}
		return settings.Presets[c.Preset-1], nil
	}
	return settings.Presets[0], nil
}

// PresetsCmd lists the quick-log preset amounts.
type PresetsCmd struct{}

func (c *PresetsCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if len(settings.Presets) == 0 {
		fmt.Println("No presets configured.")
		return nil
	}

	var parts []string
	for _, p := range settings.Presets {
		parts = append(parts, strconv.Itoa(p))
	}
	fmt.Printf("Presets: %s\n", strings.Join(parts, ", "))
	return nil
}
