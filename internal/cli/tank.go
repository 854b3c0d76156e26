package cli

import (
	"errors"
	"fmt"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/engine"
)

// PetListCmd lists pets and which one swims in the tank.
type PetListCmd struct{}

func (c *PetListCmd) Run(ctx *Context) error {
	collectibles, err := ctx.Store.GetCollectibles()
	if err != nil {
		return fmt.Errorf("failed to get collectibles: %w", err)
	}

	fmt.Println("Pets:")
	for _, item := range collectibles {
		if item.Kind != constants.CollectiblePet {
			continue
		}
		switch {
		case item.Selected:
			fmt.Printf("  ▶ %-16s (active)\n", item.Name)
		case item.Unlocked:
			fmt.Printf("    %-16s (%s)\n", item.Name, item.ID)
		default:
			fmt.Printf("  🔒 %s\n", item.Name)
		}
	}
	return nil
}

type PetSelectCmd struct {
	Pet string `arg:"" help:"Pet ID to make active."`
}

func (c *PetSelectCmd) Run(ctx *Context) error {
	pet, err := ctx.Engine.SelectPet(c.Pet)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrWrongKind):
			return fmt.Errorf("%q is not a pet", c.Pet)
		case errors.Is(err, engine.ErrNotUnlocked):
			return fmt.Errorf("pet %q is not unlocked yet", c.Pet)
		default:
			return err
		}
	}
	fmt.Printf("🐠 %s is now swimming in your tank.\n", pet.Name)
	return nil
}

// DecoListCmd lists decorations and whether they are placed in the tank.
type DecoListCmd struct{}

func (c *DecoListCmd) Run(ctx *Context) error {
	collectibles, err := ctx.Store.GetCollectibles()
	if err != nil {
		return fmt.Errorf("failed to get collectibles: %w", err)
	}

	fmt.Println("Decorations:")
	for _, item := range collectibles {
		if item.Kind != constants.CollectibleDecoration {
			continue
		}
		switch {
		case item.Selected:
			fmt.Printf("  ▶ %-16s (placed)\n", item.Name)
		case item.Unlocked:
			fmt.Printf("    %-16s (%s)\n", item.Name, item.ID)
		default:
			fmt.Printf("  🔒 %s\n", item.Name)
		}
	}
	return nil
}

type DecoPlaceCmd struct {
	Deco string `arg:"" help:"Decoration ID to place in the tank."`
}

func (c *DecoPlaceCmd) Run(ctx *Context) error {
	deco, err := ctx.Engine.PlaceDecoration(c.Deco, true)
	if err != nil {
		return decoError(c.Deco, err)
	}
	fmt.Printf("Placed %s in your tank.\n", deco.Name)
	return nil
}

type DecoHideCmd struct {
	Deco string `arg:"" help:"Decoration ID to remove from the tank."`
}

func (c *DecoHideCmd) Run(ctx *Context) error {
	deco, err := ctx.Engine.PlaceDecoration(c.Deco, false)
	if err != nil {
		return decoError(c.Deco, err)
	}
	fmt.Printf("Removed %s from your tank.\n", deco.Name)
	return nil
}

func decoError(id string, err error) error {
	switch {
	case errors.Is(err, engine.ErrWrongKind):
		return fmt.Errorf("%q is not a decoration", id)
	case errors.Is(err, engine.ErrNotUnlocked):
		return fmt.Errorf("decoration %q is not unlocked yet", id)
	default:
		return err
	}
}
