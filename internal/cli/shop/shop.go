// Package shop holds the commands for the XP shop: browsing the catalog
// and spending spendable XP on pets and decorations.
package shop

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/driplog/drip/internal/cli"
	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/engine"
	"github.com/driplog/drip/internal/models"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	collectibles, err := ctx.Store.GetCollectibles()
	if err != nil {
		return fmt.Errorf("failed to get collectibles: %w", err)
	}
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	fmt.Printf("Spendable XP: %d\n\n", profile.SpendableXP)

	fmt.Println("Pets:")
	printShopSection(collectibles, constants.CollectiblePet)
	fmt.Println("\nDecorations:")
	printShopSection(collectibles, constants.CollectibleDecoration)
	return nil
}

func printShopSection(collectibles []models.Collectible, kind constants.CollectibleKind) {
	for _, c := range collectibles {
		if c.Kind != kind {
			continue
		}
		switch {
		case c.Unlocked:
			fmt.Printf("  ✓ %-16s owned\n", c.Name)
		case c.Cost > 0:
			fmt.Printf("    %-16s %d XP  (%s)\n", c.Name, c.Cost, c.ID)
		default:
			// Threshold pets are earned, not bought
			fmt.Printf("  🔒 %-16s unlocked through progress\n", c.Name)
		}
	}
}

type BuyCmd struct {
	Item string `arg:"" help:"Item ID to purchase."`
	Yes  bool   `help:"Skip the confirmation prompt."`
}

func (c *BuyCmd) Run(ctx *cli.Context) error {
	item, err := ctx.Store.GetCollectible(c.Item)
	if err != nil {
		return fmt.Errorf("unknown item %q", c.Item)
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Buy %s for %d XP?", item.Name, item.Cost)).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Purchase cancelled.")
			return nil
		}
	}

	bought, err := ctx.Engine.Purchase(c.Item)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrAlreadyUnlocked):
			return fmt.Errorf("you already own %s", item.Name)
		case errors.Is(err, engine.ErrNotPurchasable):
			return fmt.Errorf("%s is unlocked through progress, not the shop", item.Name)
		case errors.Is(err, engine.ErrInsufficientXP):
			profile, perr := ctx.Store.GetProfile()
			if perr == nil {
				return fmt.Errorf("not enough XP: %s costs %d, you have %d spendable",
					item.Name, item.Cost, profile.SpendableXP)
			}
			return err
		default:
			return err
		}
	}

	fmt.Printf("✓ Purchased %s for %d XP!\n", bought.Name, bought.Cost)
	if bought.Kind == constants.CollectiblePet {
		fmt.Printf("  Select it with: drip pet select %s\n", bought.ID)
	} else {
		fmt.Printf("  Place it with: drip deco place %s\n", bought.ID)
	}
	return nil
}
