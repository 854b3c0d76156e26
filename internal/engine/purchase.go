package engine

import (
	"errors"
	"fmt"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

var (
	// ErrAlreadyUnlocked means the item needs no purchase.
	ErrAlreadyUnlocked = errors.New("item is already unlocked")
	// ErrInsufficientXP means spendable XP does not cover the cost.
	ErrInsufficientXP = errors.New("not enough spendable XP")
	// ErrNotPurchasable means the item unlocks through thresholds, not XP.
	ErrNotPurchasable = errors.New("item cannot be purchased")
	// ErrNotUnlocked means the item must be unlocked before use.
	ErrNotUnlocked = errors.New("item is not unlocked")
	// ErrWrongKind means the item is not the expected collectible kind.
	ErrWrongKind = errors.New("item is not of the expected kind")
)

// Purchase spends XP on a shop item. All preconditions are checked before
// any state changes; on failure nothing is deducted and nothing unlocks.
func (e *Engine) Purchase(itemID string) (models.Collectible, error) {
	item, err := e.store.GetCollectible(itemID)
	if err != nil {
		return models.Collectible{}, fmt.Errorf("failed to get collectible %s: %w", itemID, err)
	}
	if item.Unlocked {
		return models.Collectible{}, ErrAlreadyUnlocked
	}
	if item.Cost <= 0 {
		// Threshold pets carry a zero cost and never pass through the shop.
		return models.Collectible{}, ErrNotPurchasable
	}

	profile, err := e.store.GetProfile()
	if err != nil {
		return models.Collectible{}, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.SpendableXP < item.Cost {
		return models.Collectible{}, ErrInsufficientXP
	}

	profile.SpendableXP -= item.Cost
	if err := e.store.SaveProfile(profile); err != nil {
		return models.Collectible{}, fmt.Errorf("failed to save profile: %w", err)
	}

	t := e.now()
	item.Unlocked = true
	item.UnlockedAt = &t
	if err := e.store.SaveCollectible(item); err != nil {
		return models.Collectible{}, fmt.Errorf("failed to save collectible %s: %w", item.ID, err)
	}
	return item, nil
}

// SelectPet makes an unlocked pet the active one. Exactly one pet is
// selected at any time.
func (e *Engine) SelectPet(itemID string) (models.Collectible, error) {
	item, err := e.store.GetCollectible(itemID)
	if err != nil {
		return models.Collectible{}, fmt.Errorf("failed to get collectible %s: %w", itemID, err)
	}
	if item.Kind != constants.CollectiblePet {
		return models.Collectible{}, ErrWrongKind
	}
	if !item.Unlocked {
		return models.Collectible{}, ErrNotUnlocked
	}
	if err := e.store.SetSelectedPet(itemID); err != nil {
		return models.Collectible{}, fmt.Errorf("failed to select pet: %w", err)
	}
	item.Selected = true
	return item, nil
}

// PlaceDecoration shows or hides an unlocked decoration in the aquarium.
// Any number of decorations can be placed at once.
func (e *Engine) PlaceDecoration(itemID string, placed bool) (models.Collectible, error) {
	item, err := e.store.GetCollectible(itemID)
	if err != nil {
		return models.Collectible{}, fmt.Errorf("failed to get collectible %s: %w", itemID, err)
	}
	if item.Kind != constants.CollectibleDecoration {
		return models.Collectible{}, ErrWrongKind
	}
	if !item.Unlocked {
		return models.Collectible{}, ErrNotUnlocked
	}
	item.Selected = placed
	if err := e.store.SaveCollectible(item); err != nil {
		return models.Collectible{}, fmt.Errorf("failed to save collectible %s: %w", item.ID, err)
	}
	return item, nil
}
