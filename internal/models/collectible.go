package models

import (
	"time"

	"github.com/driplog/drip/internal/constants"
)

// Collectible is an aquarium cosmetic: a pet species or a decoration.
// Cost 0 marks threshold unlocks that are never purchasable. Exactly one pet
// is Selected at a time; decorations toggle Placed independently.
type Collectible struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	Kind       constants.CollectibleKind `json:"kind"`
	Cost       int                       `json:"cost"`
	Unlocked   bool                      `json:"unlocked"`
	Selected   bool                      `json:"selected"` // pets: active species; decorations: placed in tank
	UnlockedAt *time.Time                `json:"unlocked_at,omitempty"`
}
