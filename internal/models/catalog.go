package models

import "github.com/driplog/drip/internal/constants"

// SeedCollectibles returns the fixed aquarium catalog inserted on first
// initialization. Catalog membership and costs never change at runtime.
// Cost 0 entries are threshold unlocks handled by the progression engine;
// the moon jellyfish starts unlocked and selected.
func SeedCollectibles() []Collectible {
	return []Collectible{
		// Pets
		{ID: "moon_jelly", Name: "Moon Jellyfish", Kind: constants.CollectiblePet, Cost: 0, Unlocked: true, Selected: true},
		{ID: "pufferfish", Name: "Pufferfish", Kind: constants.CollectiblePet, Cost: 500},
		{ID: "seahorse", Name: "Seahorse", Kind: constants.CollectiblePet, Cost: 800},
		{ID: "axolotl", Name: "Axolotl", Kind: constants.CollectiblePet, Cost: 1200},

		// Threshold pets, unlocked for free by the progression engine
		{ID: "crystal_jelly", Name: "Crystal Jellyfish", Kind: constants.CollectiblePet, Cost: 0},
		{ID: "abyssal_jelly", Name: "Abyssal Jellyfish", Kind: constants.CollectiblePet, Cost: 0},
		{ID: "royal_jelly", Name: "Royal Jellyfish", Kind: constants.CollectiblePet, Cost: 0},
		{ID: "neon_jelly", Name: "Neon Jellyfish", Kind: constants.CollectiblePet, Cost: 0},
		{ID: "cosmic_jelly", Name: "Cosmic Jellyfish", Kind: constants.CollectiblePet, Cost: 0},

		// Decorations
		{ID: "kelp", Name: "Kelp Forest", Kind: constants.CollectibleDecoration, Cost: 200},
		{ID: "coral", Name: "Coral Reef", Kind: constants.CollectibleDecoration, Cost: 300},
		{ID: "pearl", Name: "Giant Pearl", Kind: constants.CollectibleDecoration, Cost: 400},
		{ID: "treasure_chest", Name: "Treasure Chest", Kind: constants.CollectibleDecoration, Cost: 600},
		{ID: "shipwreck", Name: "Shipwreck", Kind: constants.CollectibleDecoration, Cost: 900},
	}
}
