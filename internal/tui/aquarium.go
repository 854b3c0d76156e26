package tui

import (
	"strings"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/models"
)

// petArt maps pet IDs to their two-line tank sprite. Unknown IDs fall back
// to the starter jelly.
var petArt = map[string][]string{
	"moon_jelly":    {`  (\___/)  `, `   )   (   `},
	"crystal_jelly": {`  (\*+*/)  `, `   )+ +(   `},
	"abyssal_jelly": {`  (\###/)  `, `   )# #(   `},
	"royal_jelly":   {`  (\WWW/)  `, `   )   (   `},
	"neon_jelly":    {`  (\:::/)  `, `   ): :(   `},
	"cosmic_jelly":  {`  (\.*./)  `, `   )* *(   `},
	"pufferfish":    {`  <(o)>    `, `    \/     `},
	"seahorse":      {`    ,~S    `, `    '-(    `},
	"axolotl":       {`  >(^-^)<  `, `    ~~~    `},
}

// decoArt maps decoration IDs to the glyph shown on the tank floor.
var decoArt = map[string]string{
	"kelp":           "ψψ",
	"coral":          "&&",
	"pearl":          "(o)",
	"treasure_chest": "[$]",
	"shipwreck":      "/X\\",
}

// renderAquarium draws the tank: water fill proportional to progress, the
// selected pet, and every placed decoration on the floor.
func renderAquarium(collectibles []models.Collectible, current, goal int) string {
	const width = 32
	const height = 8

	waterRows := 0
	if goal > 0 {
		waterRows = current * height / goal
	}
	if waterRows > height {
		waterRows = height
	}

	pet := selectedPet(collectibles)
	art, ok := petArt[pet]
	if !ok {
		art = petArt["moon_jelly"]
	}

	rows := make([]string, height)
	for i := range rows {
		depth := height - i // 1 is the floor row
		filled := depth <= waterRows

		var row string
		switch {
		case i == height/2-1 && filled:
			row = center(art[0], width)
		case i == height/2 && filled:
			row = center(art[1], width)
		case depth == 1:
			row = center(floorRow(collectibles), width)
		default:
			row = strings.Repeat(" ", width)
		}

		if filled {
			row = strings.ReplaceAll(row, " ", "~")
		}
		rows[i] = row
	}

	return strings.Join(rows, "\n")
}

func selectedPet(collectibles []models.Collectible) string {
	for _, c := range collectibles {
		if c.Kind == constants.CollectiblePet && c.Selected {
			return c.ID
		}
	}
	return "moon_jelly"
}

func floorRow(collectibles []models.Collectible) string {
	var parts []string
	for _, c := range collectibles {
		if c.Kind != constants.CollectibleDecoration || !c.Selected {
			continue
		}
		if glyph, ok := decoArt[c.ID]; ok {
			parts = append(parts, glyph)
		}
	}
	if len(parts) == 0 {
		return "____"
	}
	return strings.Join(parts, "  ")
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
