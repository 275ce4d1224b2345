package config

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds every colour the renderers use.
type Palette struct {
	Player        colorful.Color
	PlayerCockpit colorful.Color
	PlayerEngine  colorful.Color
	Bullet        colorful.Color
	Enemy         colorful.Color
	EnemyCore     colorful.Color
	Star          colorful.Color
	Background    colorful.Color
}

// DefaultPalette returns the neon palette.
func DefaultPalette() Palette {
	return Palette{
		Player:        mustHex("#00ffff"),
		PlayerCockpit: mustHex("#ffffff"),
		PlayerEngine:  mustHex("#0080ff"),
		Bullet:        mustHex("#00ffff"),
		Enemy:         mustHex("#ff0040"),
		EnemyCore:     mustHex("#ff4080"),
		Star:          mustHex("#ffffff"),
		Background:    mustHex("#000011"),
	}
}

// WithOverrides returns a copy of p with the given role -> hex colours applied.
// Roles: player, enemy, bullet, background.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	for role, hex := range overrides {
		c, err := colorful.Hex(hex)
		if err != nil {
			return p, fmt.Errorf("palette %s: %w", role, err)
		}
		switch role {
		case "player":
			p.Player = c
		case "enemy":
			p.Enemy = c
		case "bullet":
			p.Bullet = c
		case "background":
			p.Background = c
		default:
			return p, fmt.Errorf("palette: unknown role %q", role)
		}
	}
	return p, nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
