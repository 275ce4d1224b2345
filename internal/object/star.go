package object

import (
	"github.com/samber/lo"

	"github.com/ha5him97/game/internal/loop/config"
)

// Star is a background point scrolling down the screen.
type Star struct {
	X, Y    float64
	Size    float64
	Speed   float64
	Opacity float64
}

// NewStarField scatters count stars over the screen.
func NewStarField(rng Rand, screen Screen, count int) []Star {
	if count <= 0 {
		return nil
	}
	return lo.Times(count, func(int) Star {
		return Star{
			X:       rng.Float64() * screen.Width,
			Y:       rng.Float64() * screen.Height,
			Size:    rng.Float64() * config.StarMaxSize,
			Speed:   config.StarMinSpeed + rng.Float64()*config.StarSpeedRange,
			Opacity: rng.Float64(),
		}
	})
}

// Step scrolls the star down; once past the bottom edge it wraps to the top
// at a fresh random column.
func (s *Star) Step(rng Rand, screen Screen) {
	s.Y += s.Speed
	if s.Y > screen.Height {
		s.Y = 0
		s.X = rng.Float64() * screen.Width
	}
}
