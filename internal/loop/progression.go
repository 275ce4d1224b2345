package loop

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/object"
)

// LevelForScore derives the level from a score: one level per
// PointsPerLevel points, starting at 1.
func LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	return score/config.PointsPerLevel + 1
}

// loseLife takes one life, floored at zero, and reports whether none remain.
func (s *State) loseLife() (depleted bool) {
	if s.Game.Lives > 0 {
		s.Game.Lives--
	}
	return s.Game.Lives == 0
}

// burst emits count particles centred on (x, y).
func (s *State) burst(x, y float64, color colorful.Color, count int) {
	s.Particles = append(s.Particles, object.SpawnBurst(s.rng, x, y, color, count)...)
}

// progress recomputes the level from the current score and detects
// depletion. The level is derived on every tick, so it is never stale even
// if the score skips over a multiple of PointsPerLevel. Returns true when
// the game just ended.
func (s *State) progress() (over bool) {
	s.Game.Level = LevelForScore(s.Game.Score)
	if s.Game.Lives > 0 {
		return false
	}
	s.Game.Running = false
	return true
}
