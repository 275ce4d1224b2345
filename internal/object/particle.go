package object

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/ha5him97/game/internal/loop/config"
)

// Particle is a short-lived visual effect. It never collides, but the
// simulation owns and retires it.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity per tick
	Life    int     // Ticks remaining
	MaxLife int     // Initial life (for fade calculation)
	Size    float64
	Color   colorful.Color
}

// SpawnBurst creates count particles at (x, y) flying off in random
// directions with the given colour.
func SpawnBurst(rng Rand, x, y float64, color colorful.Color, count int) []Particle {
	if count <= 0 {
		return nil
	}
	return lo.Times(count, func(int) Particle {
		return Particle{
			X:       x,
			Y:       y,
			VX:      (rng.Float64()*2 - 1) * config.ParticleMaxSpeed,
			VY:      (rng.Float64()*2 - 1) * config.ParticleMaxSpeed,
			Life:    config.ParticleLife,
			MaxLife: config.ParticleLife,
			Size:    config.ParticleMinSize + rng.Float64()*config.ParticleSizeRange,
			Color:   color,
		}
	})
}

// Step moves the particle, burns one tick of life and reports whether it is spent.
// A particle created with life L is removed by its L-th step.
func (p *Particle) Step() (remove bool) {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	return p.Life <= 0
}

// Alpha returns the linear fade, life/maxLife, always within [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	if p.Life >= p.MaxLife {
		return 1
	}
	return float64(p.Life) / float64(p.MaxLife)
}
