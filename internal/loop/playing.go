package loop

import (
	"github.com/ha5him97/game/internal/input"
)

// tick advances the simulation by one step: movement, spawning, collision,
// progression, always in that order. It reports whether the step ended the
// game.
func (s *State) tick(held input.KeySet) (over bool) {
	s.move(held)
	s.spawn()
	s.resolveCollisions()
	return s.progress()
}

// move integrates every pool and retires entities that left the surface or
// burned out. A bullet fired this tick already travels this tick.
func (s *State) move(held input.KeySet) {
	s.Player.Move(held, s.Screen)
	if b, fired := s.Player.Shoot(held); fired {
		s.Bullets = append(s.Bullets, b)
	}

	// Update bullets and collect ones to keep
	kept := s.Bullets[:0] // reuse backing array
	for i := range s.Bullets {
		if !s.Bullets[i].Step() {
			kept = append(kept, s.Bullets[i])
		}
	}
	s.Bullets = kept

	for i := range s.Enemies {
		s.Enemies[i].Step()
	}

	particles := s.Particles[:0]
	for i := range s.Particles {
		if !s.Particles[i].Step() {
			particles = append(particles, s.Particles[i])
		}
	}
	s.Particles = particles

	for i := range s.Stars {
		s.Stars[i].Step(s.rng, s.Screen)
	}
}

// spawn gives the spawner its one draw for this tick. A new enemy does not
// move until the next tick.
func (s *State) spawn() {
	if e, ok := s.spawner.Update(s.rng, s.Game.Level, s.Screen); ok {
		s.Enemies = append(s.Enemies, e)
	}
}
