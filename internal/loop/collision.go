package loop

import (
	"github.com/samber/lo"

	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/object"
	"github.com/ha5him97/game/internal/physics"
)

// resolveCollisions applies the consequences of this tick's contacts in a
// fixed order: enemies that slipped past the bottom edge, then the player
// against each enemy, then bullets against the surviving enemies. Once lives
// run out the rest of the pass is skipped, so lives never drop below zero.
func (s *State) resolveCollisions() {
	if s.checkMissedEnemies() {
		return
	}
	if s.checkPlayerCollisions() {
		return
	}
	s.checkBulletCollisions()
}

// checkMissedEnemies removes enemies below the surface. Each costs a life
// but leaves no burst. Returns true when lives ran out.
func (s *State) checkMissedEnemies() (depleted bool) {
	kept := s.Enemies[:0]
	for i := range s.Enemies {
		e := s.Enemies[i]
		if depleted || !e.Missed(s.Screen) {
			kept = append(kept, e)
			continue
		}
		depleted = s.loseLife()
	}
	s.Enemies = kept
	return depleted
}

// checkPlayerCollisions removes every enemy touching the player, costing a
// life and bursting in the enemy's colour at its centre. Returns true when
// lives ran out.
func (s *State) checkPlayerCollisions() (depleted bool) {
	pr := s.Player.Rect()

	kept := s.Enemies[:0]
	for i := range s.Enemies {
		e := s.Enemies[i]
		if depleted || !physics.Overlaps(pr, e.Rect()) {
			kept = append(kept, e)
			continue
		}
		cx, cy := e.Center()
		s.burst(cx, cy, e.Color, config.HitBurstCount)
		depleted = s.loseLife()
	}
	s.Enemies = kept
	return depleted
}

// checkBulletCollisions pairs bullets with enemies. Enemies are visited
// newest first, and each is hit by at most one bullet per tick: the
// overlapping bullet with the highest index, i.e. the newest one. A bullet is
// spent on the first enemy it hits.
//
// Candidates come from the broad-phase grid; the exact overlap test decides.
func (s *State) checkBulletCollisions() {
	if len(s.Bullets) == 0 || len(s.Enemies) == 0 {
		return
	}

	s.grid.Clear()
	for i := range s.Bullets {
		s.grid.Insert(s.Bullets[i].X, s.Bullets[i].Y, i)
	}
	s.hits = resetMask(s.hits, len(s.Bullets))
	s.killed = resetMask(s.killed, len(s.Enemies))

	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := &s.Enemies[i]
		er := e.Rect()

		hit := -1
		s.grid.QueryAround(e.X, e.Y, func(bi int) bool {
			if s.hits[bi] || bi < hit {
				return false
			}
			if physics.Overlaps(s.Bullets[bi].Rect(), er) {
				hit = bi
			}
			return false
		})
		if hit < 0 {
			continue
		}

		s.hits[hit] = true
		if !e.Damage() {
			continue
		}
		s.killed[i] = true
		s.Game.Score += config.ScorePerKill
		cx, cy := e.Center()
		s.burst(cx, cy, s.palette.Bullet, config.KillBurstCount)
	}

	s.Enemies = lo.Reject(s.Enemies, func(_ object.Enemy, i int) bool {
		return s.killed[i]
	})
	s.Bullets = lo.Reject(s.Bullets, func(_ object.Bullet, i int) bool {
		return s.hits[i]
	})
}

// resetMask returns mask resized to n with every entry false.
func resetMask(mask []bool, n int) []bool {
	if cap(mask) < n {
		return make([]bool, n)
	}
	mask = mask[:n]
	clear(mask)
	return mask
}
