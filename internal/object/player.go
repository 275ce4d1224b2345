package object

import (
	"github.com/ha5him97/game/internal/input"
	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/physics"
)

// Player is the ship controlled by the held key set.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per tick on each held axis
	Cooldown      int     // Ticks until the next shot is allowed; never negative
}

// NewPlayer creates a player at its spawn location for the given screen.
func NewPlayer(screen Screen) Player {
	p := Player{
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Speed:  config.PlayerSpeed,
	}
	p.Respawn(screen)
	return p
}

// Respawn moves the player back to the spawn location: horizontally at the
// screen midline, a fixed offset above the bottom edge. The position is
// clamped, so a tiny screen still yields a legal position.
func (p *Player) Respawn(screen Screen) {
	p.X = screen.Width / 2
	p.Y = screen.Height - config.PlayerSpawnYOffset
	p.Cooldown = 0
	p.clamp(screen)
}

// Move integrates the held direction keys, each axis independently clamped
// to [0, screen - size].
func (p *Player) Move(held input.KeySet, screen Screen) {
	if held.Has(input.KeyLeft) {
		p.X -= p.Speed
	}
	if held.Has(input.KeyRight) {
		p.X += p.Speed
	}
	if held.Has(input.KeyUp) {
		p.Y -= p.Speed
	}
	if held.Has(input.KeyDown) {
		p.Y += p.Speed
	}
	p.clamp(screen)
}

// Shoot fires if fire is held and the cooldown has elapsed, then advances
// the cooldown by one tick. The returned bool reports whether a bullet was
// fired.
func (p *Player) Shoot(held input.KeySet) (Bullet, bool) {
	var (
		b     Bullet
		fired bool
	)
	if held.Has(input.KeyFire) && p.Cooldown <= 0 {
		b = NewBullet(p.X+p.Width/2-config.BulletWidth/2, p.Y)
		fired = true
		p.Cooldown = config.ShootCooldownTicks
	}

	// Cooldown runs every tick, fire or not
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	return b, fired
}

// Rect returns the player's bounding box.
func (p *Player) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Player) clamp(screen Screen) {
	p.X = physics.Clamp(p.X, 0, screen.Width-p.Width)
	p.Y = physics.Clamp(p.Y, 0, screen.Height-p.Height)
}
