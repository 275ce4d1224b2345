package object

import (
	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/physics"
)

// Bullet is a shot travelling straight up.
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Upward units per tick
}

// NewBullet creates a bullet with its top-left corner at (x, y).
func NewBullet(x, y float64) Bullet {
	return Bullet{
		X:      x,
		Y:      y,
		Width:  config.BulletWidth,
		Height: config.BulletHeight,
		Speed:  config.BulletSpeed,
	}
}

// Step moves the bullet and reports whether it left the top of the screen.
func (b *Bullet) Step() (remove bool) {
	b.Y -= b.Speed
	return b.Y < 0
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
