package object

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/physics"
)

// Enemy is a ship descending at a fixed speed.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Downward units per tick
	Health        int
	Color         colorful.Color // Also the colour of the burst it leaves on the player
}

// NewEnemy creates an enemy with its top-left corner at (x, y).
func NewEnemy(x, y, speed float64, color colorful.Color) Enemy {
	return Enemy{
		X:      x,
		Y:      y,
		Width:  config.EnemyWidth,
		Height: config.EnemyHeight,
		Speed:  speed,
		Health: config.EnemyHealth,
		Color:  color,
	}
}

// Step moves the enemy down.
func (e *Enemy) Step() {
	e.Y += e.Speed
}

// Missed reports whether the enemy has passed the bottom edge.
func (e *Enemy) Missed(screen Screen) bool {
	return e.Y > screen.Height
}

// Damage removes one point of health and reports whether the enemy is destroyed.
func (e *Enemy) Damage() (destroyed bool) {
	if e.Health > 0 {
		e.Health--
	}
	return e.Health <= 0
}

// Center returns the centre of the enemy's bounding box.
func (e *Enemy) Center() (float64, float64) {
	return e.Rect().Center()
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}
