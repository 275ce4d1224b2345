package object

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ha5him97/game/internal/loop/config"
)

// EnemySpawner introduces enemies at random, more often at higher levels.
type EnemySpawner struct {
	BaseRate  float64 // Spawn chance per tick at level 0
	LevelRate float64 // Added chance per level
	Color     colorful.Color
}

// NewEnemySpawner creates a spawner with the standard rates.
func NewEnemySpawner(color colorful.Color) EnemySpawner {
	return EnemySpawner{
		BaseRate:  config.SpawnBaseRate,
		LevelRate: config.SpawnLevelRate,
		Color:     color,
	}
}

// Chance returns the per-tick spawn probability for a level.
func (s EnemySpawner) Chance(level int) float64 {
	return s.BaseRate + float64(level)*s.LevelRate
}

// Update draws exactly one value from rng and, if it falls below the level's
// chance, returns a new enemy just above the top edge at a random column.
// Further draws for the enemy's position and speed only happen on a spawn.
func (s EnemySpawner) Update(rng Rand, level int, screen Screen) (Enemy, bool) {
	if rng.Float64() >= s.Chance(level) {
		return Enemy{}, false
	}

	x := rng.Float64() * (screen.Width - config.EnemyWidth)
	if x < 0 {
		x = 0
	}
	speed := config.EnemyMinSpeed + rng.Float64()*config.EnemySpeedRange
	return NewEnemy(x, -config.EnemyHeight, speed, s.Color), true
}
