// Package config centralizes all tunable game parameters.
package config

import "time"

// Logical surface - the simulation works in these units.
// Front ends scale it to whatever they can display.
const (
	ViewWidth  = 800
	ViewHeight = 600
)

// Player
const (
	PlayerWidth        = 40
	PlayerHeight       = 40
	PlayerSpeed        = 5.0 // Units per tick per held axis
	PlayerSpawnYOffset = 60  // Spawn row measured up from the bottom edge
	ShootCooldownTicks = 10
)

// Bullets
const (
	BulletWidth  = 4
	BulletHeight = 10
	BulletSpeed  = 8.0
)

// Enemies
const (
	EnemyWidth      = 30
	EnemyHeight     = 30
	EnemyHealth     = 1
	EnemyMinSpeed   = 1.0
	EnemySpeedRange = 2.0 // Speed is drawn from [EnemyMinSpeed, EnemyMinSpeed+EnemySpeedRange)
)

// Spawning
const (
	SpawnBaseRate  = 0.02
	SpawnLevelRate = 0.005
)

// Particles
const (
	ParticleLife      = 30 // Ticks
	ParticleMaxSpeed  = 4.0
	ParticleMinSize   = 1.0
	ParticleSizeRange = 3.0
	HitBurstCount     = 15 // Player rammed by an enemy
	KillBurstCount    = 20 // Enemy shot down
)

// Star field
const (
	StarCount      = 100
	StarMaxSize    = 2.0
	StarMinSpeed   = 1.0
	StarSpeedRange = 2.0
)

// Scoring and progression
const (
	InitialLives   = 3
	ScorePerKill   = 10
	PointsPerLevel = 100
)

// Glow radii per sprite, in logical units.
const (
	PlayerGlow = 20
	EnemyGlow  = 15
	BulletGlow = 10
)

// Broad-phase grid cell size. Must be >= the largest entity extent so a
// 3x3 neighbourhood covers every overlap.
const GridCellSize = 40.0

// Terminal rendering
const (
	DefaultFPS    = 60
	MaxTermWidth  = 160 // Columns
	MaxTermHeight = 60  // Rows
	KeyHold       = 90 * time.Millisecond
)

// FrameTime returns the frame duration for the given rate.
func FrameTime(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
