package loop

import (
	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/object"
	"github.com/ha5him97/game/internal/physics"
)

// Phase is the scheduler's lifecycle state.
type Phase int

const (
	PhaseStopped  Phase = iota // Not started, or mid-restart
	PhaseRunning               // Ticks execute
	PhasePaused                // Ticks suspended until resumed
	PhaseGameOver              // Lives depleted; only a restart leaves
)

// String returns the phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState holds the progression counters and the lifecycle flags the UI
// surface shows.
type GameState struct {
	Score   int // Never negative, only grows through kills
	Lives   int // Never negative
	Level   int // Always Score/PointsPerLevel + 1
	Running bool
	Paused  bool
}

// newGameState returns the counters of a fresh session.
func newGameState() GameState {
	return GameState{
		Score:   0,
		Lives:   config.InitialLives,
		Level:   1,
		Running: true,
		Paused:  false,
	}
}

// State is the simulation context. It exclusively owns every entity pool for
// one session; records never point at each other, collisions work on
// indices.
type State struct {
	Game      GameState
	Player    object.Player
	Bullets   []object.Bullet
	Enemies   []object.Enemy
	Particles []object.Particle
	Stars     []object.Star
	Screen    object.Screen // Surface bounds as of the current tick

	rng     object.Rand
	spawner object.EnemySpawner
	palette config.Palette
	grid    *physics.SpatialGrid
	hits    []bool // Scratch: bullets consumed during the current collision pass
	killed  []bool // Scratch: enemies destroyed during the current collision pass
}

// NewState creates a stopped simulation for the given surface. Pools are
// empty until reset.
func NewState(rng object.Rand, palette config.Palette, screen object.Screen) *State {
	return &State{
		Screen:  screen,
		rng:     rng,
		spawner: object.NewEnemySpawner(palette.Enemy),
		palette: palette,
		grid:    physics.NewSpatialGrid(screen.Width, screen.Height, config.GridCellSize),
	}
}

// reset discards the bullet, enemy and particle pools, restores fresh
// counters and respawns the player. The star field survives; it is only
// generated when missing.
func (s *State) reset() {
	s.Game = newGameState()
	s.Bullets = nil
	s.Enemies = nil
	s.Particles = nil
	s.Player = object.NewPlayer(s.Screen)
	if len(s.Stars) == 0 {
		s.Stars = object.NewStarField(s.rng, s.Screen, config.StarCount)
	}
}

// setScreen records new surface bounds, resizing the broad-phase grid when
// they change.
func (s *State) setScreen(screen object.Screen) {
	if screen == s.Screen || screen.Width <= 0 || screen.Height <= 0 {
		return
	}
	s.Screen = screen
	s.grid.Resize(screen.Width, screen.Height)
}
