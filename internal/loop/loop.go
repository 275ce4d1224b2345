// Package loop provides the frame scheduler and the simulation it drives.
package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ha5him97/game/internal/input"
	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/object"
)

// Viewport reports the current logical size of the render surface. The
// scheduler reads it before every tick.
type Viewport interface {
	Bounds() object.Screen
}

// FixedViewport is a Viewport that never resizes.
type FixedViewport object.Screen

// Bounds implements Viewport.
func (v FixedViewport) Bounds() object.Screen {
	return object.Screen(v)
}

// UI shows the progression counters and the game-over panel.
type UI interface {
	ShowStats(score, lives, level int)
	ShowGameOver(visible bool, finalScore int)
}

// Options configures a Scheduler. Zero fields get defaults: a time-seeded
// random source, a discarding logger, the default palette, a fixed
// ViewWidth x ViewHeight viewport and no UI.
type Options struct {
	Rand     object.Rand
	Logger   *log.Logger
	Palette  config.Palette
	Viewport Viewport
	UI       UI
}

// Scheduler drives the simulation one display refresh at a time and owns
// its lifecycle: Stopped -> Running <-> Paused, Running -> GameOver, and
// back to Running only through Restart.
//
// A Scheduler is not safe for concurrent use; front ends call it from their
// frame loop only.
type Scheduler struct {
	state    *State
	phase    Phase
	pending  []input.Command
	viewport Viewport
	ui       UI
	logger   *log.Logger

	shown     GameState // Counters last pushed to the UI
	published bool
	sprites   []Sprite
}

// New creates a stopped scheduler. Call Init to start the first game.
func New(opts Options) *Scheduler {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Palette == (config.Palette{}) {
		opts.Palette = config.DefaultPalette()
	}
	if opts.Viewport == nil {
		opts.Viewport = FixedViewport{Width: config.ViewWidth, Height: config.ViewHeight}
	}
	if opts.UI == nil {
		opts.UI = nopUI{}
	}

	return &Scheduler{
		state:    NewState(opts.Rand, opts.Palette, opts.Viewport.Bounds()),
		phase:    PhaseStopped,
		viewport: opts.Viewport,
		ui:       opts.UI,
		logger:   opts.Logger,
	}
}

// Phase returns the lifecycle state.
func (s *Scheduler) Phase() Phase {
	return s.phase
}

// State returns the simulation context. Callers outside the frame loop must
// treat it as read-only.
func (s *Scheduler) State() *State {
	return s.state
}

// Init starts the first game. It does nothing once a game has started.
func (s *Scheduler) Init() {
	if s.phase != PhaseStopped {
		s.logger.Debug("init ignored", "phase", s.phase)
		return
	}
	s.start()
	s.logger.Info("game started", "stars", len(s.state.Stars))
}

// Restart resets the session from any phase: fresh counters, empty
// bullet/enemy/particle pools, the player back at spawn. Stars are kept.
// Repeated calls leave the same state as one.
func (s *Scheduler) Restart() {
	s.pending = s.pending[:0]
	s.restart()
}

// TogglePause queues a pause toggle for the start of the next step.
func (s *Scheduler) TogglePause() {
	s.pending = append(s.pending, input.CommandPause)
}

// Step handles one display refresh: it consumes queued commands, then runs
// one tick if the game is running, then publishes changed counters to the UI.
// Paused, stopped and finished games do not tick.
func (s *Scheduler) Step(frame input.Frame) {
	s.pending = append(s.pending, frame.Commands...)
	for i := 0; i < len(s.pending); i++ {
		s.apply(s.pending[i])
	}
	s.pending = s.pending[:0]

	if s.phase != PhaseRunning {
		return
	}

	s.state.setScreen(s.viewport.Bounds())
	over := s.state.tick(frame.Held)
	s.publish(false)

	if over {
		s.phase = PhaseGameOver
		s.logger.Info("game over", "score", s.state.Game.Score, "level", s.state.Game.Level)
		s.ui.ShowGameOver(true, s.state.Game.Score)
	}
}

// Render draws the current state onto surface. It never changes the
// simulation, so it may be called any number of times between steps.
func (s *Scheduler) Render(surface Surface) {
	if s.phase == PhaseStopped {
		surface.Clear(s.state.palette.Background)
		return
	}
	s.sprites = s.state.draw(surface, s.sprites)
}

// apply executes one edge command.
func (s *Scheduler) apply(cmd input.Command) {
	switch cmd {
	case input.CommandPause:
		switch s.phase {
		case PhaseRunning:
			s.phase = PhasePaused
			s.state.Game.Paused = true
			s.logger.Debug("paused")
		case PhasePaused:
			s.phase = PhaseRunning
			s.state.Game.Paused = false
			s.logger.Debug("resumed")
		default:
			s.logger.Debug("pause ignored", "phase", s.phase)
		}
	case input.CommandRestart:
		s.restart()
	case input.CommandQuit:
		// The driver owns the frame loop and stops it.
	}
}

// restart drops the current session and starts a fresh one.
func (s *Scheduler) restart() {
	s.phase = PhaseStopped
	s.start()
	s.logger.Info("game restarted")
}

// start moves Stopped -> Running with a fresh session.
func (s *Scheduler) start() {
	s.state.setScreen(s.viewport.Bounds())
	s.state.reset()
	s.phase = PhaseRunning
	s.ui.ShowGameOver(false, 0)
	s.publish(true)
}

// publish pushes the counters to the UI when they changed since the last
// push, or unconditionally when force is set.
func (s *Scheduler) publish(force bool) {
	g := s.state.Game
	if !force && s.published && g.Score == s.shown.Score && g.Lives == s.shown.Lives && g.Level == s.shown.Level {
		return
	}
	s.ui.ShowStats(g.Score, g.Lives, g.Level)
	s.shown = g
	s.published = true
}

type nopUI struct{}

func (nopUI) ShowStats(int, int, int) {}
func (nopUI) ShowGameOver(bool, int) {}
