// Package client runs one game on one terminal: it paces frames, feeds
// terminal input to the scheduler and draws the result with ANSI output.
package client

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ha5him97/game/internal/draw"
	"github.com/ha5him97/game/internal/input"
	"github.com/ha5him97/game/internal/loop"
	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/object"
)

// Client drives a scheduler from a terminal connection.
type Client struct {
	sched        *loop.Scheduler
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	frameTime    time.Duration
	palette      config.Palette
	logger       *log.Logger
}

// Options configures the client. Zero fields get defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Rand         object.Rand
	Logger       *log.Logger
	Palette      config.Palette
	FPS          int
	KeyHold      time.Duration
}

// New creates a client reading keys from r and drawing to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Palette == (config.Palette{}) {
		opts.Palette = config.DefaultPalette()
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = config.KeyHold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	state := NewClientState()
	sched := loop.New(loop.Options{
		Rand:    opts.Rand,
		Logger:  logger,
		Palette: opts.Palette,
		UI:      state,
	})

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, err := draw.TerminalSize(termSizeFunc)
	if err != nil {
		logger.Warn("falling back to default terminal size", "err", err)
		termWidth, termHeight = 80, 24
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		sched:        sched,
		state:        state,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r, opts.KeyHold),
		termSizeFunc: termSizeFunc,
		frameTime:    config.FrameTime(opts.FPS),
		palette:      opts.Palette,
		logger:       logger,
	}
}

// Scheduler returns the scheduler the client drives.
func (c *Client) Scheduler() *loop.Scheduler {
	return c.sched
}

// Run starts the game and the frame loop. It blocks until the player quits,
// the input closes or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	defer c.inputStream.Close()
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.sched.Init()

	for c.state.Running {
		frameStart := time.Now()

		frame := c.processInput()
		if !c.state.Running {
			break
		}

		c.updateScreen()
		c.sched.Step(frame)

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		wait := c.frameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			c.state.Running = false
		case <-time.After(wait):
		}
	}

	draw.ClearScreen(c.writer)
	c.logger.Debug("client stopped", "score", c.sched.State().Game.Score)
	return nil
}

// processInput reads the keys pressed since the last frame.
func (c *Client) processInput() input.Frame {
	return c.filterCommands(input.ReadInput(c.inputStream))
}

// filterCommands handles quit and drops commands the current phase does not
// offer: restart is only available on the pause and game-over panels, so a
// stray Enter mid-game does nothing.
func (c *Client) filterCommands(frame input.Frame) input.Frame {
	cmds := frame.Commands[:0]
	for _, cmd := range frame.Commands {
		switch cmd {
		case input.CommandQuit:
			c.state.Running = false
		case input.CommandRestart:
			if phase := c.sched.Phase(); phase != loop.PhaseGameOver && phase != loop.PhasePaused {
				continue
			}
			input.ResetKeyInput(c.inputStream)
		}
		cmds = append(cmds, cmd)
	}
	frame.Commands = cmds
	return frame
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSize(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.logger.Debug("terminal resized", "cols", termWidth, "rows", termHeight)
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
