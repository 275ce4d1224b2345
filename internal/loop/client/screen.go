package client

import (
	"fmt"

	"github.com/ha5him97/game/internal/loop"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On phase transitions, do a full terminal clear so panels from the
	// previous phase don't persist on screen.
	phase := c.sched.Phase()
	if !c.state.drawn || phase != c.state.drawnPhase {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.drawnPhase = phase
		c.state.drawn = true
	}

	c.sched.Render(c.canvas)

	// Render canvas to terminal
	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}

	// Draw border when terminal exceeds max render resolution
	if err := c.canvas.RenderBorder(c.chunkWriter); err != nil {
		return err
	}

	c.drawUI(phase)

	return c.chunkWriter.Flush()
}

// drawUI draws the HUD and the panel for the current phase.
func (c *Client) drawUI(phase loop.Phase) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	c.drawHUD(termWidth)

	switch phase {
	case loop.PhasePaused:
		c.drawPanel(centerX, centerY, []string{
			"PAUSED",
			"",
			"P  . . . . . Resume",
			"R  . . . . . Restart",
			"Q  . . . . . . Quit",
		})
	case loop.PhaseGameOver:
		if !c.state.GameOver {
			return
		}
		c.drawPanel(centerX, centerY, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Final score: %d", c.state.FinalScore),
			"",
			"ENTER / R . . Restart",
			"Q  . . . . . . . Quit",
		})
	}
}

// drawHUD draws score, level and lives on the top row.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawHUD(termWidth int) {
	cw := c.chunkWriter
	fg, bg := c.palette.Player, c.palette.Background

	scoreText := fmt.Sprintf(" SCORE %-8d", c.state.Score)
	cw.WriteStyledAt(1, 1, scoreText, fg, bg)

	levelText := fmt.Sprintf(" LEVEL %-3d", c.state.Level)
	cw.WriteStyledAt(termWidth/2-len(levelText)/2, 1, levelText, fg, bg)

	livesText := fmt.Sprintf("LIVES %-2d ", c.state.Lives)
	cw.WriteStyledAt(termWidth-len(livesText)+1, 1, livesText, c.palette.Enemy, bg)
}

// drawPanel draws lines centred on (centerX, centerY), padded to a common
// width so the panel reads as a solid box over the play field.
func (c *Client) drawPanel(centerX, centerY int, lines []string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4

	top := centerY - len(lines)/2
	for i, line := range lines {
		n := len([]rune(line))
		pad := width - n
		text := fmt.Sprintf("%*s%s%*s", pad/2, "", line, pad-pad/2, "")
		c.chunkWriter.WriteStyledAt(centerX-width/2, top+i, text, c.palette.Player, c.palette.Background)
	}
}
