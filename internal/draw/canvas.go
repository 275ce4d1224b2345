// Package draw renders the logical play surface to a terminal using colour
// half-block characters.
package draw

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ha5him97/game/internal/physics"
)

// BlockUpperHalf paints the top sub-pixel in the foreground colour and the
// bottom one in the background colour.
const BlockUpperHalf = '▀'

// glowAlpha is the opacity of the halo drawn around glowing sprites.
const glowAlpha = 0.25

// rgb is a colour quantized to what the terminal can show.
type rgb [3]uint8

func toRGB(c colorful.Color) rgb {
	r, g, b := c.Clamped().RGB255()
	return rgb{r, g, b}
}

// cell is what one terminal cell shows: the top and bottom sub-pixel colours.
type cell struct {
	top, bottom rgb
}

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Drawing happens in logical coordinates, scaled to
// terminal pixels. Render only rewrites cells that changed since the
// previous frame.
type Canvas struct {
	termWidth      int              // Actual terminal columns
	termHeight     int              // Actual terminal rows
	subPixelHeight int              // termHeight * 2
	pixels         []colorful.Color // Flat slice: [y * termWidth + x]
	prev           []cell           // What the terminal currently shows
	prevValid      bool             // False forces a full redraw

	// Logical coordinate space, scaled to pixels on every draw
	logicalWidth  float64
	logicalHeight float64

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]colorful.Color, subPixelHeight*termWidth)
		c.prev = make([]cell, termWidth*termHeight)
		c.prevValid = false
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
}

// toPixel scales logical coordinates to pixel coordinates. Multiplying
// before dividing keeps whole-pixel edges exact.
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	return x * float64(c.termWidth) / c.logicalWidth, y * float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prevValid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render rewrite every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.prevValid = false
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg colorful.Color) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// FillRect fills a logical rectangle, blending col over what is already
// there with the given alpha. Anything that overlaps the canvas covers at
// least one pixel, so sub-pixel sprites stay visible. Glowing sprites get a
// faint halo grown by a quarter of the glow radius.
func (c *Canvas) FillRect(r physics.Rect, col colorful.Color, alpha, glow float64) {
	if alpha <= 0 {
		return
	}
	alpha = min(alpha, 1)

	if glow > 0 {
		g := glow / 4
		halo := physics.Rect{X: r.X - g, Y: r.Y - g, W: r.W + 2*g, H: r.H + 2*g}
		c.fillPixels(halo, col, alpha*glowAlpha)
	}
	c.fillPixels(r, col, alpha)
}

func (c *Canvas) fillPixels(r physics.Rect, col colorful.Color, alpha float64) {
	fx0, fy0 := c.toPixel(r.X, r.Y)
	fx1, fy1 := c.toPixel(r.Right(), r.Bottom())
	x0, x1 := int(math.Floor(fx0)), int(math.Ceil(fx1))
	y0, y1 := int(math.Floor(fy0)), int(math.Ceil(fy1))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)

	for y := y0; y < y1; y++ {
		row := c.pixels[y*c.termWidth : (y+1)*c.termWidth]
		for x := x0; x < x1; x++ {
			if alpha >= 1 {
				row[x] = col
			} else {
				row[x] = row[x].BlendRgb(col, alpha)
			}
		}
	}
}

// at returns the colour of the pixel at terminal pixel coordinates.
func (c *Canvas) at(x, y int) colorful.Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return colorful.Color{}
	}
	return c.pixels[y*c.termWidth+x]
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the changed cells to the writer using 24-bit colour
// half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	var (
		lastFg, lastBg rgb
		haveColor      bool
		nextCol        = -1 // Cursor column after the last write, on nextRow
		nextRow        = -1
	)

	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth : (row*2+1)*c.termWidth]
		bottom := c.pixels[(row*2+1)*c.termWidth : (row*2+2)*c.termWidth]

		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: toRGB(top[col]), bottom: toRGB(bottom[col])}
			idx := row*c.termWidth + col
			if c.prevValid && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			if row != nextRow || col != nextCol {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !haveColor || cur.top != lastFg {
				c.sgr("38", cur.top)
				lastFg = cur.top
			}
			if !haveColor || cur.bottom != lastBg {
				c.sgr("48", cur.bottom)
				lastBg = cur.bottom
			}
			haveColor = true
			c.renderBuf.WriteRune(BlockUpperHalf)
			nextRow, nextCol = row, col+1
		}
	}
	c.prevValid = true

	if c.renderBuf.Len() == 0 {
		return nil
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return fmt.Errorf("render canvas: %w", err)
		}
		data = data[len(chunk):]
	}
	return nil
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// sgr appends a truecolor select-graphic-rendition sequence; layer is 38
// for foreground or 48 for background.
func (c *Canvas) sgr(layer string, v rgb) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.WriteString(layer)
	c.renderBuf.WriteString(";2")
	for _, ch := range v {
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(ch), 10))
	}
	c.renderBuf.WriteByte('m')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return fmt.Errorf("render border: %w", err)
	}
	return nil
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}
