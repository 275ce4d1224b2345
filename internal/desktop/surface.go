// Package desktop runs the game in an ebiten window with keyboard, mouse and
// touch controls.
package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ha5him97/game/internal/physics"
)

// glowLayers is the number of translucent rings that approximate a blur.
const glowLayers = 3

// Surface draws scheduler sprites onto an ebiten image.
type Surface struct {
	dst *ebiten.Image
}

// Clear implements loop.Surface.
func (s *Surface) Clear(c colorful.Color) {
	s.dst.Fill(nrgba(c, 1))
}

// FillRect implements loop.Surface. The glow radius is spread over
// glowLayers rings whose opacity fades outwards.
func (s *Surface) FillRect(r physics.Rect, c colorful.Color, alpha, glow float64) {
	if alpha <= 0 {
		return
	}
	alpha = min(alpha, 1)
	if glow > 0 {
		for i := glowLayers; i >= 1; i-- {
			g := glow / 2 * float64(i) / glowLayers
			a := alpha * 0.3 / float64(i+1)
			s.fill(physics.Rect{X: r.X - g, Y: r.Y - g, W: r.W + 2*g, H: r.H + 2*g}, nrgba(c, a))
		}
	}
	s.fill(r, nrgba(c, alpha))
}

func (s *Surface) fill(r physics.Rect, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(physics.Clamp(alpha, 0, 1)*255 + 0.5)}
}
