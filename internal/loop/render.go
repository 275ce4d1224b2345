package loop

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ha5him97/game/internal/loop/config"
	"github.com/ha5him97/game/internal/object"
	"github.com/ha5him97/game/internal/physics"
)

// Surface is the render target. Sizes and positions are in logical units.
type Surface interface {
	// Clear fills the whole surface with the background colour.
	Clear(c colorful.Color)
	// FillRect draws a filled rectangle. alpha is in [0, 1]; glow is a blur
	// radius, 0 for none.
	FillRect(r physics.Rect, c colorful.Color, alpha, glow float64)
}

// Sprite is one filled rectangle emitted for an entity.
type Sprite struct {
	Kind  object.Kind
	Rect  physics.Rect
	Color colorful.Color
	Alpha float64
	Glow  float64
}

// drawOrder lists the pools back to front.
var drawOrder = [...]object.Kind{
	object.KindStar,
	object.KindPlayer,
	object.KindBullet,
	object.KindEnemy,
	object.KindParticle,
}

// Sprites appends the sprites of every live entity to dst, back to front.
// It only reads the state.
func (s *State) Sprites(dst []Sprite) []Sprite {
	for _, kind := range drawOrder {
		dst = s.appendSprites(dst, kind)
	}
	return dst
}

func (s *State) appendSprites(dst []Sprite, kind object.Kind) []Sprite {
	pal := s.palette

	switch kind {
	case object.KindStar:
		for _, st := range s.Stars {
			dst = append(dst, Sprite{
				Kind:  kind,
				Rect:  physics.Rect{X: st.X, Y: st.Y, W: st.Size, H: st.Size},
				Color: pal.Star,
				Alpha: st.Opacity,
			})
		}

	case object.KindPlayer:
		p := s.Player
		dst = append(dst,
			Sprite{Kind: kind, Rect: p.Rect(), Color: pal.Player, Alpha: 1, Glow: config.PlayerGlow},
			Sprite{Kind: kind, Rect: physics.Rect{X: p.X + 5, Y: p.Y + 5, W: p.Width - 10, H: p.Height - 10}, Color: pal.PlayerCockpit, Alpha: 1},
			Sprite{Kind: kind, Rect: physics.Rect{X: p.X + 15, Y: p.Y + 35, W: 10, H: 5}, Color: pal.PlayerEngine, Alpha: 1},
		)

	case object.KindBullet:
		for _, b := range s.Bullets {
			dst = append(dst, Sprite{Kind: kind, Rect: b.Rect(), Color: pal.Bullet, Alpha: 1, Glow: config.BulletGlow})
		}

	case object.KindEnemy:
		for _, e := range s.Enemies {
			dst = append(dst,
				Sprite{Kind: kind, Rect: e.Rect(), Color: e.Color, Alpha: 1, Glow: config.EnemyGlow},
				Sprite{Kind: kind, Rect: physics.Rect{X: e.X + 5, Y: e.Y + 5, W: e.Width - 10, H: e.Height - 10}, Color: pal.EnemyCore, Alpha: 1},
			)
		}

	case object.KindParticle:
		for i := range s.Particles {
			pt := &s.Particles[i]
			dst = append(dst, Sprite{
				Kind:  kind,
				Rect:  physics.Rect{X: pt.X, Y: pt.Y, W: pt.Size, H: pt.Size},
				Color: pt.Color,
				Alpha: pt.Alpha(),
			})
		}
	}
	return dst
}

// draw clears the surface and fills every sprite.
func (s *State) draw(surface Surface, scratch []Sprite) []Sprite {
	surface.Clear(s.palette.Background)
	scratch = s.Sprites(scratch[:0])
	for _, sp := range scratch {
		surface.FillRect(sp.Rect, sp.Color, sp.Alpha, sp.Glow)
	}
	return scratch
}
