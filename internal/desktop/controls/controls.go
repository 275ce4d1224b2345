// Package controls lays out the on-screen button strip of the desktop front
// end and maps pointer positions (mouse or touch) onto it.
package controls

import (
	"github.com/tsujio/game-util/mathutil"

	"github.com/ha5him97/game/internal/input"
	"github.com/ha5him97/game/internal/physics"
)

// Action is what a button does while pressed or when tapped.
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionPause
	ActionRestart
)

// Button is one rectangular control.
type Button struct {
	Label  string
	Action Action
	Rect   physics.Rect
}

// Contains reports whether p lies inside the button. Edges count as inside
// on the near side only.
func (b Button) Contains(p *mathutil.Vector2D) bool {
	if p == nil {
		return false
	}
	return p.X >= b.Rect.X && p.X < b.Rect.Right() &&
		p.Y >= b.Rect.Y && p.Y < b.Rect.Bottom()
}

// Strip is the control row drawn below the playfield.
type Strip struct {
	Buttons []Button
	Bounds  physics.Rect
}

const (
	gap       = 10.0
	padButton = 4.0
)

// NewStrip lays out a strip of the given size whose top edge sits at top.
// Direction pad on the left, fire in the middle, pause on the right.
func NewStrip(width, top, height float64) *Strip {
	inner := height - 2*gap
	half := (inner - padButton) / 2
	left := gap

	s := &Strip{Bounds: physics.Rect{X: 0, Y: top, W: width, H: height}}
	y := top + gap

	// Up/down stacked, left/right either side.
	s.Buttons = append(s.Buttons,
		Button{"<", ActionLeft, physics.Rect{X: left, Y: y, W: inner, H: inner}},
		Button{"^", ActionUp, physics.Rect{X: left + inner + padButton, Y: y, W: inner, H: half}},
		Button{"v", ActionDown, physics.Rect{X: left + inner + padButton, Y: y + half + padButton, W: inner, H: half}},
		Button{">", ActionRight, physics.Rect{X: left + 2*(inner+padButton), Y: y, W: inner, H: inner}},
	)

	fireW := inner * 2
	s.Buttons = append(s.Buttons,
		Button{"FIRE", ActionFire, physics.Rect{X: width/2 - fireW/2 + inner/2, Y: y, W: fireW, H: inner}},
		Button{"PAUSE", ActionPause, physics.Rect{X: width - gap - inner*1.5, Y: y, W: inner * 1.5, H: inner}},
	)
	return s
}

// Held returns the movement and fire keys held by the given pointers.
func (s *Strip) Held(pointers []*mathutil.Vector2D) input.KeySet {
	var held input.KeySet
	for _, p := range pointers {
		for _, b := range s.Buttons {
			if !b.Contains(p) {
				continue
			}
			if key, ok := actionKey(b.Action); ok {
				held = held.With(key)
			}
		}
	}
	return held
}

// Tapped returns the commands triggered by pointers that just went down.
// Each command is reported at most once per call.
func (s *Strip) Tapped(taps []*mathutil.Vector2D) []input.Command {
	var cmds []input.Command
	for _, b := range s.Buttons {
		cmd, ok := actionCommand(b.Action)
		if !ok {
			continue
		}
		for _, p := range taps {
			if b.Contains(p) {
				cmds = append(cmds, cmd)
				break
			}
		}
	}
	return cmds
}

func actionKey(a Action) (input.Key, bool) {
	switch a {
	case ActionLeft:
		return input.KeyLeft, true
	case ActionRight:
		return input.KeyRight, true
	case ActionUp:
		return input.KeyUp, true
	case ActionDown:
		return input.KeyDown, true
	case ActionFire:
		return input.KeyFire, true
	}
	return 0, false
}

func actionCommand(a Action) (input.Command, bool) {
	switch a {
	case ActionPause:
		return input.CommandPause, true
	case ActionRestart:
		return input.CommandRestart, true
	}
	return 0, false
}

// RestartButton is the button shown on the game-over and pause panels,
// centred horizontally at the given row.
func RestartButton(width, y float64) Button {
	const w, h = 160.0, 40.0
	return Button{
		Label:  "RESTART",
		Action: ActionRestart,
		Rect:   physics.Rect{X: width/2 - w/2, Y: y, W: w, H: h},
	}
}
