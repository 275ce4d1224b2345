// Package input turns raw key events into held key sets and edge commands.
package input

import (
	"bufio"
	"sync"
	"time"
)

// Decoder converts raw terminal bytes into held keys and commands.
//
// Terminals report key presses (and auto-repeat) but never releases, so a key
// counts as held for a fixed window after the last byte that named it.
// Escape sequences may arrive split across Feed calls; the decoder keeps the
// unfinished prefix until the rest arrives.
type Decoder struct {
	hold     time.Duration
	lastSeen [KeyFire + 1]time.Time
	esc      escState
}

// escState tracks how much of an escape sequence has been read.
type escState uint8

const (
	escNone escState = iota
	escSeen          // ESC
	escCSI           // ESC [ and any parameter bytes
)

// NewDecoder creates a decoder with the given hold window.
func NewDecoder(hold time.Duration) *Decoder {
	return &Decoder{hold: hold}
}

// Feed parses buf, refreshing hold timestamps and returning the edge
// commands it contained, in order.
func (d *Decoder) Feed(buf []byte, now time.Time) []Command {
	var cmds []Command

	for _, b := range buf {
		switch d.esc {
		case escSeen:
			if b == '[' {
				d.esc = escCSI
				continue
			}
			// A lone ESC: the byte after it is an ordinary key.
			d.esc = escNone
		case escCSI:
			if b >= 0x20 {
				d.feedCSI(b, now)
				continue
			}
			// Control bytes (Ctrl-C) abort the sequence.
			d.esc = escNone
		}

		if b == '\x1b' {
			d.esc = escSeen
			continue
		}
		if cmd, ok := d.applyByte(b, now); ok {
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

// feedCSI consumes one byte of a CSI sequence. Parameter and intermediate
// bytes are skipped; the final byte ends the sequence and names the arrow
// key, so modified arrows (ESC [ 1 ; 2 A) count too.
func (d *Decoder) feedCSI(b byte, now time.Time) {
	if b < 0x40 || b > 0x7e {
		return
	}
	d.esc = escNone
	switch b {
	case 'A':
		d.lastSeen[KeyUp] = now
	case 'B':
		d.lastSeen[KeyDown] = now
	case 'C':
		d.lastSeen[KeyRight] = now
	case 'D':
		d.lastSeen[KeyLeft] = now
	}
}

// Held returns the keys seen within the hold window before now.
func (d *Decoder) Held(now time.Time) KeySet {
	var s KeySet
	for k, seen := range d.lastSeen {
		if !seen.IsZero() && now.Sub(seen) < d.hold {
			s = s.With(Key(k))
		}
	}
	return s
}

// Reset forgets every held key.
func (d *Decoder) Reset() {
	d.lastSeen = [KeyFire + 1]time.Time{}
}

// applyByte updates key state for a single byte and reports a command if the
// byte is one.
func (d *Decoder) applyByte(b byte, now time.Time) (Command, bool) {
	switch b {
	case 'a', 'A':
		d.lastSeen[KeyLeft] = now
	case 'd', 'D':
		d.lastSeen[KeyRight] = now
	case 'w', 'W':
		d.lastSeen[KeyUp] = now
	case 's', 'S':
		d.lastSeen[KeyDown] = now
	case ' ':
		d.lastSeen[KeyFire] = now
	case 'p', 'P':
		return CommandPause, true
	case 'r', 'R', '\r', '\n':
		return CommandRestart, true
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		return CommandQuit, true
	}
	return 0, false
}

// Stream delivers input bytes via a channel and decodes them per frame.
type Stream struct {
	ch      chan byte
	closed  bool
	decoder *Decoder

	done      chan struct{} // Closed by Close; unblocks the reader
	stopped   chan struct{} // Closed when the reader goroutine returns
	closeOnce sync.Once
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream until r fails or the stream is closed.
func StartStream(r *bufio.Reader, hold time.Duration) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		decoder: NewDecoder(hold),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(s.stopped)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops delivering input. The reader goroutine exits once it is no
// longer blocked in a read. Close may be called more than once.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the frame they describe. A closed stream yields a Quit command.
func ReadInput(s *Stream) Frame {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	frame := Frame{
		Commands: s.decoder.Feed(buf, now),
		Held:     s.decoder.Held(now),
	}
	if s.closed && !frame.Has(CommandQuit) {
		frame.Commands = append(frame.Commands, CommandQuit)
	}
	return frame
}

// ResetKeyInput clears held keys, so a key held across a restart does not
// leak into the new game.
func ResetKeyInput(s *Stream) {
	s.decoder.Reset()
}
