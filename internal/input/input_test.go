package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestKeySet(t *testing.T) {
	s := Keys(KeyLeft, KeyFire)
	if !s.Has(KeyLeft) || !s.Has(KeyFire) {
		t.Fatalf("Keys(Left, Fire) = %08b, missing a key", s)
	}
	if s.Has(KeyRight) || s.Has(KeyUp) || s.Has(KeyDown) {
		t.Errorf("Keys(Left, Fire) = %08b, has extra keys", s)
	}
	if s.With(KeyFire) != s {
		t.Error("With on a held key changed the set")
	}
}

func TestDecoderHeldKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  KeySet
	}{
		{"wasd", "wasd", Keys(KeyUp, KeyLeft, KeyDown, KeyRight)},
		{"upper case", "WD", Keys(KeyUp, KeyRight)},
		{"arrows", "\x1b[A\x1b[D", Keys(KeyUp, KeyLeft)},
		{"all arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", Keys(KeyUp, KeyDown, KeyRight, KeyLeft)},
		{"fire", " ", Keys(KeyFire)},
		{"fire while moving", "a ", Keys(KeyLeft, KeyFire)},
		{"unrelated", "xyz", 0},
		{"modified arrow", "\x1b[1;2C", Keys(KeyRight)},
		{"unknown sequence", "\x1b[Z", 0},
		{"lone escape", "\x1bd", Keys(KeyRight)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			d := NewDecoder(100 * time.Millisecond)
			d.Feed([]byte(tt.bytes), now)
			if got := d.Held(now); got != tt.want {
				t.Errorf("Held = %08b, want %08b", got, tt.want)
			}
		})
	}
}

func TestDecoderSplitSequences(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   KeySet
	}{
		{"split after bracket", []string{"\x1b[", "A"}, Keys(KeyUp)},
		{"split after escape", []string{"\x1b", "[D"}, Keys(KeyLeft)},
		{"byte by byte", []string{"\x1b", "[", "C"}, Keys(KeyRight)},
		{"split then key", []string{"\x1b[", "Bw"}, Keys(KeyDown, KeyUp)},
		{"split modified arrow", []string{"\x1b[1", ";5", "D"}, Keys(KeyLeft)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			d := NewDecoder(100 * time.Millisecond)
			for _, chunk := range tt.chunks {
				if cmds := d.Feed([]byte(chunk), now); len(cmds) != 0 {
					t.Fatalf("Feed(%q) = %v, want no commands", chunk, cmds)
				}
			}
			if got := d.Held(now); got != tt.want {
				t.Errorf("Held = %08b, want %08b", got, tt.want)
			}
		})
	}
}

func TestDecoderHoldWindow(t *testing.T) {
	start := time.Now()
	d := NewDecoder(100 * time.Millisecond)
	d.Feed([]byte("a"), start)

	if !d.Held(start.Add(99 * time.Millisecond)).Has(KeyLeft) {
		t.Error("key released inside the hold window")
	}
	if d.Held(start.Add(100 * time.Millisecond)).Has(KeyLeft) {
		t.Error("key still held after the hold window")
	}

	// Auto-repeat refreshes the window.
	d.Feed([]byte("a"), start.Add(80*time.Millisecond))
	if !d.Held(start.Add(150 * time.Millisecond)).Has(KeyLeft) {
		t.Error("repeat did not extend the hold")
	}

	d.Reset()
	if d.Held(start.Add(150*time.Millisecond)) != 0 {
		t.Error("Reset kept held keys")
	}
}

func TestDecoderCommands(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  []Command
	}{
		{"pause", "p", []Command{CommandPause}},
		{"pause twice", "pP", []Command{CommandPause, CommandPause}},
		{"restart enter", "\r", []Command{CommandRestart}},
		{"restart r", "r", []Command{CommandRestart}},
		{"quit", "q", []Command{CommandQuit}},
		{"ctrl-c", "\x03", []Command{CommandQuit}},
		{"ctrl-c inside sequence", "\x1b[\x03", []Command{CommandQuit}},
		{"mixed", "wp d\r", []Command{CommandPause, CommandRestart}},
		{"movement only", "wasd", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDecoder(time.Second).Feed([]byte(tt.bytes), time.Now())
			if len(got) != len(tt.want) {
				t.Fatalf("Feed = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Feed = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFrameHas(t *testing.T) {
	f := Frame{Commands: []Command{CommandRestart}}
	if !f.Has(CommandRestart) {
		t.Error("Has(Restart) = false")
	}
	if f.Has(CommandPause) {
		t.Error("Has(Pause) = true")
	}
}

func TestStreamCloseStopsReader(t *testing.T) {
	// More input than the channel buffers, with nobody draining it.
	r := bufio.NewReader(strings.NewReader(strings.Repeat("a", 1000)))
	s := StartStream(r, time.Second)

	s.Close()
	s.Close()

	select {
	case <-s.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still running after Close")
	}
}

func TestStreamClosedReaderQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")), time.Second)

	deadline := time.Now().Add(2 * time.Second)
	var held KeySet
	for time.Now().Before(deadline) {
		frame := ReadInput(s)
		held |= frame.Held
		if frame.Has(CommandQuit) {
			if !held.Has(KeyRight) {
				t.Error("byte before EOF was not decoded")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("closed reader never produced a quit command")
}
