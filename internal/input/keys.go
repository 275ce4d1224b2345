package input

// Key is a held control: a movement axis direction or fire.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
)

// KeySet is the set of currently held keys.
type KeySet uint8

// Keys builds a set from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns s with k held.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Command is a discrete edge event, consumed once at the start of the next step.
type Command uint8

const (
	CommandPause   Command = iota + 1 // Toggle pause
	CommandRestart                    // Full reset
	CommandQuit                       // Leave the game (handled by the driver)
)

// String returns the command name for logs.
func (c Command) String() string {
	switch c {
	case CommandPause:
		return "pause"
	case CommandRestart:
		return "restart"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Frame is the input snapshot a front end hands to one step.
type Frame struct {
	Held     KeySet
	Commands []Command
}

// Has reports whether the frame carries the given command.
func (f Frame) Has(c Command) bool {
	for _, cmd := range f.Commands {
		if cmd == c {
			return true
		}
	}
	return false
}
