package strider

// Key identifies a recognised navigation key.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyUp
	KeyDown
	KeyAscend
	KeyDescend
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyAscend:
		return "ascend"
	case KeyDescend:
		return "descend"
	default:
		return "none"
	}
}

// Event is one input delivered to the Navigator: either a key press or a
// periodic tick. Ticks exist purely to force redraw cadence and never
// change navigation state.
type Event struct {
	Key  Key
	Tick bool
}

func KeyEvent(k Key) Event { return Event{Key: k} }

func TickEvent() Event { return Event{Tick: true} }
