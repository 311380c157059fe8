// Package input turns window-system events into viewer events.
package input

// EventType tags the variant carried by an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventPointerMove
	EventKeyDown
	EventKeyUp
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventWindowResize:
		return "resize"
	case EventPointerMove:
		return "pointer-move"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	default:
		return "none"
	}
}

// Key is a logical viewer key, independent of the window backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyForward
	KeyBackward
	KeyRaise
	KeyLower
	KeyExit
	KeyScreenshot
	KeyWireframe
)

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBackward:
		return "backward"
	case KeyRaise:
		return "raise"
	case KeyLower:
		return "lower"
	case KeyExit:
		return "exit"
	case KeyScreenshot:
		return "screenshot"
	case KeyWireframe:
		return "wireframe"
	default:
		return "unknown"
	}
}

// Event is a processed input event. Which fields are set depends on Type.
type Event struct {
	Type   EventType
	Key    Key  // KeyDown, KeyUp
	Repeat bool // KeyDown generated by auto-repeat
	Width  int  // WindowResize
	Height int  // WindowResize
	X, Y   int  // PointerMove, window coordinates
}

// Source delivers pending native events appended to dst.
type Source interface {
	Poll(dst []Event) []Event
}

// Input buffers the events of one frame.
type Input struct {
	source Source
	events []Event
}

// New creates an input handler reading from src.
func New(src Source) *Input {
	return &Input{
		source: src,
		events: make([]Event, 0, 16),
	}
}

// Update polls the source for this frame's events.
// Returns true if a quit event was received.
func (i *Input) Update() bool {
	i.events = i.source.Poll(i.events[:0])

	for _, e := range i.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether k went down this frame.
func (i *Input) IsKeyPressed(k Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == k {
			return true
		}
	}
	return false
}
