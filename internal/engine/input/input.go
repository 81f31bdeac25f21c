// Package input turns SDL2 or GLFW events into backend-neutral viewer events.
package input

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventScroll
)

// Key is a keyboard key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyPlus
	KeyMinus
	KeyX
	KeyY
	KeyZ
	KeyR
	KeyP
	KeyShift
)

// Button is a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Shift  bool // Shift was held when the key event happened
	Button Button
	MouseX float32
	MouseY float32
	Scroll float32
	Width  int
	Height int
}

// Poller collects the events of one frame.
type Poller interface {
	// Update polls pending events. Returns true if the viewer should quit.
	Update() bool
	// Events returns the events from the last Update.
	Events() []Event
}

// queue is the per-frame event buffer shared by both backends.
type queue struct {
	events []Event
	shift  bool
}

func newQueue() queue {
	return queue{events: make([]Event, 0, 16)}
}

func (q *queue) reset() {
	q.events = q.events[:0]
}

func (q *queue) push(e Event) {
	q.events = append(q.events, e)
}

// key records a key transition and keeps track of the shift state.
// Unknown keys are dropped.
func (q *queue) key(k Key, down bool) {
	if k == KeyShift {
		q.shift = down
		return
	}
	if k == KeyUnknown {
		return
	}
	t := EventKeyUp
	if down {
		t = EventKeyDown
	}
	q.push(Event{Type: t, Key: k, Shift: q.shift})
}

// Events returns the events from the last Update.
func (q *queue) Events() []Event {
	return q.events
}
