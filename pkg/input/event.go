// Package input models the per-frame input a render loop consumes: discrete
// events from the window layer and the set of movement keys currently held.
package input

// Key identifies a keyboard key independently of the windowing library.
type Key int

// Keys the demos react to
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
)

// EventKind discriminates the payload of an Event.
type EventKind int

const (
	// EventQuit asks the loop to stop.
	EventQuit EventKind = iota
	// EventKey is a key transition; Key, Down and Repeat are set.
	EventKey
	// EventMouseMotion carries relative cursor movement in DX/DY.
	EventMouseMotion
	// EventResize carries the new framebuffer size in Width/Height.
	EventResize
)

// Event is a single input event produced by the window layer.
type Event struct {
	Kind EventKind

	Key    Key
	Down   bool
	Repeat bool

	DX, DY float64

	Width, Height int
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns a key-down event.
func KeyDown(key Key, repeat bool) Event {
	return Event{Kind: EventKey, Key: key, Down: true, Repeat: repeat}
}

// KeyUp returns a key-up event.
func KeyUp(key Key) Event {
	return Event{Kind: EventKey, Key: key}
}

// MouseMotion returns a relative mouse motion event.
func MouseMotion(dx, dy float64) Event {
	return Event{Kind: EventMouseMotion, DX: dx, DY: dy}
}

// Resize returns a framebuffer resize event.
func Resize(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// IsQuit reports whether ev asks the loop to stop: a quit event or a
// non-repeat Escape key-down.
func IsQuit(ev Event) bool {
	switch ev.Kind {
	case EventQuit:
		return true
	case EventKey:
		return ev.Key == KeyEscape && ev.Down && !ev.Repeat
	}
	return false
}
