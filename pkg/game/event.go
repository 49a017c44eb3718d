package game

// Event is an input event delivered to the active scene.
// The concrete types are KeyPress, KeyRelease and Quit.
type Event interface {
	isEvent()
}

// KeyPress is sent once when a key goes down.
type KeyPress struct {
	Key Key
}

// KeyRelease is sent once when a key goes up.
type KeyRelease struct {
	Key Key
}

// Quit asks the driver to stop the frame loop.
type Quit struct{}

func (KeyPress) isEvent() {}
func (KeyRelease) isEvent() {}
func (Quit) isEvent() {}

// Key identifies a keyboard key independent of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}
