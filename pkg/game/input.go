package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventSource delivers the input events that arrived since the last poll.
type EventSource interface {
	Poll() []Event
}

// KeyboardPoller turns ebiten's per-tick key state into discrete events.
// Escape and a window close request are reported as Quit.
type KeyboardPoller struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewKeyboardPoller creates a poller for the running ebiten game.
func NewKeyboardPoller() *KeyboardPoller {
	return &KeyboardPoller{}
}

// Poll implements EventSource. It must be called from Game.Update.
func (p *KeyboardPoller) Poll() []Event {
	var events []Event

	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])
	for _, k := range p.pressed {
		key := translateKey(k)
		if key == KeyEscape {
			events = append(events, Quit{})
			continue
		}
		events = append(events, KeyPress{Key: key})
	}

	p.released = inpututil.AppendJustReleasedKeys(p.released[:0])
	for _, k := range p.released {
		events = append(events, KeyRelease{Key: translateKey(k)})
	}

	if ebiten.IsWindowBeingClosed() {
		events = append(events, Quit{})
	}
	return events
}

// translateKey maps an ebiten key to a Key.
func translateKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyW:
		return KeyW
	case ebiten.KeyA:
		return KeyA
	case ebiten.KeyS:
		return KeyS
	case ebiten.KeyD:
		return KeyD
	case ebiten.KeyEscape:
		return KeyEscape
	default:
		return KeyUnknown
	}
}
