package game

import (
	"github.com/decker502/cardrpg/pkg/gfx"
)

// Scene represents a game scene (e.g., the overworld).
// The driver calls HandleInput for each pending event and then Render once
// per frame.
type Scene interface {
	// HandleInput reacts to one input event. Events a scene does not care
	// about are ignored.
	HandleInput(event Event)

	// Render advances the scene by one frame and draws it to target,
	// ending with a present. The first failing draw call aborts the frame
	// and its *gfx.RenderError is returned.
	Render(target gfx.Target) error
}
