package gfx

import (
	"image"
	"image/color"
)

// Target is a drawable surface for one frame at a time.
// Every method issues exactly one draw command; there is no batching.
type Target interface {
	// Fill clears the drawable area to clr.
	Fill(clr color.Color) error

	// Blit copies srcRect of src, unscaled, with its top-left at dst.
	// Source and destination are clipped by the texture and target bounds;
	// clipping never turns into an error.
	Blit(src *Texture, srcRect image.Rectangle, dst image.Point) error

	// Present finishes the frame and hands it to the display.
	Present() error
}
