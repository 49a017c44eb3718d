package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFrame is returned when drawing to a target outside of a frame.
	ErrNoFrame = errors.New("no frame in progress")

	// ErrNilTexture is returned when a draw call is given no texture.
	ErrNilTexture = errors.New("nil texture")

	// ErrTextureReleased is returned when drawing a texture after Release.
	ErrTextureReleased = errors.New("texture released")
)

// RenderError reports a draw or present call rejected by the render target.
// A RenderError aborts the rest of the frame.
type RenderError struct {
	Op  string // Primitive that failed, e.g. "draw_sprite"
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// wrap returns err as a *RenderError for op, keeping an existing one as-is.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *RenderError
	if errors.As(err, &re) {
		return err
	}
	return &RenderError{Op: op, Err: err}
}
