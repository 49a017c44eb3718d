package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenTarget draws onto the screen image ebiten hands to Game.Draw.
//
// The screen is only valid inside Draw, so the target is bound with Begin
// at the start of a frame and unbound by Present. Calls outside that window
// fail with ErrNoFrame.
//
// Usage:
//
//	func (a *App) Draw(screen *ebiten.Image) {
//	    a.target.Begin(screen)
//	    err := scene.Render(a.target) // ends with Present
//	}
type ScreenTarget struct {
	screen *ebiten.Image
	frames int
}

// NewScreenTarget creates an unbound screen target.
func NewScreenTarget() *ScreenTarget {
	return &ScreenTarget{}
}

// Begin binds the screen image for the current frame.
func (t *ScreenTarget) Begin(screen *ebiten.Image) {
	t.screen = screen
}

// InFrame reports whether a screen is bound.
func (t *ScreenTarget) InFrame() bool {
	return t.screen != nil
}

// Frames returns the number of frames presented so far.
func (t *ScreenTarget) Frames() int {
	return t.frames
}

// Fill implements Target.
func (t *ScreenTarget) Fill(clr color.Color) error {
	if t.screen == nil {
		return ErrNoFrame
	}
	t.screen.Fill(clr)
	return nil
}

// Blit implements Target.
func (t *ScreenTarget) Blit(src *Texture, srcRect image.Rectangle, dst image.Point) error {
	if t.screen == nil {
		return ErrNoFrame
	}
	if src == nil || src.Image() == nil {
		return ErrNilTexture
	}
	if src.Released() {
		return ErrTextureReleased
	}

	// The part of srcRect outside the texture draws nothing.
	srcRect = srcRect.Intersect(src.Bounds())
	if srcRect.Empty() {
		return nil
	}
	sub, ok := src.Image().SubImage(srcRect).(*ebiten.Image)
	if !ok || sub == nil {
		return ErrTextureReleased
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	t.screen.DrawImage(sub, op)
	return nil
}

// Present implements Target. Ebiten shows the screen once Draw returns,
// so presenting only closes the frame.
func (t *ScreenTarget) Present() error {
	if t.screen == nil {
		return ErrNoFrame
	}
	t.screen = nil
	t.frames++
	return nil
}
