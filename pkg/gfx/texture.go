// Package gfx provides the render target abstraction and the drawing
// primitives scenes are built from.
package gfx

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a decoded image shared by every scene and entity that loaded
// the same path. Textures are never mutated after creation; holders share
// the same *Texture and the pixels live until the owning manager releases it.
type Texture struct {
	path     string
	img      *ebiten.Image
	released bool
}

// NewTexture wraps a decoded ebiten image.
func NewTexture(path string, img *ebiten.Image) *Texture {
	return &Texture{path: path, img: img}
}

// Path returns the path the texture was loaded from.
func (t *Texture) Path() string {
	return t.path
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() image.Point {
	if t.img == nil {
		return image.Point{}
	}
	b := t.img.Bounds()
	return image.Pt(b.Dx(), b.Dy())
}

// Bounds returns the full source rectangle of the texture.
func (t *Texture) Bounds() image.Rectangle {
	if t.img == nil {
		return image.Rectangle{}
	}
	return t.img.Bounds()
}

// Image returns the underlying ebiten image.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Released reports whether Release has been called.
func (t *Texture) Released() bool {
	return t.released
}

// Release frees the GPU memory backing the texture.
// Drawing a released texture fails with ErrTextureReleased.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	if t.img != nil {
		t.img.Deallocate()
	}
}
