// Package gfxtest provides a recording gfx.Target for tests.
package gfxtest

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cardrpg/pkg/gfx"
)

// OpKind identifies a recorded draw command.
type OpKind int

const (
	OpFill OpKind = iota
	OpBlit
	OpPresent
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpBlit:
		return "blit"
	case OpPresent:
		return "present"
	default:
		return "unknown"
	}
}

// Op is one recorded draw command.
type Op struct {
	Kind    OpKind
	Color   color.Color     // OpFill
	Texture *gfx.Texture    // OpBlit
	Src     image.Rectangle // OpBlit
	Dst     image.Point     // OpBlit
}

// ErrRejected is the error returned for commands selected by FailAt.
var ErrRejected = errors.New("gfxtest: command rejected")

// Recorder is a gfx.Target that records every command instead of drawing.
type Recorder struct {
	Ops []Op

	// FailAt makes the command with this zero-based index fail with
	// ErrRejected. Negative disables failures.
	FailAt int
}

// NewRecorder returns a Recorder that accepts every command.
func NewRecorder() *Recorder {
	return &Recorder{FailAt: -1}
}

func (r *Recorder) record(op Op) error {
	if r.FailAt >= 0 && len(r.Ops) == r.FailAt {
		return ErrRejected
	}
	r.Ops = append(r.Ops, op)
	return nil
}

// Fill implements gfx.Target.
func (r *Recorder) Fill(clr color.Color) error {
	return r.record(Op{Kind: OpFill, Color: clr})
}

// Blit implements gfx.Target.
func (r *Recorder) Blit(src *gfx.Texture, srcRect image.Rectangle, dst image.Point) error {
	return r.record(Op{Kind: OpBlit, Texture: src, Src: srcRect, Dst: dst})
}

// Present implements gfx.Target.
func (r *Recorder) Present() error {
	return r.record(Op{Kind: OpPresent})
}

// Count returns the number of recorded commands of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Blits returns the recorded blits in order.
func (r *Recorder) Blits() []Op {
	var blits []Op
	for _, op := range r.Ops {
		if op.Kind == OpBlit {
			blits = append(blits, op)
		}
	}
	return blits
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// NewTexture returns a blank texture of the given size for tests.
func NewTexture(path string, w, h int) *gfx.Texture {
	return gfx.NewTexture(path, ebiten.NewImage(w, h))
}
