package scenes

import (
	"image"

	"github.com/decker502/cardrpg/pkg/config"
	"github.com/decker502/cardrpg/pkg/gfx"
)

// Player is the overworld avatar.
//
// Invariants:
//   - 0 <= X <= config.PlayerMaxX and 0 <= Y <= config.PlayerMaxY
//   - -config.SpeedLimit <= VelX, VelY <= config.SpeedLimit
type Player struct {
	X, Y       int
	VelX, VelY int
	Sprite     *gfx.Texture
}

// Position returns the top-left corner of the player sprite.
func (p *Player) Position() image.Point {
	return image.Pt(p.X, p.Y)
}

// Velocity returns the current per-frame velocity.
func (p *Player) Velocity() image.Point {
	return image.Pt(p.VelX, p.VelY)
}

// Accelerate adds (dx, dy) to the velocity and clamps each axis to the speed limit.
func (p *Player) Accelerate(dx, dy int) {
	p.VelX = clamp(p.VelX+dx, -config.SpeedLimit, config.SpeedLimit)
	p.VelY = clamp(p.VelY+dy, -config.SpeedLimit, config.SpeedLimit)
}

// UpdateMovement advances the position by one frame of velocity.
//
// Each axis is handled on its own. If the next position would leave the
// camera bounds the velocity on that axis is set to 0 first, so the player
// stops at the wall instead of pressing into it. The position is then
// clamped to the bounds.
func (p *Player) UpdateMovement() {
	maxX, maxY := config.PlayerBounds()

	if next := p.X + p.VelX; next > maxX || next < 0 {
		p.VelX = 0
	}
	if next := p.Y + p.VelY; next > maxY || next < 0 {
		p.VelY = 0
	}

	p.X = clamp(p.X+p.VelX, 0, maxX)
	p.Y = clamp(p.Y+p.VelY, 0, maxY)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
