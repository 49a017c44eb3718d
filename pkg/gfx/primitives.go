package gfx

import (
	"image"
	"image/color"
)

// FillScreen clears the whole target to clr.
func FillScreen(target Target, clr color.Color) error {
	return wrap("fill_screen", target.Fill(clr))
}

// DrawSprite blits the full texture, unscaled, with its top-left corner at pos.
func DrawSprite(target Target, tex *Texture, pos image.Point) error {
	if tex == nil {
		return &RenderError{Op: "draw_sprite", Err: ErrNilTexture}
	}
	return wrap("draw_sprite", target.Blit(tex, tex.Bounds(), pos))
}

// TileSpriteFromSheet repeats one sub-rectangle of a sprite sheet over a grid.
//
// The source rectangle is tileSize pixels starting at sheetOrigin. The grid
// has counts.X columns and counts.Y rows of tileSize cells, its top-left at
// screenOrigin. Exactly counts.X*counts.Y blits are issued, row by row, even
// when cells fall outside the target; the first failing blit aborts the call.
func TileSpriteFromSheet(target Target, sheet *Texture, sheetOrigin, tileSize, screenOrigin, counts image.Point) error {
	if sheet == nil {
		return &RenderError{Op: "tile_sprite_from_sheet", Err: ErrNilTexture}
	}

	src := image.Rectangle{Min: sheetOrigin, Max: sheetOrigin.Add(tileSize)}
	for row := 0; row < counts.Y; row++ {
		for col := 0; col < counts.X; col++ {
			dst := screenOrigin.Add(image.Pt(col*tileSize.X, row*tileSize.Y))
			if err := target.Blit(sheet, src, dst); err != nil {
				return wrap("tile_sprite_from_sheet", err)
			}
		}
	}
	return nil
}

// Present finishes the frame on target.
func Present(target Target) error {
	return wrap("present", target.Present())
}
