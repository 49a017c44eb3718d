package scenes

import (
	"image"

	"github.com/rs/zerolog/log"

	"github.com/decker502/cardrpg/pkg/config"
	"github.com/decker502/cardrpg/pkg/game"
	"github.com/decker502/cardrpg/pkg/gfx"
)

// TextureLoader loads shared textures by path. *game.TextureManager implements it.
type TextureLoader interface {
	Load(path string) (*gfx.Texture, error)
}

var _ game.Scene = (*Overworld)(nil)

// Overworld is the top-down map scene: a sea background and a player that
// moves with WASD inside the camera bounds.
type Overworld struct {
	// tileMap holds the map's tile indices. Rendering does not read it yet;
	// the sea is drawn from fixed sheet coordinates.
	tileMap [config.TileMapSize]uint8
	tileSet *gfx.Texture
	player  *Player
}

// NewOverworld loads the tile sheet and the player sprite and places the
// player at the origin. A missing or corrupt image fails with *game.AssetLoadError.
func NewOverworld(textures TextureLoader, assets config.AssetConfig) (*Overworld, error) {
	tileSet, err := textures.Load(assets.TileSheet)
	if err != nil {
		return nil, err
	}

	sprite, err := textures.Load(assets.Player)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("component", "Overworld").Str("tileSheet", assets.TileSheet).
		Str("player", assets.Player).Msg("overworld initialized")

	return &Overworld{
		tileSet: tileSet,
		player:  &Player{Sprite: sprite},
	}, nil
}

// Player returns the overworld player.
func (o *Overworld) Player() *Player {
	return o.player
}

// TileMap returns a copy of the tile indices.
func (o *Overworld) TileMap() [config.TileMapSize]uint8 {
	return o.tileMap
}

// TileSet returns the tile sheet texture.
func (o *Overworld) TileSet() *gfx.Texture {
	return o.tileSet
}

// HandleInput implements game.Scene.
//
// Only key presses change anything: W/A subtract and S/D add AccelRate on
// their axis. Key releases do not slow the player down; velocity only
// changes on the next press or when a wall stops it.
func (o *Overworld) HandleInput(event game.Event) {
	press, ok := event.(game.KeyPress)
	if !ok {
		return
	}

	var dx, dy int
	switch press.Key {
	case game.KeyW:
		dy -= config.AccelRate
	case game.KeyA:
		dx -= config.AccelRate
	case game.KeyS:
		dy += config.AccelRate
	case game.KeyD:
		dx += config.AccelRate
	}
	o.player.Accelerate(dx, dy)
}

// Render implements game.Scene.
func (o *Overworld) Render(target gfx.Target) error {
	o.player.UpdateMovement()

	// Background
	if err := gfx.FillScreen(target, config.BackgroundColor); err != nil {
		return err
	}

	// Sea
	err := gfx.TileSpriteFromSheet(target, o.tileSet,
		image.Pt(config.SeaSheetX, config.SeaSheetY),
		image.Pt(config.SeaTileWidth, config.SeaTileHeight),
		image.Pt(0, 0),
		image.Pt(config.SeaTileColumns, config.SeaTileRows))
	if err != nil {
		return err
	}

	// Player
	if err := gfx.DrawSprite(target, o.player.Sprite, o.player.Position()); err != nil {
		return err
	}

	return gfx.Present(target)
}
