package config

import "image/color"

// Camera and tile layout.
// All coordinates are screen pixels with the origin at the top-left corner
// of the camera viewport.
const (
	// CamW is the logical width of the camera viewport.
	CamW = 1280

	// CamH is the logical height of the camera viewport.
	CamH = 720

	// TileSize is the edge length of one tile in the source art before scaling.
	TileSize = 40

	// SpriteScale is the factor the "4x" sprite sheets are exported at.
	// The player sprite covers SpriteScale*TileSize pixels on each axis.
	SpriteScale = 4

	// PlayerMaxX is the largest x the player's top-left corner may reach.
	PlayerMaxX = CamW - SpriteScale*TileSize

	// PlayerMaxY is the largest y the player's top-left corner may reach.
	PlayerMaxY = CamH - SpriteScale*TileSize
)

// Tile map dimensions
const (
	TileMapWidth  = 12
	TileMapHeight = 12
	TileMapSize   = TileMapWidth * TileMapHeight // 144
)

// Sea tiling.
// The sea is one sub-rectangle of the tile sheet repeated over a
// SeaTileColumns x SeaTileRows grid starting at the screen origin.
const (
	SeaTileWidth  = TileSize * 5 // 200
	SeaTileHeight = TileSize     // 40

	SeaSheetX = 0
	SeaSheetY = 0

	SeaTileColumns = 4
	SeaTileRows    = 18
)

// Player movement
const (
	// SpeedLimit bounds the velocity on each axis to [-SpeedLimit, SpeedLimit].
	SpeedLimit = 3

	// AccelRate is the velocity change applied per key press.
	AccelRate = 1
)

// Asset paths, relative to the asset root.
const (
	TileSheetPath    = "assets/tile_sheet4x.png"
	PlayerSpritePath = "assets/player4x.png"
	GameConfigPath   = "assets/config/game.yaml"
)

// BackgroundColor is the teal the overworld clears to every frame.
var BackgroundColor = color.RGBA{R: 0, G: 128, B: 128, A: 255}

// PlayerBounds returns the upper bounds of the player's top-left corner.
// The lower bound is 0 on both axes.
func PlayerBounds() (int, int) {
	return PlayerMaxX, PlayerMaxY
}
