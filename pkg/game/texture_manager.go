package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/decker502/cardrpg/pkg/gfx"
)

// TextureManager loads images and caches the decoded textures by path.
// Every scene asking for the same path gets the same *gfx.Texture, so an
// image is decoded at most once for the lifetime of the manager.
//
// Thread Safety Note:
// The cache is a plain map. The game loop is single threaded and all loads
// happen on it; no locking is done.
//
// Usage:
//
//	tm := NewTextureManager(os.DirFS("."))
//	defer tm.Dispose()
//	sheet, err := tm.Load("assets/tile_sheet4x.png")
type TextureManager struct {
	fsys  fs.FS
	cache map[string]*gfx.Texture
}

// NewTextureManager creates a manager that reads asset files from fsys.
func NewTextureManager(fsys fs.FS) *TextureManager {
	return &TextureManager{
		fsys:  fsys,
		cache: make(map[string]*gfx.Texture),
	}
}

// Load returns the texture for path, decoding it on first request.
//
// Errors are *AssetLoadError. A failed load leaves the cache untouched.
func (tm *TextureManager) Load(path string) (*gfx.Texture, error) {
	if tex, ok := tm.cache[path]; ok {
		return tex, nil
	}

	img, err := tm.decode(path)
	if err != nil {
		log.Error().Str("component", "TextureManager").Str("path", path).Err(err).Msg("texture load failed")
		return nil, &AssetLoadError{Path: path, Err: err}
	}

	tex := gfx.NewTexture(path, ebiten.NewImageFromImage(img))
	tm.cache[path] = tex

	log.Debug().Str("component", "TextureManager").Str("path", path).
		Int("w", tex.Size().X).Int("h", tex.Size().Y).Msg("texture cached")
	return tex, nil
}

func (tm *TextureManager) decode(path string) (image.Image, error) {
	if tm.fsys == nil {
		return nil, errors.New("no asset filesystem")
	}
	if !fs.ValidPath(path) {
		return nil, fmt.Errorf("invalid asset path %q", path)
	}

	file, err := tm.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Get returns a cached texture, or nil if path has not been loaded.
func (tm *TextureManager) Get(path string) *gfx.Texture {
	return tm.cache[path]
}

// Len returns the number of cached textures.
func (tm *TextureManager) Len() int {
	return len(tm.cache)
}

// Dispose releases every cached texture and empties the cache.
// Handles still held by scenes become unusable for drawing.
func (tm *TextureManager) Dispose() {
	for path, tex := range tm.cache {
		tex.Release()
		delete(tm.cache, path)
	}
	log.Debug().Str("component", "TextureManager").Msg("textures released")
}
