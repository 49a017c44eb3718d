package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig is the optional startup configuration file (YAML).
//
// Example:
//
//	window:
//	  title: card-rpg
//	  tps: 60
//	assets:
//	  root: ""   # empty: assets embedded in the binary
//	  tileSheet: assets/tile_sheet4x.png
//	  player: assets/player4x.png
type GameConfig struct {
	Window WindowConfig `yaml:"window"`
	Assets AssetConfig  `yaml:"assets"`
}

// WindowConfig holds window and loop settings.
type WindowConfig struct {
	Title string `yaml:"title"` // Window title
	TPS   int    `yaml:"tps"`   // Ticks per second of the game loop
}

// AssetConfig locates the image files the overworld needs.
type AssetConfig struct {
	Root      string `yaml:"root"`      // Directory the asset paths are relative to; empty uses the embedded assets
	TileSheet string `yaml:"tileSheet"` // Tile sheet path
	Player    string `yaml:"player"`    // Player sprite path
}

// Defaults
const (
	DefaultWindowTitle = "card-rpg"
	DefaultTPS         = 60
)

// DefaultGameConfig returns the configuration used when no file is given.
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadGameConfig reads a GameConfig from a YAML file.
// An empty path returns DefaultGameConfig.
// Missing fields are filled with defaults before validation.
func LoadGameConfig(path string) (*GameConfig, error) {
	if path == "" {
		return DefaultGameConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig parses YAML data into a GameConfig, applying defaults.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in optional fields left empty.
func applyDefaults(cfg *GameConfig) {
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}
	if cfg.Window.TPS == 0 {
		cfg.Window.TPS = DefaultTPS
	}
	if cfg.Assets.TileSheet == "" {
		cfg.Assets.TileSheet = TileSheetPath
	}
	if cfg.Assets.Player == "" {
		cfg.Assets.Player = PlayerSpritePath
	}
}

func validateGameConfig(cfg *GameConfig) error {
	if cfg.Window.TPS < 0 {
		return fmt.Errorf("window.tps must not be negative, got %d", cfg.Window.TPS)
	}
	// Asset paths are opened through an fs.FS rooted at assets.root.
	for name, p := range map[string]string{"assets.tileSheet": cfg.Assets.TileSheet, "assets.player": cfg.Assets.Player} {
		if !fs.ValidPath(p) {
			return fmt.Errorf("%s must be a slash-separated relative path, got %q", name, p)
		}
	}
	return nil
}
