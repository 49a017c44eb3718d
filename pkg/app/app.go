// Package app wires the texture manager, the scene manager and the
// overworld into an ebiten.Game and runs the window.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/decker502/cardrpg/pkg/config"
	"github.com/decker502/cardrpg/pkg/game"
	"github.com/decker502/cardrpg/pkg/gfx"
	"github.com/decker502/cardrpg/pkg/scenes"
)

// AppName is the storage namespace for saved settings.
const AppName = "cardrpg"

// Config holds the startup options.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool
	// ConfigPath is the optional YAML game config file. When empty the
	// config shipped in Assets is used, falling back to defaults.
	ConfigPath string
	// AssetRoot overrides assets.root from the config file when non-empty.
	AssetRoot string
	// Assets is the embedded asset filesystem used when no asset root is set.
	Assets fs.FS
	// WindowScale overrides the saved window scale when > 0.
	WindowScale int
	// Fullscreen overrides the saved fullscreen flag when non-nil.
	Fullscreen *bool
}

// App implements ebiten.Game.
//
// Input is collected in Update and handed to the scene at the start of the
// next Draw, so every frame sees its pending events before it renders. A
// render error cannot be returned from Draw; it is kept and returned from
// the following Update, which ends the game.
type App struct {
	sceneManager *game.SceneManager
	events       game.EventSource
	target       *gfx.ScreenTarget

	pending   []game.Event
	renderErr error
}

// New creates the app with the overworld as its active scene.
// Asset failures are returned as *game.AssetLoadError.
func New(textures scenes.TextureLoader, events game.EventSource, assets config.AssetConfig) (*App, error) {
	overworld, err := scenes.NewOverworld(textures, assets)
	if err != nil {
		return nil, fmt.Errorf("failed to create overworld: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(overworld)

	return &App{
		sceneManager: sceneManager,
		events:       events,
		target:       gfx.NewScreenTarget(),
	}, nil
}

// SceneManager returns the scene manager.
func (a *App) SceneManager() *game.SceneManager {
	return a.sceneManager
}

// Update polls input. It returns ebiten.Termination on Quit and the pending
// render error, if any.
func (a *App) Update() error {
	if a.renderErr != nil {
		return a.renderErr
	}

	for _, event := range a.events.Poll() {
		if _, ok := event.(game.Quit); ok {
			log.Info().Str("component", "App").Int("frames", a.sceneManager.Frames()).Msg("quit requested")
			return ebiten.Termination
		}
		a.pending = append(a.pending, event)
	}
	return nil
}

// Draw renders one frame to screen.
func (a *App) Draw(screen *ebiten.Image) {
	a.target.Begin(screen)
	a.renderFrame(a.target)
}

func (a *App) renderFrame(target gfx.Target) {
	if a.renderErr != nil {
		return
	}

	events := a.pending
	a.pending = nil

	if err := a.sceneManager.Frame(events, target); err != nil {
		log.Error().Str("component", "App").Err(err).Msg("frame aborted")
		a.renderErr = fmt.Errorf("frame %d: %w", a.sceneManager.Frames()+1, err)
	}
}

// Layout returns the fixed camera size; ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.CamW, config.CamH
}

// ConfigureLogging sets up the global zerolog logger on stderr.
// Without verbose only warnings and errors are written.
func ConfigureLogging(verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// Run loads configuration, opens the window and blocks until the game ends.
// It returns nil when the player quits.
func Run(cfg Config) error {
	ConfigureLogging(cfg.Verbose)

	gameConfig, err := loadGameConfig(cfg)
	if err != nil {
		return err
	}
	if cfg.AssetRoot != "" {
		gameConfig.Assets.Root = cfg.AssetRoot
	}
	assets, err := assetFS(gameConfig.Assets.Root, cfg.Assets)
	if err != nil {
		return err
	}

	settingsManager, err := newSettingsManager()
	if err != nil {
		return err
	}
	if applySettingsOverrides(settingsManager, cfg) {
		if err := settingsManager.Save(); err != nil {
			log.Warn().Str("component", "App").Err(err).Msg("failed to save settings")
		}
	}
	settings := settingsManager.GetSettings()

	textures := game.NewTextureManager(assets)
	defer textures.Dispose()

	gameApp, err := New(textures, game.NewKeyboardPoller(), gameConfig.Assets)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.CamW*settings.WindowScale, config.CamH*settings.WindowScale)
	ebiten.SetWindowTitle(gameConfig.Window.Title)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(gameConfig.Window.TPS)
	ebiten.SetWindowClosingHandled(true)

	log.Info().Str("component", "App").Str("assetRoot", gameConfig.Assets.Root).
		Int("scale", settings.WindowScale).Bool("fullscreen", settings.Fullscreen).Msg("starting")

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// loadGameConfig reads the config file named on the command line, or the one
// shipped with the embedded assets, or returns the defaults.
func loadGameConfig(cfg Config) (*config.GameConfig, error) {
	if cfg.ConfigPath != "" {
		return config.LoadGameConfig(cfg.ConfigPath)
	}
	if cfg.Assets == nil {
		return config.DefaultGameConfig(), nil
	}

	data, err := fs.ReadFile(cfg.Assets, config.GameConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.DefaultGameConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded game config: %w", err)
	}
	return gameConfig, nil
}

// assetFS picks the filesystem textures are read from: the directory root
// when set, otherwise the embedded assets.
func assetFS(root string, embedded fs.FS) (fs.FS, error) {
	if root != "" {
		return os.DirFS(root), nil
	}
	if embedded == nil {
		return nil, errors.New("no asset root given and no embedded assets")
	}
	return embedded, nil
}

// newSettingsManager opens gdata storage. When storage is unavailable the
// settings stay in memory.
func newSettingsManager() (*game.SettingsManager, error) {
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warn().Str("component", "App").Err(err).Msg("settings storage unavailable, settings will not persist")
		gdataManager = nil
	}
	return game.NewSettingsManager(gdataManager)
}

// applySettingsOverrides copies command line overrides into the settings and
// reports whether anything changed.
func applySettingsOverrides(sm *game.SettingsManager, cfg Config) bool {
	changed := false
	settings := sm.GetSettings()

	if cfg.WindowScale > 0 && cfg.WindowScale != settings.WindowScale {
		sm.SetWindowScale(cfg.WindowScale)
		changed = true
	}
	if cfg.Fullscreen != nil && *cfg.Fullscreen != settings.Fullscreen {
		sm.SetFullscreen(*cfg.Fullscreen)
		changed = true
	}
	return changed
}
