package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// GameSettings holds the per-user display settings that survive restarts.
type GameSettings struct {
	WindowScale int  `yaml:"windowScale"` // Window size multiplier over the camera size
	Fullscreen  bool `yaml:"fullscreen"`  // Start in fullscreen
}

// Window scale limits
const (
	MinWindowScale = 1
	MaxWindowScale = 4
)

// DefaultSettings returns the settings used on first start.
func DefaultSettings() *GameSettings {
	return &GameSettings{
		WindowScale: 1,
		Fullscreen:  false,
	}
}

// SettingsManager loads, holds and saves GameSettings.
type SettingsManager struct {
	gdataManager *gdata.Manager // May be nil (in-memory only)
	settings     *GameSettings
}

// Storage keys
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager creates a settings manager and loads saved settings.
//
// gdataManager may be nil, in which case settings live in memory only.
// A failed load is logged and defaults are used; it never fails creation.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Warn().Str("component", "SettingsManager").Err(err).Msg("failed to load settings, using defaults")
	}

	return sm, nil
}

// Load reads settings from gdata.
// Without a gdata manager, or when nothing was saved yet, defaults are used.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded GameSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.normalize()

	sm.settings = &loaded
	log.Debug().Str("component", "SettingsManager").Msg("settings loaded")
	return nil
}

// Save writes settings to gdata. Without a gdata manager it does nothing.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Debug().Str("component", "SettingsManager").Msg("settings saved")
	return nil
}

// GetSettings returns the current settings.
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetWindowScale sets the window scale, clamped to [MinWindowScale, MaxWindowScale].
// Call Save to persist.
func (sm *SettingsManager) SetWindowScale(scale int) {
	sm.settings.WindowScale = clampScale(scale)
}

// SetFullscreen sets the fullscreen flag. Call Save to persist.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// normalize brings hand-edited or stale values back into range.
// A missing or zero scale falls back to the default rather than the minimum.
func (s *GameSettings) normalize() {
	if s.WindowScale == 0 {
		s.WindowScale = DefaultSettings().WindowScale
	}
	s.WindowScale = clampScale(s.WindowScale)
}

func clampScale(scale int) int {
	return max(MinWindowScale, min(scale, MaxWindowScale))
}
