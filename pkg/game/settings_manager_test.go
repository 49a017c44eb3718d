package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata opens a gdata manager whose storage lives in a temp dir.
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.WindowScale != 1 {
		t.Errorf("WindowScale: got %d, want 1", settings.WindowScale)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

func TestNewSettingsManager(t *testing.T) {
	sm, err := NewSettingsManager(openTestGdata(t, "cardrpg_test_settings"))
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if settings.WindowScale != 1 {
		t.Errorf("Initial WindowScale: got %d, want 1", settings.WindowScale)
	}
}

func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if got := sm.GetSettings().WindowScale; got != 1 {
		t.Errorf("Degraded mode WindowScale: got %d, want 1", got)
	}

	// Saving without storage is not an error.
	sm.SetWindowScale(2)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
}

func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "cardrpg_test_settings_load_save")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetWindowScale(3)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.WindowScale != 3 {
		t.Errorf("Loaded WindowScale: got %d, want 3", settings.WindowScale)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

func TestSettingsLoadCorrupt(t *testing.T) {
	gdataManager := openTestGdata(t, "cardrpg_test_settings_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("windowScale: [")); err != nil {
		t.Fatalf("failed to seed corrupt settings: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if got := sm.GetSettings().WindowScale; got != 1 {
		t.Errorf("corrupt settings should fall back to defaults, got scale %d", got)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() of corrupt data should return an error")
	}
}

func TestSetWindowScaleClamp(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"normal", 2, 2},
		{"minimum", 1, 1},
		{"maximum", 4, 4},
		{"below minimum", 0, 1},
		{"negative", -3, 1},
		{"above maximum", 10, 4},
	}

	sm, _ := NewSettingsManager(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetWindowScale(tt.input)
			if got := sm.GetSettings().WindowScale; got != tt.want {
				t.Errorf("SetWindowScale(%d): got %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGameSettingsNormalize(t *testing.T) {
	tests := []struct {
		name  string
		scale int
		want  int
	}{
		{"in range", 3, 3},
		{"missing", 0, 1},
		{"negative", -2, 1},
		{"too large", 9, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GameSettings{WindowScale: tt.scale, Fullscreen: true}
			s.normalize()
			if s.WindowScale != tt.want {
				t.Errorf("WindowScale: got %d, want %d", s.WindowScale, tt.want)
			}
			if !s.Fullscreen {
				t.Error("normalize must not touch Fullscreen")
			}
		})
	}
}

func TestSettingsLoadOutOfRange(t *testing.T) {
	gdataManager := openTestGdata(t, "cardrpg_test_settings_range")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("windowScale: 12\nfullscreen: true\n")); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	settings := sm.GetSettings()
	if settings.WindowScale != MaxWindowScale {
		t.Errorf("WindowScale: got %d, want %d", settings.WindowScale, MaxWindowScale)
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}
