package game

import (
	"errors"
	"testing"

	"github.com/decker502/cardrpg/pkg/gfx"
	"github.com/decker502/cardrpg/pkg/gfx/gfxtest"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	events    []Event
	renders   int
	renderErr error

	// calls records the order of HandleInput ("input") and Render ("render").
	calls []string
}

// HandleInput records the event.
func (m *MockScene) HandleInput(event Event) {
	m.events = append(m.events, event)
	m.calls = append(m.calls, "input")
}

// Render records that Render was called.
func (m *MockScene) Render(target gfx.Target) error {
	m.renders++
	m.calls = append(m.calls, "render")
	return m.renderErr
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.CurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.CurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerNoScene verifies that input and render are no-ops without a scene.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	rec := gfxtest.NewRecorder()

	sm.HandleInput(KeyPress{Key: KeyD}) // Should not panic
	if err := sm.Render(rec); err != nil {
		t.Errorf("Render without scene: got %v, want nil", err)
	}
	if len(rec.Ops) != 0 {
		t.Errorf("expected no draw commands, got %d", len(rec.Ops))
	}
	if sm.Frames() != 0 {
		t.Errorf("Frames: got %d, want 0", sm.Frames())
	}
}

// TestSceneManagerFrameOrder verifies all events are handled before the single render.
func TestSceneManagerFrameOrder(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	events := []Event{KeyPress{Key: KeyW}, KeyRelease{Key: KeyW}, KeyPress{Key: KeyD}}
	if err := sm.Frame(events, gfxtest.NewRecorder()); err != nil {
		t.Fatalf("Frame error: %v", err)
	}

	want := []string{"input", "input", "input", "render"}
	if len(mockScene.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", mockScene.calls, want)
	}
	for i := range want {
		if mockScene.calls[i] != want[i] {
			t.Errorf("call %d: got %q, want %q", i, mockScene.calls[i], want[i])
		}
	}
	if mockScene.events[2] != (KeyPress{Key: KeyD}) {
		t.Errorf("events out of order: %v", mockScene.events)
	}
	if sm.Frames() != 1 {
		t.Errorf("Frames: got %d, want 1", sm.Frames())
	}
}

// TestSceneManagerFrameNoEvents verifies a frame with no input still renders once.
func TestSceneManagerFrameNoEvents(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	if err := sm.Frame(nil, gfxtest.NewRecorder()); err != nil {
		t.Fatalf("Frame error: %v", err)
	}
	if mockScene.renders != 1 {
		t.Errorf("renders: got %d, want 1", mockScene.renders)
	}
}

// TestSceneManagerRenderError verifies render failures reach the caller.
func TestSceneManagerRenderError(t *testing.T) {
	sm := NewSceneManager()
	renderErr := &gfx.RenderError{Op: "present", Err: gfx.ErrNoFrame}
	sm.SwitchTo(&MockScene{renderErr: renderErr})

	err := sm.Frame([]Event{KeyPress{Key: KeyA}}, gfxtest.NewRecorder())
	if !errors.Is(err, gfx.ErrNoFrame) {
		t.Fatalf("expected render error, got %v", err)
	}
	if sm.Frames() != 0 {
		t.Errorf("failed frames must not be counted, got %d", sm.Frames())
	}
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.HandleInput(KeyPress{Key: KeyS})

	if len(scene1.events) != 1 {
		t.Error("Scene1's HandleInput was not called")
	}

	sm.SwitchTo(scene2)
	sm.HandleInput(KeyPress{Key: KeyS})

	if len(scene1.events) != 1 {
		t.Error("Scene1 should not receive input after switching")
	}
	if len(scene2.events) != 1 {
		t.Error("Scene2's HandleInput was not called after switching")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyW:       "W",
		KeyA:       "A",
		KeyS:       "S",
		KeyD:       "D",
		KeyEscape:  "Escape",
		KeyUnknown: "Unknown",
		Key(99):    "Unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
