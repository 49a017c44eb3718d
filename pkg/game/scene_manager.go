package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/decker502/cardrpg/pkg/gfx"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene receives input and renders at any given time.
type SceneManager struct {
	currentScene Scene
	frames       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	log.Debug().Str("component", "SceneManager").Str("scene", fmt.Sprintf("%T", scene)).Msg("scene switched")
}

// CurrentScene returns the active scene, or nil if none is set.
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// Frames returns the number of frames rendered successfully.
func (sm *SceneManager) Frames() int {
	return sm.frames
}

// HandleInput forwards an event to the current scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) HandleInput(event Event) {
	if sm.currentScene != nil {
		sm.currentScene.HandleInput(event)
	}
}

// Render renders the current scene to target.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Render(target gfx.Target) error {
	if sm.currentScene == nil {
		return nil
	}
	if err := sm.currentScene.Render(target); err != nil {
		return err
	}
	sm.frames++
	return nil
}

// Frame runs one iteration of the per-frame protocol: every pending event
// goes to HandleInput in order, then the scene renders once.
func (sm *SceneManager) Frame(events []Event, target gfx.Target) error {
	for _, event := range events {
		sm.HandleInput(event)
	}
	return sm.Render(target)
}
