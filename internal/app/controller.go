package app

import (
	"holey-shapes/internal/config"
	"holey-shapes/internal/input"
	"holey-shapes/internal/scene"
)

// Scene is an animated demo: a mesh built once, state advanced a step per
// frame, and the draw calls for the current state.
type Scene interface {
	Mesh() *scene.Mesh
	// Update advances one step and reports whether the mesh changed.
	Update() bool
	Frame() scene.Frame
	Reshape(width, height int)
	Handle(a scene.Action) bool
}

var sceneActions = map[input.Action]scene.Action{
	input.ActionViewerIn:    scene.ActionViewerIn,
	input.ActionViewerOut:   scene.ActionViewerOut,
	input.ActionViewerLeft:  scene.ActionViewerLeft,
	input.ActionViewerRight: scene.ActionViewerRight,
	input.ActionViewerUp:    scene.ActionViewerUp,
	input.ActionViewerDown:  scene.ActionViewerDown,
}

// Controller applies input to a scene and owns the pause state.
type Controller struct {
	Scene  Scene
	Paused bool
	Quit   bool
}

func (c *Controller) Apply(actions []input.Action) {
	for _, a := range actions {
		switch a {
		case input.ActionQuit:
			c.Quit = true
		case input.ActionPause:
			c.Paused = true
		case input.ActionResume:
			c.Paused = false
		case input.ActionToggleWireframe:
			config.SetWireframe(!config.GetWireframe())
		default:
			if sa, ok := sceneActions[a]; ok {
				c.Scene.Handle(sa)
			}
		}
	}
}

// Step advances the scene unless paused and reports whether its mesh changed.
func (c *Controller) Step() bool {
	if c.Paused {
		return false
	}
	return c.Scene.Update()
}
