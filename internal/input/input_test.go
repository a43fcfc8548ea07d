package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBindings(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want Action
	}{
		{glfw.KeyEscape, ActionQuit},
		{glfw.KeySpace, ActionPause},
		{glfw.KeyPageUp, ActionViewerIn},
		{glfw.KeyPageDown, ActionViewerOut},
		{glfw.KeyLeft, ActionViewerLeft},
		{glfw.KeyA, ActionViewerLeft},
		{glfw.KeyRight, ActionViewerRight},
		{glfw.KeyD, ActionViewerRight},
		{glfw.KeyUp, ActionViewerUp},
		{glfw.KeyW, ActionViewerUp},
		{glfw.KeyDown, ActionViewerDown},
		{glfw.KeyS, ActionViewerDown},
		{glfw.KeyF, ActionToggleWireframe},
		{glfw.KeyEnter, ActionResume},
		{glfw.KeyX, ActionResume},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			im := NewInputManager()
			im.HandleKeyEvent(tt.key, glfw.Press)
			assert.Equal(t, []Action{tt.want}, im.Drain())
		})
	}
}

func TestRepeatAndRelease(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyPageUp, glfw.Press)
	im.HandleKeyEvent(glfw.KeyPageUp, glfw.Repeat)
	im.HandleKeyEvent(glfw.KeyPageUp, glfw.Release)
	// holding space or an unbound key does not toggle back and forth
	im.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	im.HandleKeyEvent(glfw.KeyX, glfw.Repeat)

	assert.Equal(t, []Action{ActionViewerIn, ActionViewerIn}, im.Drain())
	assert.Empty(t, im.Drain())
}

func TestRebinding(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeySpace)
	im.BindKey(glfw.KeyP, ActionPause)
	im.BindKey(glfw.KeyP, ActionCount) // ignored

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	im.HandleKeyEvent(glfw.KeyP, glfw.Press)
	assert.Equal(t, []Action{ActionResume, ActionPause}, im.Drain())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "viewer-down", ActionViewerDown.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
