package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holey-shapes/internal/config"
	"holey-shapes/internal/input"
	"holey-shapes/internal/scene"
)

type fakeScene struct {
	updates int
	handled []scene.Action
}

func (f *fakeScene) Mesh() *scene.Mesh  { return scene.NewMesh(0) }
func (f *fakeScene) Update() bool       { f.updates++; return true }
func (f *fakeScene) Frame() scene.Frame { return scene.Frame{} }
func (f *fakeScene) Reshape(_, _ int)   {}
func (f *fakeScene) Handle(a scene.Action) bool {
	f.handled = append(f.handled, a)
	return true
}

func TestControllerPauseResume(t *testing.T) {
	s := &fakeScene{}
	c := Controller{Scene: s}

	assert.True(t, c.Step())
	c.Apply([]input.Action{input.ActionPause})
	assert.False(t, c.Step())
	assert.False(t, c.Step())

	// viewer moves work while paused and do not resume
	c.Apply([]input.Action{input.ActionViewerIn, input.ActionViewerLeft})
	assert.True(t, c.Paused)
	assert.Equal(t, []scene.Action{scene.ActionViewerIn, scene.ActionViewerLeft}, s.handled)

	c.Apply([]input.Action{input.ActionResume})
	assert.True(t, c.Step())
	assert.Equal(t, 2, s.updates)
	assert.False(t, c.Quit)
}

func TestControllerQuitAndWireframe(t *testing.T) {
	t.Cleanup(func() { config.SetWireframe(false) })
	config.SetWireframe(false)

	c := Controller{Scene: &fakeScene{}}
	c.Apply([]input.Action{input.ActionToggleWireframe})
	assert.True(t, config.GetWireframe())

	c.Apply([]input.Action{input.ActionQuit})
	assert.True(t, c.Quit)
}

func TestSceneActionsCoverViewerMoves(t *testing.T) {
	for a := input.ActionViewerIn; a <= input.ActionViewerDown; a++ {
		_, ok := sceneActions[a]
		assert.True(t, ok, a.String())
	}
}
