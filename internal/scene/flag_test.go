package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holey-shapes/internal/config"
	"holey-shapes/pkg/shapes"
)

func newTestFlag(t *testing.T, mutate func(*config.Flag)) *Flag {
	t.Helper()
	cfg := config.Default().Flag
	if mutate != nil {
		mutate(&cfg)
	}
	f, err := NewFlag(cfg, 640, 480)
	require.NoError(t, err)
	return f
}

func TestFlagMesh(t *testing.T) {
	f := newTestFlag(t, nil)
	n := shapes.PatchCount(4)
	assert.Equal(t, 2*n+shapes.CylinderCount(poleSides)+shapes.DoublePyramidCount(poleSides/2), f.Mesh().Len())

	_, err := NewFlag(config.Flag{Subdivisions: -1}, 640, 480)
	assert.ErrorIs(t, err, shapes.ErrInvalidDivisions)
}

func TestFlagClothPinnedAtPole(t *testing.T) {
	f := newTestFlag(t, nil)
	for range 10 {
		f.Update()
		cloth := f.Cloth()
		for j := range 4 {
			assert.Equal(t, float32(0), cloth[0][j].Z())
			assert.InDelta(t, clothLeft, cloth[0][j].X(), 1e-6)
		}
	}
}

func TestFlagSidesFaceApart(t *testing.T) {
	f := newTestFlag(t, func(c *config.Flag) { c.Amplitude = 0 })
	m := f.Mesh()
	for i := f.front.Start; i < f.front.End(); i++ {
		require.Greater(t, m.Normals[i].Z(), float32(0), "front normal %d", i)
	}
	for i := f.back.Start; i < f.back.End(); i++ {
		require.Less(t, m.Normals[i].Z(), float32(0), "back normal %d", i)
	}
}

func TestFlagUpdateRegenerates(t *testing.T) {
	f := newTestFlag(t, func(c *config.Flag) { c.Subdivisions = 2 })
	before := append([]shapes.Point(nil), f.Mesh().Points[f.front.Start:f.front.End()]...)

	require.True(t, f.Update())
	assert.InDelta(t, phaseStep, f.Phase, 1e-6)
	assert.NotEqual(t, before, f.Mesh().Points[f.front.Start:f.front.End()])

	want := make([]shapes.Point, shapes.PatchCount(2))
	_, err := shapes.DividePatch(f.Cloth(), 2, shapes.BackToFront, want, nil, nil, 0, shapes.FullTexRange)
	require.NoError(t, err)
	assert.Equal(t, want, f.Mesh().Points[f.front.Start:f.front.End()])
}

func TestFlagFrame(t *testing.T) {
	f := newTestFlag(t, nil)
	frame := f.Frame()
	require.Len(t, frame.Draws, 4)
	for _, d := range frame.Draws {
		assert.True(t, d.Lit, d.Name)
	}
	assert.False(t, frame.Draws[0].Textured)
	assert.True(t, frame.Draws[2].Textured)
	assert.True(t, frame.Draws[3].Textured)
}
