package shapes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holey-shapes/pkg/shapes"
)

func TestTriangleNormal(t *testing.T) {
	n := shapes.TriangleNormal(
		shapes.Point{0, 0, 0, 1},
		shapes.Point{1, 0, 0, 1},
		shapes.Point{1, 1, 0, 1},
	)
	assert.Equal(t, shapes.Vector3{0, 0, 1}, n)
}

func TestFlatNormalsCube(t *testing.T) {
	points := make([]shapes.Point, shapes.CubeCount)
	shapes.Cube(points, 0)
	normals := make([]shapes.Vector3, shapes.CubeCount)

	next := shapes.FlatNormals(shapes.CubeCount/3, points, normals, 0)
	require.Equal(t, shapes.CubeCount, next)

	want := []shapes.Vector3{
		{0, 0, 1},  // front
		{1, 0, 0},  // right
		{0, -1, 0}, // bottom
		{0, 1, 0},  // top
		{0, 0, -1}, // back
		{-1, 0, 0}, // left
	}
	for face, w := range want {
		for _, n := range normals[6*face : 6*face+6] {
			assert.InDelta(t, 0, n.Sub(w).Len(), 1e-6, "face %d", face)
		}
	}
}

func TestFlatNormalsOffset(t *testing.T) {
	points := make([]shapes.Point, 4+shapes.PyramidCount(5))
	shapes.Pyramid(5, points, 4)
	normals := make([]shapes.Vector3, len(points))

	next := shapes.FlatNormals(2*5, points, normals, 4)
	assert.Equal(t, len(points), next)
	assert.Equal(t, shapes.Vector3{}, normals[3])
	for i := 4; i < len(points); i += 3 {
		assert.Equal(t, normals[i], normals[i+1])
		assert.Equal(t, normals[i], normals[i+2])
		assert.InDelta(t, 1, normals[i].Len(), 1e-6)
	}
}

func TestSphericalNormals(t *testing.T) {
	n := shapes.SphereCount(2)
	points := make([]shapes.Point, n)
	shapes.GeodesicSphere(2, points, 0)
	normals := make([]shapes.Vector3, n)

	next := shapes.SphericalNormals(n, points, normals, 0)
	require.Equal(t, n, next)
	for i, p := range points {
		assert.Equal(t, p.Vec3(), normals[i])
	}
}
