// Package shapes generates triangle meshes for simple solids as flat, non-indexed
// vertex lists. Every generator writes into caller-allocated slices beginning at a
// start index and returns the index of the next unused element, so several shapes
// can be packed into one buffer. The exact number of elements each generator needs
// is available from the matching *Count function; writing past the end of a slice
// that is too small panics.
package shapes

import "github.com/go-gl/mathgl/mgl32"

// Point is a homogeneous position; w is 1 for every point a generator emits.
type Point = mgl32.Vec4

// Vector3 is a direction, used for normals.
type Vector3 = mgl32.Vec3

// TexCoord is an (s, t) texture coordinate pair.
type TexCoord = mgl32.Vec2

// Color is an (r, g, b, a) color with components conventionally in [0, 1].
type Color = mgl32.Vec4

// DivideByZeroTolerance is the squared length below which a point is treated as the origin.
const DivideByZeroTolerance float32 = 1e-7

// CubeCount is the number of points Cube writes.
const CubeCount = 36

// PyramidCount returns the number of points Pyramid(k) writes.
func PyramidCount(k int) int { return 6 * k }

// DoublePyramidCount returns the number of points DoublePyramid(k) writes.
func DoublePyramidCount(k int) int { return 6 * k }

// CylinderCount returns the number of points Cylinder(k) writes.
func CylinderCount(k int) int { return 12 * k }

// SphereCount returns the number of points GeodesicSphere(divs) writes: 24 * 4^divs.
func SphereCount(divs int) int { return 24 * pow4(divs) }

// GlobeCount returns the number of points Globe writes, or -1 for invalid divisions.
func GlobeCount(longDivs, latDivs int) int {
	if longDivs < 3 || latDivs < 2 {
		return -1
	}
	return 6 * longDivs * (latDivs - 1)
}

// PatchCount returns the number of vertices DividePatch writes for one patch.
func PatchCount(subdivisions int) int { return 6 * NumQuadsPerPatch(subdivisions) }

func pow4(n int) int {
	if n < 0 {
		return 0
	}
	return 1 << (2 * uint(n))
}

func point(x, y, z float32) Point { return Point{x, y, z, 1} }
