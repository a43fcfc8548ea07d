package shapes

import "github.com/chewxy/math32"

var cubeVertices = [8]Point{
	point(-1, -1, 1),  // 0
	point(-1, 1, 1),   // 1
	point(1, 1, 1),    // 2
	point(1, -1, 1),   // 3
	point(-1, -1, -1), // 4
	point(-1, 1, -1),  // 5
	point(1, 1, -1),   // 6
	point(1, -1, -1),  // 7
}

var cubeFaces = [6][4]int{
	{1, 0, 3, 2}, // front
	{2, 3, 7, 6}, // right
	{3, 0, 4, 7}, // bottom
	{6, 5, 1, 2}, // top
	{4, 5, 6, 7}, // back
	{5, 4, 0, 1}, // left
}

// Cube writes an axis-aligned cube with corners at (±1, ±1, ±1) as 12 triangles,
// counter-clockwise when seen from outside. It needs CubeCount points from start.
func Cube(points []Point, start int) int {
	for _, f := range cubeFaces {
		start = quad(points, start, cubeVertices[f[0]], cubeVertices[f[1]], cubeVertices[f[2]], cubeVertices[f[3]])
	}
	return start
}

// quad splits a, b, c, d into the triangles (a, b, c) and (a, c, d).
func quad(points []Point, start int, a, b, c, d Point) int {
	points[start] = a
	points[start+1] = b
	points[start+2] = c
	points[start+3] = a
	points[start+4] = c
	points[start+5] = d
	return start + 6
}

func triangle(points []Point, start int, a, b, c Point) int {
	points[start] = a
	points[start+1] = b
	points[start+2] = c
	return start + 3
}

// ring returns k points on the unit circle in the plane y, vertex i at angle i*2π/k.
func ring(k int, y float32) []Point {
	vertices := make([]Point, k)
	theta := 2 * math32.Pi / float32(k)
	for i := range vertices {
		angle := float32(i) * theta
		vertices[i] = point(math32.Cos(angle), y, math32.Sin(angle))
	}
	return vertices
}

// Pyramid writes a pyramid whose base is a unit-radius k-gon centered at the origin
// in the xz-plane, with its apex at (0, 1, 0). Each of the k slices is a base
// triangle followed by a side triangle. k must be at least 3; it needs
// PyramidCount(k) points from start.
func Pyramid(k int, points []Point, start int) int {
	apex := point(0, 1, 0)
	baseCenter := point(0, 0, 0)
	base := ring(k, 0)

	for i := range k {
		next := base[(i+1)%k]
		start = triangle(points, start, baseCenter, base[i], next)
		start = triangle(points, start, apex, next, base[i])
	}
	return start
}

// DoublePyramid writes two pyramids sharing a unit-radius k-gon in the xz-plane,
// with apexes at (0, 1, 0) and (0, -1, 0). k must be at least 3; it needs
// DoublePyramidCount(k) points from start.
func DoublePyramid(k int, points []Point, start int) int {
	top := point(0, 1, 0)
	bottom := point(0, -1, 0)
	equator := ring(k, 0)

	for i := range k {
		next := equator[(i+1)%k]
		start = triangle(points, start, bottom, equator[i], next)
		start = triangle(points, start, top, next, equator[i])
	}
	return start
}

// Cylinder writes a vertical cylinder with unit-radius k-gon bases in the planes
// y = -1 and y = 1. Each slice is a bottom triangle, a top triangle and two side
// triangles. k must be at least 3; it needs CylinderCount(k) points from start.
func Cylinder(k int, points []Point, start int) int {
	topCenter := point(0, 1, 0)
	bottomCenter := point(0, -1, 0)
	top := ring(k, 1)
	bottom := ring(k, -1)

	for i := range k {
		j := (i + 1) % k
		start = triangle(points, start, bottomCenter, bottom[i], bottom[j])
		start = triangle(points, start, topCenter, top[j], top[i])
		start = triangle(points, start, bottom[i], top[i], top[j])
		start = triangle(points, start, bottom[i], top[j], bottom[j])
	}
	return start
}
