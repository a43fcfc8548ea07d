package shapes

import "github.com/chewxy/math32"

var octahedronVertices = [6]Point{
	point(0, 1, 0),  // top
	point(0, 0, 1),  // front
	point(1, 0, 0),  // right
	point(0, 0, -1), // back
	point(-1, 0, 0), // left
	point(0, -1, 0), // bottom
}

var octahedronFaces = [8][3]int{
	{0, 1, 2}, // upper right front
	{0, 2, 3}, // upper right rear
	{0, 3, 4}, // upper left rear
	{0, 4, 1}, // upper left front
	{5, 2, 1}, // lower right front
	{5, 3, 2}, // lower right rear
	{5, 4, 3}, // lower left rear
	{5, 1, 4}, // lower left front
}

// Unit returns the point at distance 1 from the origin on the line through p,
// with w set to 1. Points closer to the origin than DivideByZeroTolerance are
// returned unchanged.
func Unit(p Point) Point {
	lenSqrd := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
	if lenSqrd <= DivideByZeroTolerance {
		return p
	}
	l := math32.Sqrt(lenSqrd)
	return Point{p[0] / l, p[1] / l, p[2] / l, 1}
}

// DivideTriangle splits the triangle a, b, c into four divs times, pushing new
// vertices out to the unit sphere, and writes the 3 * 4^divs resulting vertices.
func DivideTriangle(divs int, a, b, c Point, points []Point, start int) int {
	if divs <= 0 {
		return triangle(points, start, a, b, c)
	}
	v1 := Unit(a.Add(b))
	v2 := Unit(a.Add(c))
	v3 := Unit(b.Add(c))
	start = DivideTriangle(divs-1, a, v1, v2, points, start)
	start = DivideTriangle(divs-1, c, v2, v3, points, start)
	start = DivideTriangle(divs-1, b, v3, v1, points, start)
	return DivideTriangle(divs-1, v1, v3, v2, points, start)
}

// GeodesicSphere writes a unit sphere approximated by subdividing each face of an
// octahedron divs times; divs 0 is the octahedron itself. It needs SphereCount(divs)
// points from start:
//
//	divs  points  edges around circumference
//	0     24      4
//	1     96      8
//	2     384     16
//	3     1536    32
//	4     6144    64
func GeodesicSphere(divs int, points []Point, start int) int {
	for _, f := range octahedronFaces {
		start = DivideTriangle(divs,
			octahedronVertices[f[0]],
			octahedronVertices[f[1]],
			octahedronVertices[f[2]],
			points, start)
	}
	return start
}
