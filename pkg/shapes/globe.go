package shapes

import (
	"fmt"

	"github.com/chewxy/math32"
)

// globeGrid is a row-major grid of longDivs columns by latDivs+1 rows. Row 0 is
// the north pole and row latDivs the south pole.
type globeGrid struct {
	longDivs int
	latDivs  int
}

func newGlobeGrid(longDivs, latDivs int) (globeGrid, error) {
	if longDivs < 3 || latDivs < 2 {
		return globeGrid{}, fmt.Errorf("%w: got %d x %d", ErrInvalidDivisions, longDivs, latDivs)
	}
	return globeGrid{longDivs: longDivs, latDivs: latDivs}, nil
}

func (g globeGrid) size() int { return g.longDivs * (g.latDivs + 1) }

func (g globeGrid) index(row, col int) int { return row*g.longDivs + col }

// triangles calls emit with the grid index of every output vertex in order.
// Each cell below an interior row vertex yields (r,i) (r-1,i) (r,i+1) and
// (r,i) (r,i+1) (r+1,i+1); the last column wraps to column 0.
func (g globeGrid) triangles(emit func(idx int)) {
	for row := 1; row < g.latDivs; row++ {
		for i := range g.longDivs {
			j := (i + 1) % g.longDivs
			emit(g.index(row, i))
			emit(g.index(row-1, i))
			emit(g.index(row, j))
			emit(g.index(row, i))
			emit(g.index(row, j))
			emit(g.index(row+1, j))
		}
	}
}

// Globe writes a unit sphere divided into latitude and longitude bands, poles on
// the y axis. Each pole is a single point shared by a fan of longDivs triangles.
//
// longDivs is the number of divisions around the y axis and must be at least 3;
// latDivs is the number from pole to pole and must be at least 2. It needs
// GlobeCount(longDivs, latDivs) points from start. On invalid divisions it writes
// nothing and returns -1 with ErrInvalidDivisions.
func Globe(longDivs, latDivs int, points []Point, start int) (int, error) {
	g, err := newGlobeGrid(longDivs, latDivs)
	if err != nil {
		return -1, err
	}

	vertices := make([]Point, g.size())
	northPole := point(0, 1, 0)
	southPole := point(0, -1, 0)
	for i := range longDivs {
		vertices[g.index(0, i)] = northPole
		vertices[g.index(latDivs, i)] = southPole
	}

	longAngleDiv := 2 * math32.Pi / float32(longDivs)
	latAngleDiv := math32.Pi / float32(latDivs)
	for row := 1; row < latDivs; row++ {
		latAngle := float32(row) * latAngleDiv
		latSin, latCos := math32.Sin(latAngle), math32.Cos(latAngle)
		for i := range longDivs {
			longAngle := float32(i) * longAngleDiv
			longSin, longCos := math32.Sin(longAngle), math32.Cos(longAngle)
			vertices[g.index(row, i)] = point(latSin*longCos, latCos, latSin*longSin)
		}
	}

	g.triangles(func(idx int) {
		points[start] = vertices[idx]
		start++
	})
	return start, nil
}

// GlobeColors writes colors matching Globe(longDivs, latDivs): every grid vertex
// gets its own random color and each pole a single one, expanded in the same
// vertex order Globe uses. It fails like Globe on invalid divisions.
func GlobeColors(rng RandomSource, longDivs, latDivs int, colors []Color, start int) (int, error) {
	g, err := newGlobeGrid(longDivs, latDivs)
	if err != nil {
		return -1, err
	}

	vertexColors := make([]Color, g.size())
	northPole := RandomColor(rng)
	southPole := RandomColor(rng)
	for i := range longDivs {
		vertexColors[g.index(0, i)] = northPole
		vertexColors[g.index(latDivs, i)] = southPole
	}
	for row := 1; row < latDivs; row++ {
		for i := range longDivs {
			vertexColors[g.index(row, i)] = RandomColor(rng)
		}
	}

	g.triangles(func(idx int) {
		colors[start] = vertexColors[idx]
		start++
	})
	return start, nil
}
