package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"holey-shapes/internal/config"
	"holey-shapes/pkg/shapes"
)

const (
	clothLeft   = -0.7
	clothWidth  = 1.2
	clothBottom = -0.3
	clothHeight = 1.2

	poleSides  = 16
	poleX      = -0.72
	poleRadius = 0.02
	poleBottom = -1.0
	poleTop    = 0.95

	// phaseStep is the ripple advance per frame at speed 1, in radians.
	phaseStep = 0.05
)

var (
	poleColor   = shapes.Color{0.55, 0.55, 0.6, 1}
	finialColor = shapes.Color{0.85, 0.7, 0.2, 1}
	clothColor  = shapes.Color{1, 1, 1, 1}
)

// Flag is a cloth Bezier patch rippling on a pole. The patch is subdivided
// again every frame, once for each side, so the mesh changes with Update.
type Flag struct {
	Subdivisions int
	Amplitude    float32
	Speed        float32
	Phase        float32
	Viewer       Viewer

	lens                      Lens
	mesh                      *Mesh
	front, back, pole, finial Range
}

// NewFlag builds the pole and the first frame of the cloth.
func NewFlag(cfg config.Flag, width, height int) (*Flag, error) {
	if cfg.Subdivisions < 0 {
		return nil, fmt.Errorf("flag subdivisions %d: %w", cfg.Subdivisions, shapes.ErrInvalidDivisions)
	}
	n := shapes.PatchCount(cfg.Subdivisions)
	front := Range{Start: 0, Count: n}
	back := Range{Start: front.End(), Count: n}
	pole := Range{Start: back.End(), Count: shapes.CylinderCount(poleSides)}
	finial := Range{Start: pole.End(), Count: shapes.DoublePyramidCount(poleSides / 2)}
	mesh := NewMesh(finial.End())

	shapes.Cylinder(poleSides, mesh.Points, pole.Start)
	shapes.FlatNormals(pole.Triangles(), mesh.Points, mesh.Normals, pole.Start)
	shapes.DoublePyramid(poleSides/2, mesh.Points, finial.Start)
	shapes.FlatNormals(finial.Triangles(), mesh.Points, mesh.Normals, finial.Start)
	fill(mesh.Colors[front.Start:back.End()], clothColor)
	fill(mesh.Colors[pole.Start:pole.End()], poleColor)
	fill(mesh.Colors[finial.Start:finial.End()], finialColor)

	f := &Flag{
		Subdivisions: cfg.Subdivisions,
		Amplitude:    cfg.Amplitude,
		Speed:        cfg.Speed,
		Viewer:       NewViewer(viewerDist),
		mesh:         mesh,
		front:        front,
		back:         back,
		pole:         pole,
		finial:       finial,
	}
	if err := f.subdivide(); err != nil {
		return nil, err
	}
	f.Reshape(width, height)
	return f, nil
}

func fill(colors []shapes.Color, c shapes.Color) {
	for i := range colors {
		colors[i] = c
	}
}

// Cloth returns the control points for the current phase. The first index
// runs along the cloth away from the pole, the second from bottom to top. The
// ripple grows with distance from the pole and lags slightly with height.
func (f *Flag) Cloth() shapes.Patch {
	var p shapes.Patch
	for i := range 4 {
		u := float32(i) / 3
		for j := range 4 {
			v := float32(j) / 3
			z := f.Amplitude * u * math32.Sin(f.Phase-u*1.5*math32.Pi-v*0.3)
			p[i][j] = shapes.Point{clothLeft + u*clothWidth, clothBottom + v*clothHeight, z, 1}
		}
	}
	return p
}

// subdivide rewrites both sides of the cloth. The front faces +z.
func (f *Flag) subdivide() error {
	cloth := f.Cloth()
	m := f.mesh
	if _, err := shapes.DividePatch(cloth, f.Subdivisions, shapes.BackToFront,
		m.Points, m.Normals, m.TexCoords, f.front.Start, shapes.FullTexRange); err != nil {
		return err
	}
	_, err := shapes.DividePatch(cloth, f.Subdivisions, shapes.FrontToBack,
		m.Points, m.Normals, m.TexCoords, f.back.Start, shapes.FullTexRange)
	return err
}

func (f *Flag) Mesh() *Mesh { return f.mesh }

// Update advances the ripple and reports that the mesh changed.
func (f *Flag) Update() bool {
	f.Phase += f.Speed * phaseStep
	if f.Phase > 2*math32.Pi {
		f.Phase -= 2 * math32.Pi
	}
	// subdivisions were validated in NewFlag
	_ = f.subdivide()
	return true
}

func (f *Flag) Reshape(width, height int) {
	f.lens = FitLens(lensScale, lensNear, lensFar, width, height)
}

func (f *Flag) Handle(a Action) bool { return f.Viewer.Handle(a) }

func (f *Flag) Frame() Frame {
	view := f.Viewer.LookAt()
	poleHalf := float32(poleTop-poleBottom) / 2
	poleModel := mgl32.Translate3D(poleX, poleBottom+poleHalf, 0).
		Mul4(mgl32.Scale3D(poleRadius, poleHalf, poleRadius))
	finialModel := mgl32.Translate3D(poleX, poleTop+0.05, 0).
		Mul4(mgl32.Scale3D(2*poleRadius, 0.05, 2*poleRadius))

	return Frame{
		Projection:    f.lens.Matrix(),
		CullBackFaces: true,
		Draws: []Draw{
			{Name: "pole", Range: f.pole, ModelView: view.Mul4(poleModel), Lit: true},
			{Name: "finial", Range: f.finial, ModelView: view.Mul4(finialModel), Lit: true},
			{Name: "cloth front", Range: f.front, ModelView: view, Lit: true, Textured: true},
			{Name: "cloth back", Range: f.back, ModelView: view, Lit: true, Textured: true},
		},
	}
}
