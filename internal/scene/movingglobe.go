package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"holey-shapes/internal/config"
	"holey-shapes/pkg/shapes"
)

const (
	xRotateDivs  = 180
	revolveDivs  = 540
	obliqueAngle = -45 // degrees

	viewerDist = 4
	lensScale  = 0.1
	lensNear   = 0.4
	lensFar    = 20
)

var (
	// ovoidModel stands the globe's poles along x, squashes it into an ovoid
	// and moves it off the revolution axis.
	ovoidModel = mgl32.Translate3D(0.5, 0, 0).
		Mul4(mgl32.Scale3D(0.4, 0.2, 0.2)).
		Mul4(mgl32.HomogRotate3DZ(radians(90)))

	pyramidScale = mgl32.Scale3D(0.4, 0.5, 0.4)

	pyramidPlacements = []struct {
		x, z, angle float32
	}{
		{0.7, 0.7, 45},    // right front
		{0.7, -0.7, 135},  // right rear
		{-0.7, 0.7, 225},  // left front
		{-0.7, -0.7, 315}, // left rear
	}
)

const pyramidY = -0.8

// MovingGlobe is an ovoid globe spinning about its own axis while revolving
// about the line z = x, above four pyramids. The viewer can be moved.
type MovingGlobe struct {
	XRotatePos int
	RevolvePos int
	Viewer     Viewer

	lens         Lens
	mesh         *Mesh
	globe, prism Range
}

// NewMovingGlobe builds the globe and pyramid geometry for cfg.
func NewMovingGlobe(cfg config.Globe, width, height int) (*MovingGlobe, error) {
	globe := Range{Start: 0, Count: shapes.GlobeCount(cfg.LongDivs, cfg.LatDivs)}
	if globe.Count < 0 {
		return nil, fmt.Errorf("globe %dx%d: %w", cfg.LongDivs, cfg.LatDivs, shapes.ErrInvalidDivisions)
	}
	prism := Range{Start: globe.End(), Count: shapes.PyramidCount(cfg.PyramidSides)}
	mesh := NewMesh(prism.End())
	rng := newRand(cfg.Seed)

	if _, err := shapes.Globe(cfg.LongDivs, cfg.LatDivs, mesh.Points, globe.Start); err != nil {
		return nil, err
	}
	if _, err := shapes.GlobeColors(rng, cfg.LongDivs, cfg.LatDivs, mesh.Colors, globe.Start); err != nil {
		return nil, err
	}
	shapes.SphericalNormals(globe.Count, mesh.Points, mesh.Normals, globe.Start)

	shapes.Pyramid(cfg.PyramidSides, mesh.Points, prism.Start)
	shapes.RandomColors(rng, prism.Count, mesh.Colors, prism.Start)
	shapes.FlatNormals(prism.Triangles(), mesh.Points, mesh.Normals, prism.Start)

	g := &MovingGlobe{
		Viewer: NewViewer(viewerDist),
		mesh:   mesh,
		globe:  globe,
		prism:  prism,
	}
	g.Reshape(width, height)
	return g, nil
}

func (g *MovingGlobe) Mesh() *Mesh { return g.mesh }

// Update advances the spin and the revolution one step each.
func (g *MovingGlobe) Update() bool {
	g.XRotatePos = (g.XRotatePos + 1) % xRotateDivs
	g.RevolvePos = (g.RevolvePos + 1) % revolveDivs
	return false
}

func (g *MovingGlobe) Reshape(width, height int) {
	g.lens = FitLens(lensScale, lensNear, lensFar, width, height)
}

func (g *MovingGlobe) Handle(a Action) bool { return g.Viewer.Handle(a) }

// GlobeModel returns the globe's model matrix for the current step.
func (g *MovingGlobe) GlobeModel() mgl32.Mat4 {
	xAngle := float32(g.XRotatePos) * 360 / xRotateDivs
	revolveAngle := float32(g.RevolvePos) * 360 / revolveDivs
	return mgl32.HomogRotate3DY(radians(obliqueAngle)).
		Mul4(mgl32.HomogRotate3DZ(radians(revolveAngle))).
		Mul4(mgl32.HomogRotate3DX(radians(xAngle))).
		Mul4(ovoidModel)
}

func (g *MovingGlobe) Frame() Frame {
	view := g.Viewer.LookAt()
	draws := make([]Draw, 0, 1+len(pyramidPlacements))
	draws = append(draws, Draw{Name: "globe", Range: g.globe, ModelView: view.Mul4(g.GlobeModel())})
	for _, pl := range pyramidPlacements {
		model := mgl32.Translate3D(pl.x, pyramidY, pl.z).
			Mul4(pyramidScale).
			Mul4(mgl32.HomogRotate3DY(radians(pl.angle)))
		draws = append(draws, Draw{Name: "pyramid", Range: g.prism, ModelView: view.Mul4(model)})
	}
	return Frame{Projection: g.lens.Matrix(), Draws: draws, CullBackFaces: true}
}
