package scene

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"holey-shapes/internal/config"
	"holey-shapes/pkg/shapes"
)

const (
	wallWidth = 0.125
	wallSX    = 0.0625 // stretches the unit cube to wallWidth
	wallDX    = 0.9375 // centers each wall wallWidth/2 inside the window edge

	pingPongEyeDist = 4
	pingPongNear    = 2.9
	pingPongFar     = 5
)

// BouncePhase is the ball's position in its compress and release cycle.
type BouncePhase int

const (
	// PhaseFree: moving between walls, uncompressed.
	PhaseFree BouncePhase = iota
	// PhaseCompressing: moving into a wall, squashing along x.
	PhaseCompressing
	// PhaseReleasing: center moving away from the wall while still touching it.
	PhaseReleasing
	// PhaseRecovering: clear of the wall, stretched, easing back to round.
	PhaseRecovering
)

func (p BouncePhase) String() string {
	switch p {
	case PhaseFree:
		return "free"
	case PhaseCompressing:
		return "compressing"
	case PhaseReleasing:
		return "releasing"
	case PhaseRecovering:
		return "recovering"
	}
	return fmt.Sprintf("BouncePhase(%d)", int(p))
}

// PingPong is a ball bouncing between two walls. The ball squashes against
// each wall before reversing and spins about y the whole time.
type PingPong struct {
	Radius         float32
	CompressLimit  float32
	DX             float32
	DeltaDX        float32
	Theta          float32 // degrees
	DeltaTheta     float32
	CompressFactor float32
	Phase          BouncePhase

	perspective bool
	defaultSize int
	lens        Lens
	viewer      Viewer

	mesh       *Mesh
	wall, ball Range
}

// NewPingPong builds the wall and ball geometry and returns the scene at rest
// in the middle of the window. windowSize is the width the window opens at;
// the perspective frustum grows with the window relative to it.
func NewPingPong(cfg config.PingPong, windowSize int) (*PingPong, error) {
	wall := Range{Start: 0, Count: shapes.CubeCount}
	ball := Range{Start: wall.End(), Count: shapes.SphereCount(cfg.Divs)}
	mesh := NewMesh(ball.End())
	rng := newRand(cfg.Seed)

	shapes.Cube(mesh.Points, wall.Start)
	shapes.GeodesicSphere(cfg.Divs, mesh.Points, ball.Start)

	if _, err := shapes.RandomColorsInRange(rng, wall.Count, mesh.Colors, wall.Start, cfg.WallMin, cfg.WallMax); err != nil {
		return nil, fmt.Errorf("wall colors: %w", err)
	}
	if _, err := shapes.RandomColorsInRange(rng, ball.Count, mesh.Colors, ball.Start, cfg.BallMin, cfg.BallMax); err != nil {
		return nil, fmt.Errorf("ball colors: %w", err)
	}
	shapes.FlatNormals(wall.Triangles(), mesh.Points, mesh.Normals, wall.Start)
	shapes.SphericalNormals(ball.Count, mesh.Points, mesh.Normals, ball.Start)

	p := &PingPong{
		Radius:         cfg.Radius,
		CompressLimit:  cfg.Radius / 16,
		DeltaDX:        1.0 / 128,
		DeltaTheta:     1.5,
		CompressFactor: 1,
		perspective:    cfg.Perspective,
		defaultSize:    windowSize,
		viewer:         NewViewer(pingPongEyeDist),
		mesh:           mesh,
		wall:           wall,
		ball:           ball,
	}
	p.Reshape(windowSize, windowSize)
	return p, nil
}

func (p *PingPong) Mesh() *Mesh { return p.mesh }

// Update advances the ball one step. The mesh itself never changes.
func (p *PingPong) Update() bool {
	p.DX += p.DeltaDX
	dist2wall := (1 - wallWidth) - (p.Radius + math32.Abs(p.DX))

	switch p.Phase {
	case PhaseFree:
		if dist2wall < 0 {
			p.CompressFactor = (p.Radius + dist2wall) / p.Radius
			p.Phase = PhaseCompressing
		}
	case PhaseCompressing:
		if dist2wall >= -p.CompressLimit {
			p.CompressFactor = (p.Radius + dist2wall) / p.Radius
		} else {
			p.DeltaDX = -p.DeltaDX
			p.DX += p.DeltaDX // back out of the step past the limit
			p.Phase = PhaseReleasing
		}
	case PhaseReleasing:
		if dist2wall <= p.CompressLimit {
			p.CompressFactor = (p.Radius + dist2wall) / p.Radius
		} else {
			p.CompressFactor = (p.Radius + 2*p.CompressLimit - dist2wall) / p.Radius
			p.Phase = PhaseRecovering
		}
	case PhaseRecovering:
		if dist2wall < 2*p.CompressLimit {
			p.CompressFactor = (p.Radius + 2*p.CompressLimit - dist2wall) / p.Radius
		} else {
			p.CompressFactor = 1
			p.Phase = PhaseFree
		}
	}

	p.Theta -= p.DeltaTheta
	if p.Theta < 0 {
		p.Theta += 360
	}
	return false
}

// Reshape only matters in perspective mode; the orthographic scene always
// maps the unit square onto the window.
func (p *PingPong) Reshape(width, height int) {
	p.lens = WindowLens(p.defaultSize, pingPongNear, pingPongFar, width, height)
}

// Handle ignores viewer actions; the ping-pong camera is fixed.
func (p *PingPong) Handle(Action) bool { return false }

// BallModel returns the ball's model matrix for the current state.
func (p *PingPong) BallModel() mgl32.Mat4 {
	cf := p.CompressFactor
	return mgl32.Translate3D(p.DX, 0, 0).
		Mul4(mgl32.HomogRotate3DY(radians(p.Theta))).
		Mul4(mgl32.Scale3D(cf, 1/cf, 1/cf)).
		Mul4(mgl32.Scale3D(p.Radius, p.Radius, p.Radius))
}

func wallModel(dx float32) mgl32.Mat4 {
	return mgl32.Translate3D(dx, 0, 0).Mul4(mgl32.Scale3D(wallSX, 1, 1))
}

func (p *PingPong) Frame() Frame {
	view, proj := mgl32.Ident4(), mgl32.Ident4()
	if p.perspective {
		view = p.viewer.LookAt()
		proj = p.lens.Matrix()
	}
	return Frame{
		Projection:    proj,
		CullBackFaces: p.perspective,
		Draws: []Draw{
			{Name: "left wall", Range: p.wall, ModelView: view.Mul4(wallModel(-wallDX))},
			{Name: "right wall", Range: p.wall, ModelView: view.Mul4(wallModel(wallDX))},
			{Name: "ball", Range: p.ball, ModelView: view.Mul4(p.BallModel())},
		},
	}
}

// newRand returns a seeded source, or a clock-seeded one for seed 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
