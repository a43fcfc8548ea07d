package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"holey-shapes/pkg/shapes"
)

// Mesh holds parallel per-vertex arrays for everything a scene draws.
type Mesh struct {
	Points    []shapes.Point
	Normals   []shapes.Vector3
	TexCoords []shapes.TexCoord
	Colors    []shapes.Color
}

// NewMesh allocates a mesh of n vertices.
func NewMesh(n int) *Mesh {
	return &Mesh{
		Points:    make([]shapes.Point, n),
		Normals:   make([]shapes.Vector3, n),
		TexCoords: make([]shapes.TexCoord, n),
		Colors:    make([]shapes.Color, n),
	}
}

// Len returns the number of vertices.
func (m *Mesh) Len() int { return len(m.Points) }

// Range is a contiguous run of triangle vertices within a Mesh.
type Range struct {
	Start int
	Count int
}

// End returns the index just past the range.
func (r Range) End() int { return r.Start + r.Count }

// Triangles returns the number of triangles in the range.
func (r Range) Triangles() int { return r.Count / 3 }

// Draw is one draw call: a range of the mesh under a model-view matrix.
type Draw struct {
	Name      string
	Range     Range
	ModelView mgl32.Mat4
	Lit       bool
	Textured  bool
}

// Frame is everything needed to draw one frame of a scene.
type Frame struct {
	Projection mgl32.Mat4
	Draws      []Draw
	// CullBackFaces hides triangles wound clockwise on screen.
	CullBackFaces bool
}

// Action is a viewer or animation command coming from input.
type Action int

const (
	ActionNone Action = iota
	ActionViewerIn
	ActionViewerOut
	ActionViewerLeft
	ActionViewerRight
	ActionViewerUp
	ActionViewerDown
)

func radians(a float32) float32 { return mgl32.DegToRad(a) }
