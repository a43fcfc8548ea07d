package scene

import "github.com/go-gl/mathgl/mgl32"

// Viewer is an eye point looking at the origin. It moves in and out along its
// line of sight and sideways by changing its offset-to-distance ratio, so the
// angle it sees the origin from stays bounded.
type Viewer struct {
	Eye mgl32.Vec3
	At  mgl32.Vec3
	Up  mgl32.Vec3

	MinDist        float32
	MaxDist        float32
	MaxOffsetRatio float32
	DeltaDist      float32
	DeltaOffset    float32
}

// NewViewer returns a viewer at (0, 0, dist) with the moving-globe limits.
func NewViewer(dist float32) Viewer {
	return Viewer{
		Eye:            mgl32.Vec3{0, 0, dist},
		Up:             mgl32.Vec3{0, 1, 0},
		MinDist:        2,
		MaxDist:        10,
		MaxOffsetRatio: 1,
		DeltaDist:      0.25,
		DeltaOffset:    0.1,
	}
}

// LookAt returns the view matrix.
func (v *Viewer) LookAt() mgl32.Mat4 {
	return mgl32.LookAtV(v.Eye, v.At, v.Up)
}

func (v *Viewer) MoveIn() {
	if v.Eye[2] <= v.MinDist {
		return
	}
	v.Eye[2] -= v.DeltaDist
	ratio := v.Eye[2] / (v.Eye[2] + v.DeltaDist)
	v.Eye[0] *= ratio
	v.Eye[1] *= ratio
}

func (v *Viewer) MoveOut() {
	if v.Eye[2] >= v.MaxDist {
		return
	}
	v.Eye[2] += v.DeltaDist
	ratio := v.Eye[2] / (v.Eye[2] - v.DeltaDist)
	v.Eye[0] *= ratio
	v.Eye[1] *= ratio
}

// shift moves component axis by delta in offset-ratio units, if that stays
// within MaxOffsetRatio.
func (v *Viewer) shift(axis int, delta float32) {
	ratio := v.Eye[axis] / v.Eye[2]
	if (delta < 0 && ratio > -v.MaxOffsetRatio) || (delta > 0 && ratio < v.MaxOffsetRatio) {
		v.Eye[axis] = v.Eye[2] * (ratio + delta)
	}
}

func (v *Viewer) MoveLeft()  { v.shift(0, -v.DeltaOffset) }
func (v *Viewer) MoveRight() { v.shift(0, v.DeltaOffset) }
func (v *Viewer) MoveUp()    { v.shift(1, v.DeltaOffset) }
func (v *Viewer) MoveDown()  { v.shift(1, -v.DeltaOffset) }

// Handle applies a viewer action and reports whether it was one.
func (v *Viewer) Handle(a Action) bool {
	switch a {
	case ActionViewerIn:
		v.MoveIn()
	case ActionViewerOut:
		v.MoveOut()
	case ActionViewerLeft:
		v.MoveLeft()
	case ActionViewerRight:
		v.MoveRight()
	case ActionViewerUp:
		v.MoveUp()
	case ActionViewerDown:
		v.MoveDown()
	default:
		return false
	}
	return true
}
