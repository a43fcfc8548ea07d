package scene

import "github.com/go-gl/mathgl/mgl32"

// Lens is a perspective viewing frustum.
type Lens struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

// Matrix returns the projection matrix.
func (l Lens) Matrix() mgl32.Mat4 {
	return mgl32.Frustum(l.Left, l.Right, l.Bottom, l.Top, l.Near, l.Far)
}

// FitLens keeps the shorter window side at ±dimScale and widens the other to
// match the aspect ratio.
func FitLens(dimScale, near, far float32, width, height int) Lens {
	aspect := float32(width) / float32(max(height, 1))
	right, top := dimScale, dimScale
	if aspect >= 1 {
		right = dimScale * aspect
	} else {
		top = dimScale / aspect
	}
	return Lens{Left: -right, Right: right, Bottom: -top, Top: top, Near: near, Far: far}
}

// WindowLens scales the frustum with the window, so a window of defaultSize
// pixels sees ±1 at the near plane.
func WindowLens(defaultSize int, near, far float32, width, height int) Lens {
	right := float32(width) / float32(defaultSize)
	top := float32(height) / float32(defaultSize)
	return Lens{Left: -right, Right: right, Bottom: -top, Top: top, Near: near, Far: far}
}
