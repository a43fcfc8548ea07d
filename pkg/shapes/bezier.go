package shapes

import "fmt"

// Patch is a 4x4 grid of cubic Bezier control points. The four corners lie on the
// surface; the first index runs along s and the second along t.
type Patch [4][4]Point

// Orientation selects the triangle winding and the sign of the corner normals.
type Orientation int

const (
	// BackToFront is for patches whose row 0 is at the back.
	BackToFront Orientation = -1
	// FrontToBack is for patches whose row 0 is at the front.
	FrontToBack Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case BackToFront:
		return "back-to-front"
	case FrontToBack:
		return "front-to-back"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// TexRange is the rectangle of texture space mapped onto a patch.
type TexRange struct {
	SStart, SEnd float32
	TStart, TEnd float32
}

// FullTexRange maps the whole texture onto a patch.
var FullTexRange = TexRange{SStart: 0, SEnd: 1, TStart: 0, TEnd: 1}

// NumQuadsPerPatch returns 4^subdivisions, the number of quadrilaterals in a patch
// subdivided that many times. It is 0 for negative values.
func NumQuadsPerPatch(subdivisions int) int { return pow4(subdivisions) }

// Transpose swaps the s and t directions of p in place.
func (p *Patch) Transpose() {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 4; j++ {
			p[i][j], p[j][i] = p[j][i], p[i][j]
		}
	}
}

func mid(a, b Point) Point {
	m := a.Add(b).Mul(0.5)
	m[3] = 1
	return m
}

// divideRows splits p along t into two patches that share the middle curve.
func divideRows(p *Patch) (q, r Patch) {
	for i := range 4 {
		m := mid(p[i][1], p[i][2])

		q[i][0] = p[i][0]
		q[i][1] = mid(p[i][0], p[i][1])
		q[i][2] = mid(q[i][1], m)

		r[i][3] = p[i][3]
		r[i][2] = mid(p[i][2], p[i][3])
		r[i][1] = mid(m, r[i][2])

		q[i][3] = mid(q[i][2], r[i][1])
		r[i][0] = q[i][3]
	}
	return q, r
}

// divideCols splits p along s into two patches that share the middle curve.
func divideCols(p *Patch) (q, r Patch) {
	t := *p
	t.Transpose()
	q, r = divideRows(&t)
	q.Transpose()
	r.Transpose()
	return q, r
}

type patchWriter struct {
	orientation Orientation
	points      []Point
	normals     []Vector3
	texCoords   []TexCoord
	// normals and texCoords are indexed from these when they are scratch buffers
	normalBase int
	texBase    int
}

func (w *patchWriter) put(i int, p Point, n Vector3, tc TexCoord) {
	w.points[i] = p
	w.normals[i-w.normalBase] = n
	w.texCoords[i-w.texBase] = tc
}

// corners emits the quad bounded by p's corners as two triangles.
func (w *patchWriter) corners(p *Patch, start int, tex TexRange) int {
	o := float32(w.orientation)
	n00 := p[0][1].Sub(p[0][0]).Vec3().Cross(p[1][0].Sub(p[0][0]).Vec3()).Normalize().Mul(o)
	n30 := p[2][0].Sub(p[3][0]).Vec3().Cross(p[3][1].Sub(p[3][0]).Vec3()).Normalize().Mul(o)
	n33 := p[3][2].Sub(p[3][3]).Vec3().Cross(p[2][3].Sub(p[3][3]).Vec3()).Normalize().Mul(o)
	n03 := p[1][3].Sub(p[0][3]).Vec3().Cross(p[0][2].Sub(p[0][3]).Vec3()).Normalize().Mul(o)

	t00 := TexCoord{tex.SStart, tex.TStart}
	t30 := TexCoord{tex.SEnd, tex.TStart}
	t33 := TexCoord{tex.SEnd, tex.TEnd}
	t03 := TexCoord{tex.SStart, tex.TEnd}

	if w.orientation == BackToFront {
		w.put(start, p[0][0], n00, t00)
		w.put(start+1, p[3][0], n30, t30)
		w.put(start+2, p[3][3], n33, t33)
		w.put(start+3, p[0][0], n00, t00)
		w.put(start+4, p[3][3], n33, t33)
		w.put(start+5, p[0][3], n03, t03)
	} else {
		w.put(start, p[0][0], n00, t00)
		w.put(start+1, p[3][3], n33, t33)
		w.put(start+2, p[3][0], n30, t30)
		w.put(start+3, p[0][0], n00, t00)
		w.put(start+4, p[0][3], n03, t03)
		w.put(start+5, p[3][3], n33, t33)
	}
	return start + 6
}

func (w *patchWriter) divide(p *Patch, subdivisions int, start int, tex TexRange) int {
	if subdivisions <= 0 {
		return w.corners(p, start, tex)
	}

	a, b := divideRows(p)
	q, s := divideCols(&a)
	r, t := divideCols(&b)

	sMid := (tex.SStart + tex.SEnd) / 2
	tMid := (tex.TStart + tex.TEnd) / 2

	start = w.divide(&q, subdivisions-1, start, TexRange{tex.SStart, sMid, tex.TStart, tMid})
	start = w.divide(&r, subdivisions-1, start, TexRange{tex.SStart, sMid, tMid, tex.TEnd})
	start = w.divide(&s, subdivisions-1, start, TexRange{sMid, tex.SEnd, tex.TStart, tMid})
	return w.divide(&t, subdivisions-1, start, TexRange{sMid, tex.SEnd, tMid, tex.TEnd})
}

// DividePatch subdivides p the given number of times and writes each resulting
// quad as two triangles, with per-corner normals and texture coordinates spread
// over tex. points, and normals and texCoords when non-nil, need
// PatchCount(subdivisions) elements from start. Passing nil normals or texCoords
// discards them.
//
// It returns -1 with ErrNilPoints or ErrInvalidOrientation, writing nothing, when
// points is nil or orientation is neither BackToFront nor FrontToBack.
func DividePatch(p Patch, subdivisions int, orientation Orientation,
	points []Point, normals []Vector3, texCoords []TexCoord, start int, tex TexRange) (int, error) {
	if points == nil {
		return -1, ErrNilPoints
	}
	if orientation != BackToFront && orientation != FrontToBack {
		return -1, fmt.Errorf("%w: %v", ErrInvalidOrientation, orientation)
	}

	w := &patchWriter{
		orientation: orientation,
		points:      points,
		normals:     normals,
		texCoords:   texCoords,
	}
	n := PatchCount(max(subdivisions, 0))
	if normals == nil {
		w.normals = make([]Vector3, n)
		w.normalBase = start
	}
	if texCoords == nil {
		w.texCoords = make([]TexCoord, n)
		w.texBase = start
	}
	return w.divide(&p, subdivisions, start, tex), nil
}
