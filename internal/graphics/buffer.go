package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"holey-shapes/internal/scene"
)

const (
	pointSize    = 4 * 4
	colorSize    = 4 * 4
	normalSize   = 3 * 4
	texCoordSize = 2 * 4
	vertexSize   = pointSize + colorSize + normalSize + texCoordSize
)

// MeshBuffer holds a scene.Mesh on the GPU as four consecutive blocks:
// points, colors, normals, texture coordinates.
type MeshBuffer struct {
	vao, vbo uint32
	count    int
}

func NewMeshBuffer(m *scene.Mesh) *MeshBuffer {
	b := &MeshBuffer{count: m.Len()}
	n := b.count

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, n*vertexSize, nil, gl.DYNAMIC_DRAW)

	offset := uintptr(0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 0, offset)
	offset += uintptr(n * pointSize)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, 0, offset)
	offset += uintptr(n * colorSize)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, 0, offset)
	offset += uintptr(n * normalSize)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, 0, offset)

	b.Upload(m)
	gl.BindVertexArray(0)
	return b
}

// Upload rewrites the buffer contents from m, which must not have grown.
func (b *MeshBuffer) Upload(m *scene.Mesh) {
	n := min(m.Len(), b.count)
	if n == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	offset := 0
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, n*pointSize, gl.Ptr(m.Points))
	offset += b.count * pointSize
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, n*colorSize, gl.Ptr(m.Colors))
	offset += b.count * colorSize
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, n*normalSize, gl.Ptr(m.Normals))
	offset += b.count * normalSize
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, n*texCoordSize, gl.Ptr(m.TexCoords))
}

func (b *MeshBuffer) Bind() { gl.BindVertexArray(b.vao) }

// Draw issues the triangles in r. The buffer must be bound.
func (b *MeshBuffer) Draw(r scene.Range) {
	if r.Count <= 0 {
		return
	}
	gl.DrawArrays(gl.TRIANGLES, int32(r.Start), int32(r.Count))
}

func (b *MeshBuffer) Delete() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}
