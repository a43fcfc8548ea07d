package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"holey-shapes/internal/scene"
)

// lightPosition is fixed in eye space, above and behind the viewer's right shoulder.
var lightPosition = mgl32.Vec3{2, 3, 4}

// Options are the per-frame render switches that come from config.
type Options struct {
	Background [4]float32
	Wireframe  bool
	// Lighting shades every draw, not only those the scene marks lit.
	Lighting bool
}

type Renderer struct {
	shader  *Shader
	mesh    *MeshBuffer
	texture *Texture
}

// NewRenderer loads GL, compiles the mesh shader and uploads m. texture may be
// nil; textured draws then use their vertex colors alone.
func NewRenderer(m *scene.Mesh, texture *Texture) (*Renderer, error) {
	shader, err := NewShader("mesh")
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)

	return &Renderer{
		shader:  shader,
		mesh:    NewMeshBuffer(m),
		texture: texture,
	}, nil
}

// InitGL loads the GL function pointers for the current context.
func InitGL() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("init gl: %w", err)
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

// Upload refreshes the GPU copy of a mesh that changed since the last frame.
func (r *Renderer) Upload(m *scene.Mesh) {
	r.mesh.Upload(m)
}

func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Render(f scene.Frame, opts Options) {
	bg := opts.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if opts.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	if f.CullBackFaces {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	r.shader.Use()
	r.shader.SetMatrix4("projection", f.Projection)
	r.shader.SetVector3("light_position", lightPosition)
	r.shader.SetInt("tex", 0)
	if r.texture != nil {
		r.texture.Bind(0)
	}

	r.mesh.Bind()
	for _, d := range f.Draws {
		r.shader.SetMatrix4("model_view", d.ModelView)
		r.shader.SetBool("lit", d.Lit || opts.Lighting)
		r.shader.SetBool("textured", d.Textured && r.texture != nil)
		r.mesh.Draw(d.Range)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) Dispose() {
	r.mesh.Delete()
	r.shader.Delete()
	if r.texture != nil {
		r.texture.Delete()
	}
}
