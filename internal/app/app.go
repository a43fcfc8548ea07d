package app

import (
	"context"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"holey-shapes/internal/config"
	"holey-shapes/internal/graphics"
	"holey-shapes/internal/input"
	"holey-shapes/internal/logging"
	"holey-shapes/internal/profiling"
)

// slowFrame is the frame time above which the loop logs where it went.
const slowFrame = 20 * time.Millisecond

type App struct {
	window   *glfw.Window
	input    *input.InputManager
	renderer *graphics.Renderer
	limiter  *FPSLimiter
	profile  profiling.Frame
	ctrl     Controller
}

// New wires input and resize handling for window to s and r.
func New(window *glfw.Window, s Scene, r *graphics.Renderer) *App {
	a := &App{
		window:   window,
		input:    input.NewInputManager(),
		renderer: r,
		limiter:  NewFPSLimiter(nil),
		ctrl:     Controller{Scene: s},
	}
	a.input.SetKeyCallback(window)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.resize(width, height)
	})
	a.resize(window.GetFramebufferSize())
	return a
}

func (a *App) resize(width, height int) {
	// minimized
	if width <= 0 || height <= 0 {
		return
	}
	a.renderer.SetViewport(width, height)
	a.ctrl.Scene.Reshape(width, height)
}

// Run draws frames until the window closes, Esc is pressed or ctx is done.
func (a *App) Run(ctx context.Context) {
	for !a.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		a.tick()
	}
}

func (a *App) tick() {
	a.profile.Begin()

	func() { defer a.profile.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	a.ctrl.Apply(a.input.Drain())
	if a.ctrl.Quit {
		a.window.SetShouldClose(true)
		return
	}

	var changed bool
	func() { defer a.profile.Track("scene.Update")(); changed = a.ctrl.Step() }()
	if changed {
		func() { defer a.profile.Track("mesh.Upload")(); a.renderer.Upload(a.ctrl.Scene.Mesh()) }()
	}

	func() {
		defer a.profile.Track("renderer.Render")()
		a.renderer.Render(a.ctrl.Scene.Frame(), graphics.Options{
			Background: config.GetBackground(),
			Wireframe:  config.GetWireframe(),
			Lighting:   config.GetLighting(),
		})
	}()
	func() { defer a.profile.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := a.profile.Elapsed(); d > slowFrame {
		logging.Debug("Slow frame: %v. Top tasks: %s", d, a.profile.TopN(3))
	}

	a.limiter.Wait(a.ctrl.Paused)
}
