package config

import "sync"

const (
	minFPSLimit = 30
	maxFPSLimit = 240
)

// RenderSettings holds the settings the render loop reads every frame. They can
// change while a demo runs when the config file is watched.
type RenderSettings struct {
	mu         sync.RWMutex
	fpsLimit   int // 0 means uncapped
	wireframe  bool
	lighting   bool
	background [4]float32
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:   60,
	background: Default().Render.Background,
}

// GetFPSLimit returns the frame rate cap, or 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap. Values <= 0 remove the cap; others are
// clamped to [30, 240].
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	switch {
	case limit <= 0:
		limit = 0
	case limit < minFPSLimit:
		limit = minFPSLimit
	case limit > maxFPSLimit:
		limit = maxFPSLimit
	}
	globalRenderSettings.fpsLimit = limit
}

// GetWireframe reports whether meshes are drawn as lines
func GetWireframe() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

// SetWireframe switches wireframe drawing on or off
func SetWireframe(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = enabled
}

// GetLighting reports whether every draw is shaded
func GetLighting() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.lighting
}

func SetLighting(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.lighting = enabled
}

// GetBackground returns the clear color
func GetBackground() [4]float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.background
}

func SetBackground(c [4]float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.background = c
}

// ApplyRender copies r into the render settings. Everything in Render can
// change while a demo runs.
func ApplyRender(r Render) {
	SetFPSLimit(r.FPSLimit)
	SetWireframe(r.Wireframe)
	SetLighting(r.Lighting)
	SetBackground(r.Background)
}
