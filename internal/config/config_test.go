package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holey-shapes/pkg/shapes"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "demo.toml", `
[window]
width = 768
height = 768

[render]
fps_limit = 120

[pingpong]
radius = 0.5
perspective = true
ball_min = [0.0, 0.5, 0.0, 1.0]
ball_max = [0.2, 1.0, 0.2, 1.0]

[globe]
long_divs = 12
lat_divs = 6
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 768, cfg.Window.Width)
	assert.Equal(t, 120, cfg.Render.FPSLimit)
	assert.True(t, cfg.PingPong.Perspective)
	assert.Equal(t, float32(0.5), cfg.PingPong.Radius)
	assert.Equal(t, [4]float32{0, 0.5, 0, 1}, cfg.PingPong.BallMin)
	assert.Equal(t, 12, cfg.Globe.LongDivs)
	// untouched sections keep their defaults
	assert.Equal(t, 3, cfg.PingPong.Divs)
	assert.Equal(t, Default().PingPong.WallMax, cfg.PingPong.WallMax)
	assert.Equal(t, Default().Flag, cfg.Flag)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "demo.yaml", `
log:
  level: debug
flag:
  subdivisions: 2
  texture: flag.png
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2, cfg.Flag.Subdivisions)
	assert.Equal(t, "flag.png", cfg.Flag.Texture)
	assert.Equal(t, Default().Flag.Amplitude, cfg.Flag.Amplitude)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "demo.ini", "x=1"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(writeFile(t, dir, "broken.toml", "[globe\nlong_divs = "))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "bad.toml", "[globe]\nlong_divs = 2\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }, ErrInvalid},
		{"log level", func(c *Config) { c.Log.Level = "chatty" }, ErrInvalid},
		{"background", func(c *Config) { c.Render.Background[0] = 2 }, shapes.ErrInvalidColorRange},
		{"ball divs", func(c *Config) { c.PingPong.Divs = 9 }, ErrInvalid},
		{"radius", func(c *Config) { c.PingPong.Radius = 0 }, ErrInvalid},
		{"wall colors", func(c *Config) { c.PingPong.WallMax[2] = 2 }, shapes.ErrInvalidColorRange},
		{"ball colors", func(c *Config) { c.PingPong.BallMin[0] = 1; c.PingPong.BallMax[0] = 0.5 }, shapes.ErrInvalidColorRange},
		{"globe", func(c *Config) { c.Globe.LatDivs = 1 }, ErrInvalid},
		{"pyramid", func(c *Config) { c.Globe.PyramidSides = 2 }, ErrInvalid},
		{"flag", func(c *Config) { c.Flag.Subdivisions = -1 }, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.target)
		})
	}
}

func TestRenderSettings(t *testing.T) {
	t.Cleanup(func() { ApplyRender(Default().Render) })

	SetFPSLimit(10)
	assert.Equal(t, 30, GetFPSLimit())
	SetFPSLimit(1000)
	assert.Equal(t, 240, GetFPSLimit())
	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())

	ApplyRender(Render{FPSLimit: 90, Wireframe: true, Lighting: true, Background: [4]float32{0, 0, 0, 1}})
	assert.Equal(t, 90, GetFPSLimit())
	assert.True(t, GetWireframe())
	assert.True(t, GetLighting())
	assert.Equal(t, [4]float32{0, 0, 0, 1}, GetBackground())
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "demo.toml", "[render]\nfps_limit = 60\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	errs := make(chan error, 4)
	require.NoError(t, Watch(ctx, path, func(c Config) { changes <- c }, func(err error) { errs <- err }))

	// unrelated files in the same directory are ignored
	writeFile(t, dir, "other.toml", "[render]\nfps_limit = 30\n")
	writeFile(t, dir, "demo.toml", "[render]\nfps_limit = 144\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Render.FPSLimit == 144 {
				return
			}
		case err := <-errs:
			// a write may be observed before the file is complete
			t.Logf("reload error: %v", err)
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}
}
