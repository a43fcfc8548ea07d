package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"holey-shapes/pkg/shapes"
)

var (
	ErrUnknownFormat = errors.New("config: unknown file format")
	ErrInvalid       = errors.New("config: invalid value")
)

// Config is the full set of demo options. Any field left out of a config file
// keeps its value from Default.
type Config struct {
	Window   Window   `toml:"window" yaml:"window"`
	Render   Render   `toml:"render" yaml:"render"`
	Log      Log      `toml:"log" yaml:"log"`
	PingPong PingPong `toml:"pingpong" yaml:"pingpong"`
	Globe    Globe    `toml:"globe" yaml:"globe"`
	Flag     Flag     `toml:"flag" yaml:"flag"`
}

type Window struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	// Title replaces the demo's own window title when set.
	Title string `toml:"title" yaml:"title"`
}

type Render struct {
	FPSLimit   int        `toml:"fps_limit" yaml:"fps_limit"`
	Wireframe  bool       `toml:"wireframe" yaml:"wireframe"`
	Lighting   bool       `toml:"lighting" yaml:"lighting"`
	Background [4]float32 `toml:"background" yaml:"background"`
}

type Log struct {
	Level string `toml:"level" yaml:"level"`
}

// PingPong configures the ball bouncing between two walls.
type PingPong struct {
	Divs        int        `toml:"divs" yaml:"divs"`
	Radius      float32    `toml:"radius" yaml:"radius"`
	Perspective bool       `toml:"perspective" yaml:"perspective"`
	WallMin     [4]float32 `toml:"wall_min" yaml:"wall_min"`
	WallMax     [4]float32 `toml:"wall_max" yaml:"wall_max"`
	BallMin     [4]float32 `toml:"ball_min" yaml:"ball_min"`
	BallMax     [4]float32 `toml:"ball_max" yaml:"ball_max"`
	// Seed 0 picks a seed from the clock.
	Seed int64 `toml:"seed" yaml:"seed"`
}

// Globe configures the revolving ovoid and its four pyramids.
type Globe struct {
	LongDivs     int   `toml:"long_divs" yaml:"long_divs"`
	LatDivs      int   `toml:"lat_divs" yaml:"lat_divs"`
	PyramidSides int   `toml:"pyramid_sides" yaml:"pyramid_sides"`
	Seed         int64 `toml:"seed" yaml:"seed"`
}

// Flag configures the waving Bezier patch.
type Flag struct {
	Subdivisions int     `toml:"subdivisions" yaml:"subdivisions"`
	Amplitude    float32 `toml:"amplitude" yaml:"amplitude"`
	Speed        float32 `toml:"speed" yaml:"speed"`
	// Texture is an optional image file; empty draws a Swiss flag.
	Texture string `toml:"texture" yaml:"texture"`
}

// Default returns the settings the demos were tuned with.
func Default() Config {
	return Config{
		Window: Window{Width: 512, Height: 512},
		Render: Render{FPSLimit: 60, Background: [4]float32{1, 0.9, 0.75, 1}},
		Log:    Log{Level: "info"},
		PingPong: PingPong{
			Divs:    3,
			Radius:  0.25,
			WallMin: [4]float32{0, 0, 0, 1},
			WallMax: [4]float32{0.1, 0.1, 0.3, 1},
			BallMin: [4]float32{0.8, 0, 0, 1},
			BallMax: [4]float32{1, 0.2, 0.1, 1},
		},
		Globe: Globe{LongDivs: 36, LatDivs: 18, PyramidSides: 4},
		Flag:  Flag{Subdivisions: 4, Amplitude: 0.3, Speed: 1},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file over the defaults and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every option a demo relies on.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(validLevel(c.Log.Level), "log level %q", c.Log.Level)
	if err := shapes.ValidateColorRange(c.Render.Background, c.Render.Background); err != nil {
		errs = append(errs, fmt.Errorf("render background: %w", err))
	}

	check(c.PingPong.Divs >= 0 && c.PingPong.Divs <= 7, "pingpong divs %d not in [0, 7]", c.PingPong.Divs)
	check(c.PingPong.Radius > 0 && c.PingPong.Radius < 0.75, "pingpong radius %g not in (0, 0.75)", c.PingPong.Radius)
	if err := shapes.ValidateColorRange(c.PingPong.WallMin, c.PingPong.WallMax); err != nil {
		errs = append(errs, fmt.Errorf("pingpong wall colors: %w", err))
	}
	if err := shapes.ValidateColorRange(c.PingPong.BallMin, c.PingPong.BallMax); err != nil {
		errs = append(errs, fmt.Errorf("pingpong ball colors: %w", err))
	}

	check(shapes.GlobeCount(c.Globe.LongDivs, c.Globe.LatDivs) > 0, "globe divisions %dx%d", c.Globe.LongDivs, c.Globe.LatDivs)
	check(c.Globe.PyramidSides >= 3, "pyramid sides %d", c.Globe.PyramidSides)

	check(c.Flag.Subdivisions >= 0 && c.Flag.Subdivisions <= 7, "flag subdivisions %d not in [0, 7]", c.Flag.Subdivisions)

	return errors.Join(errs...)
}

func validLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error", "fatal":
		return true
	}
	return false
}
