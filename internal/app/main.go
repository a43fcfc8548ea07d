package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"holey-shapes/internal/config"
	"holey-shapes/internal/graphics"
	"holey-shapes/internal/logging"
)

// Demo describes one executable.
type Demo struct {
	// Title is the window title unless the config sets one.
	Title string
	// Textured demos load cfg.Flag.Texture, or draw a Swiss flag without one.
	Textured bool
	NewScene func(cfg config.Config, width, height int) (Scene, error)
}

// Main parses the command line, runs d and exits. It must be called from the
// main goroutine, which GLFW requires to be locked to the OS thread.
func Main(d Demo) {
	configPath := flag.String("config", "", "TOML or YAML config `file`")
	watch := flag.Bool("watch", false, "reload render and log settings when the config file changes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logging.Fatal("Config: %v", err)
		}
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		logging.Fatal("Config: %v", err)
	}
	config.ApplyRender(cfg.Render)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	// on a signal, stop the loop and wait for it to release GL before exiting
	closer.Bind(func() {
		cancel()
		<-done
	})

	if *watch {
		if *configPath == "" {
			logging.Warn("-watch needs -config; ignoring")
		} else if err := config.Watch(ctx, *configPath, applyReload, func(err error) {
			logging.Warn("Config reload: %v", err)
		}); err != nil {
			logging.Error("Config watch: %v", err)
		}
	}

	err := Run(ctx, d, cfg)
	close(done)
	if err != nil {
		logging.Error("%v", err)
		closer.Exit(1)
	}
	closer.Close()
}

// applyReload takes the parts of a changed config that can change live.
// Geometry settings need a restart.
func applyReload(cfg config.Config) {
	config.ApplyRender(cfg.Render)
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		logging.Warn("Config reload: %v", err)
	}
	logging.Info("Config reloaded")
}

// Run opens the window, builds the scene and draws it until the window closes
// or ctx is done.
func Run(ctx context.Context, d Demo, cfg config.Config) error {
	if d.NewScene == nil {
		return errors.New("demo has no scene")
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window, d.Title)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	version, err := graphics.InitGL()
	if err != nil {
		return err
	}
	logging.Info("OpenGL %s", version)

	width, height := window.GetFramebufferSize()
	s, err := d.NewScene(cfg, width, height)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	logging.Debug("Scene mesh: %d vertices", s.Mesh().Len())

	var texture *graphics.Texture
	if d.Textured {
		if texture, err = graphics.LoadTexture(cfg.Flag.Texture); err != nil {
			return err
		}
	}
	r, err := graphics.NewRenderer(s.Mesh(), texture)
	if err != nil {
		if texture != nil {
			texture.Delete()
		}
		return err
	}
	defer r.Dispose()

	New(window, s, r).Run(ctx)
	return nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config file] [-watch]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Keys: Esc quits, Space pauses, any other key resumes.")
		fmt.Fprintln(flag.CommandLine.Output(), "PageUp/PageDown and arrows or WASD move the viewer; F toggles wireframe.")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
}
