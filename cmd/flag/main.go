// Command flag draws a textured Bezier-patch flag waving on a pole.
package main

import (
	"runtime"

	"holey-shapes/internal/app"
	"holey-shapes/internal/config"
	"holey-shapes/internal/scene"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	app.Main(app.Demo{
		Title:    "Waving Flag",
		Textured: true,
		NewScene: func(cfg config.Config, width, height int) (app.Scene, error) {
			return scene.NewFlag(cfg.Flag, width, height)
		},
	})
}
