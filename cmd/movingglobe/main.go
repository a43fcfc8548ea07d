// Command movingglobe draws an ovoid globe revolving about the line z = x
// above four pyramids.
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
		Title: "Moving Globe",
		NewScene: func(cfg config.Config, width, height int) (app.Scene, error) {
			return scene.NewMovingGlobe(cfg.Globe, width, height)
		},
	})
}
