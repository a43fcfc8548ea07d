// Command pingpong draws a ball bouncing between two walls. The ball squashes
// against each wall before it turns back.
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
		Title: "Ball Bouncing between Two Walls",
		NewScene: func(cfg config.Config, width, _ int) (app.Scene, error) {
			return scene.NewPingPong(cfg.PingPong, width)
		},
	})
}
