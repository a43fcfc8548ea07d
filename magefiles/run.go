//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Run mg.Namespace

// Runs the ping-pong demo. Set CONFIG to pass a config file.
func (Run) PingPong() error { return runDemo("pingpong") }

// Runs the moving globe demo.
func (Run) Globe() error { return runDemo("movingglobe") }

// Runs the waving flag demo.
func (Run) Flag() error { return runDemo("flag") }

func runDemo(demo string) error {
	args := []string{"run", "./cmd/" + demo}
	if cfg := os.Getenv("CONFIG"); cfg != "" {
		args = append(args, "-config", cfg, "-watch")
	}
	return sh.RunV("go", args...)
}
