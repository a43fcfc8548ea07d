//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var demos = []string{"pingpong", "movingglobe", "flag"}

type Build mg.Namespace

// Builds every demo into bin/.
func (Build) All() error {
	for _, demo := range demos {
		if err := buildDemo(demo); err != nil {
			return err
		}
	}
	return nil
}

// Runs go vet over the module.
func (Build) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

func buildDemo(demo string) error {
	out := filepath.Join("bin", demo)
	fmt.Printf("Building %s...\n", out)
	return sh.RunV("go", "build", "-o", out, "./cmd/"+demo)
}
