//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and runs the demo named by $PIXELLO_DEMO (basic by default).
func (Run) Engine() error {
	mg.Deps(Build.Engine)

	demo := os.Getenv("PIXELLO_DEMO")
	if demo == "" {
		demo = "basic"
	}
	fmt.Println("Run engine...")
	if _, err := executeCmd("bin/pixello", withArgs("-demo", demo), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the basic demo on the headless backend for a few frames.
func (Run) Smoke() error {
	_, err := executeCmd("go", withArgs("run", ".", "-backend", "headless", "-demo", "basic", "-frames", "120"), withStream())
	return err
}
