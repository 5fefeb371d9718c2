/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spaghettifunk/pixello/engine"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/platform"
	"github.com/spaghettifunk/pixello/engine/platform/headless"
	"github.com/spaghettifunk/pixello/engine/platform/sdl2"
	"github.com/spaghettifunk/pixello/testbed"
)

func main() {
	configPath := flag.String("config", "", "TOML or YAML application config")
	backendName := flag.String("backend", "sdl", "backend to run on: sdl or headless")
	demo := flag.String("demo", "basic", "demo to run: basic or isometric")
	frames := flag.Uint64("frames", 0, "stop after this many frames, 0 runs until quit")
	flag.Parse()

	os.Exit(run(*configPath, *backendName, *demo, *frames))
}

func run(configPath, backendName, demo string, frames uint64) int {
	var config *engine.ApplicationConfig
	if configPath != "" {
		c, err := engine.LoadApplicationConfig(configPath)
		if err != nil {
			core.LogError("failed to load config: %s", err)
			return 1
		}
		config = c
	}

	game, err := testbed.NewGame(demo, config)
	if err != nil {
		core.LogError("%s", err)
		return 1
	}

	var backend platform.Backend
	switch backendName {
	case "sdl":
		backend = sdl2.New()
	case "headless":
		if frames == 0 {
			core.LogWarn("headless backend without -frames runs until interrupted")
		}
		backend = headless.New()
	default:
		core.LogError("unknown backend %q", backendName)
		return 1
	}

	// signal channel to capture system calls
	var interrupted atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		interrupted.Store(true)
	}()

	// The engine is single threaded: the interrupt and the frame limit are
	// both observed from inside the update hook.
	update := game.FnUpdate
	game.FnUpdate = func(e *engine.Engine) error {
		if err := update(e); err != nil {
			return err
		}
		if interrupted.Load() || (frames > 0 && e.FrameCount()+1 >= frames) {
			e.Stop()
		}
		return nil
	}

	e, err := engine.New(game, backend)
	if err != nil {
		core.LogError("failed to create engine: %s", err)
		return 1
	}
	if !e.Run() {
		return 1
	}
	return 0
}
