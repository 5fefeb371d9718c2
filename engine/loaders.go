package engine

import (
	"fmt"

	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/platform"
	"github.com/spaghettifunk/pixello/engine/resources"
)

// Loaders are synchronous and uncached: loading the same path twice returns
// two independent resources. A failure is a *core.LoadError naming the path.

func (e *Engine) LoadImage(path string) (resources.Texture, error) {
	if err := e.ready(); err != nil {
		return resources.Texture{}, err
	}
	return resources.NewTexture(path, e.tracker, func() (platform.Texture, error) {
		return e.renderer.LoadTexture(path)
	})
}

func (e *Engine) LoadFont(path string, size int) (resources.Font, error) {
	if err := e.ready(); err != nil {
		return resources.Font{}, err
	}
	if size <= 0 {
		return resources.Font{}, &core.InputError{Param: "font size", Value: size, Reason: "must be positive"}
	}
	return resources.NewFont(path, size, e.tracker, func() (platform.Font, error) {
		return e.backend.OpenFont(path, size)
	})
}

func (e *Engine) LoadSound(path string) (resources.Sound, error) {
	if err := e.audioReady(); err != nil {
		return resources.Sound{}, err
	}
	return resources.NewSound(path, e.tracker, func() (platform.Sound, error) {
		return e.backend.LoadSound(path)
	})
}

func (e *Engine) LoadMusic(path string) (resources.Music, error) {
	if err := e.audioReady(); err != nil {
		return resources.Music{}, err
	}
	return resources.NewMusic(path, e.tracker, func() (platform.Music, error) {
		return e.backend.LoadMusic(path)
	})
}

// CreateText renders text with f into a new texture sized to fit it.
func (e *Engine) CreateText(text string, c math.Pixel, f resources.Font) (resources.Texture, error) {
	if err := e.ready(); err != nil {
		return resources.Texture{}, err
	}
	source := fmt.Sprintf("text %q", text)
	native := f.Native()
	if native == nil {
		return resources.Texture{}, &core.LoadError{Path: source, Err: core.ErrInvalidResource}
	}
	return resources.NewTexture(source, e.tracker, func() (platform.Texture, error) {
		return e.renderer.RenderText(native, text, c)
	})
}

// CreateTextDefault renders text with the font named in the config.
func (e *Engine) CreateTextDefault(text string, c math.Pixel) (resources.Texture, error) {
	return e.CreateText(text, c, e.defaultFont)
}
