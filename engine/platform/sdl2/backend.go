// Package sdl2 implements the engine backend on SDL2 through go-sdl2.
package sdl2

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/platform"
)

func init() {
	// SDL video and event calls must stay on the main OS thread.
	runtime.LockOSThread()
}

var _ platform.Backend = (*Backend)(nil)

type Backend struct {
	frequency uint64
}

func New() *Backend {
	return &Backend{}
}

func (b *Backend) Startup(s platform.Subsystem) error {
	switch s {
	case platform.SubsystemVideo:
		if err := sdl.InitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER); err != nil {
			return err
		}
		b.frequency = sdl.GetPerformanceFrequency()
		sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")
	case platform.SubsystemAudio:
		if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
			return err
		}
		if err := mix.Init(mix.INIT_OGG | mix.INIT_MP3); err != nil {
			core.LogWarn("mixer decoders unavailable: %s", err)
		}
		if err := mix.OpenAudio(mix.DEFAULT_FREQUENCY, mix.DEFAULT_FORMAT, mix.DEFAULT_CHANNELS, 2048); err != nil {
			mix.Quit()
			sdl.QuitSubSystem(sdl.INIT_AUDIO)
			return err
		}
	case platform.SubsystemImage:
		if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
			return err
		}
	case platform.SubsystemFont:
		if err := ttf.Init(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown subsystem %d", s)
	}
	return nil
}

func (b *Backend) Teardown(s platform.Subsystem) error {
	switch s {
	case platform.SubsystemVideo:
		sdl.QuitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER)
		sdl.Quit()
	case platform.SubsystemAudio:
		mix.CloseAudio()
		mix.Quit()
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
	case platform.SubsystemImage:
		img.Quit()
	case platform.SubsystemFont:
		ttf.Quit()
	default:
		return fmt.Errorf("unknown subsystem %d", s)
	}
	return nil
}

func (b *Backend) Counter() uint64 {
	return sdl.GetPerformanceCounter()
}

func (b *Backend) Frequency() uint64 {
	if b.frequency == 0 {
		b.frequency = sdl.GetPerformanceFrequency()
	}
	return b.frequency
}

func (b *Backend) Delay(ms uint32) {
	sdl.Delay(ms)
}

type window struct {
	w *sdl.Window
}

func (b *Backend) CreateWindow(config platform.WindowConfig) (platform.Window, error) {
	w, err := sdl.CreateWindow(config.Title, config.X, config.Y, config.Width, config.Height, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	return &window{w: w}, nil
}

func (w *window) Destroy() error {
	return w.w.Destroy()
}

func (b *Backend) CreateRenderer(w platform.Window, logicalWidth, logicalHeight int32) (platform.Renderer, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, fmt.Errorf("window %T was not created by the sdl2 backend", w)
	}
	r, err := sdl.CreateRenderer(win.w, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}
	if err := r.SetLogicalSize(logicalWidth, logicalHeight); err != nil {
		r.Destroy()
		return nil, err
	}
	if err := r.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		r.Destroy()
		return nil, err
	}
	return &renderer{r: r}, nil
}

func (b *Backend) KeyHeld(k core.Keycap) bool {
	sc, ok := scancodes[k]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

type font struct {
	f *ttf.Font
}

func (b *Backend) OpenFont(path string, size int) (platform.Font, error) {
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	return &font{f: f}, nil
}

func (f *font) Close() {
	f.f.Close()
}
