package sdl2

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/spaghettifunk/pixello/engine/core"
)

var scancodes = map[core.Keycap]sdl.Scancode{
	core.KEY_ESCAPE:    sdl.SCANCODE_ESCAPE,
	core.KEY_ENTER:     sdl.SCANCODE_RETURN,
	core.KEY_SPACE:     sdl.SCANCODE_SPACE,
	core.KEY_BACKSPACE: sdl.SCANCODE_BACKSPACE,
	core.KEY_TAB:       sdl.SCANCODE_TAB,
	core.KEY_UP:        sdl.SCANCODE_UP,
	core.KEY_DOWN:      sdl.SCANCODE_DOWN,
	core.KEY_LEFT:      sdl.SCANCODE_LEFT,
	core.KEY_RIGHT:     sdl.SCANCODE_RIGHT,
	core.KEY_LSHIFT:    sdl.SCANCODE_LSHIFT,
	core.KEY_RSHIFT:    sdl.SCANCODE_RSHIFT,
	core.KEY_LCONTROL:  sdl.SCANCODE_LCTRL,
	core.KEY_RCONTROL:  sdl.SCANCODE_RCTRL,
	core.KEY_LALT:      sdl.SCANCODE_LALT,
	core.KEY_RALT:      sdl.SCANCODE_RALT,
}

// keycaps is the reverse of scancodes, filled in init.
var keycaps = map[sdl.Scancode]core.Keycap{}

func init() {
	// SDL lays out letters, digits 1..9,0 and F1..F12 contiguously.
	for k := core.KEY_A; k <= core.KEY_Z; k++ {
		scancodes[k] = sdl.SCANCODE_A + sdl.Scancode(k-core.KEY_A)
	}
	scancodes[core.KEY_0] = sdl.SCANCODE_0
	for k := core.KEY_1; k <= core.KEY_9; k++ {
		scancodes[k] = sdl.SCANCODE_1 + sdl.Scancode(k-core.KEY_1)
	}
	for k := core.KEY_F1; k <= core.KEY_F12; k++ {
		scancodes[k] = sdl.SCANCODE_F1 + sdl.Scancode(k-core.KEY_F1)
	}
	for k, sc := range scancodes {
		keycaps[sc] = k
	}
}

func keycapOf(sc sdl.Scancode) core.Keycap {
	if k, ok := keycaps[sc]; ok {
		return k
	}
	return core.KEY_UNKNOWN
}

func buttonOf(b uint8) core.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return core.BUTTON_LEFT
	case sdl.BUTTON_MIDDLE:
		return core.BUTTON_MIDDLE
	case sdl.BUTTON_RIGHT:
		return core.BUTTON_RIGHT
	}
	return core.BUTTON_UNKNOWN
}

// PollEvent translates the next SDL event. Events the engine does not care
// about are skipped.
func (b *Backend) PollEvent() core.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			return core.QuitEvent{}
		case *sdl.KeyboardEvent:
			key := keycapOf(t.Keysym.Scancode)
			if t.Type == sdl.KEYDOWN {
				return core.KeyDownEvent{Key: key, Repeat: t.Repeat != 0}
			}
			return core.KeyUpEvent{Key: key}
		case *sdl.MouseMotionEvent:
			return core.MouseMotionEvent{X: t.X, Y: t.Y, DX: t.XRel, DY: t.YRel}
		case *sdl.MouseButtonEvent:
			return core.MouseButtonEvent{
				Button: buttonOf(t.Button),
				Down:   t.State == sdl.PRESSED,
				Clicks: t.Clicks,
				X:      t.X,
				Y:      t.Y,
			}
		case *sdl.MouseWheelEvent:
			return core.MouseWheelEvent{DX: t.X, DY: t.Y}
		}
	}
	return nil
}
