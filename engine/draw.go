package engine

import (
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/resources"
)

// All coordinates are logical pixels, relative to the current viewport.

func (e *Engine) Clear(p math.Pixel) error {
	if err := e.ready(); err != nil {
		return err
	}
	return runtimeError("clear", e.renderer.Clear(p))
}

func (e *Engine) DrawPixel(x, y int32, p math.Pixel) error {
	if err := e.ready(); err != nil {
		return err
	}
	return runtimeError("draw pixel", e.renderer.DrawPoint(math.Point{X: x, Y: y}, p))
}

func (e *Engine) DrawLine(from, to math.Point, p math.Pixel) error {
	if err := e.ready(); err != nil {
		return err
	}
	return runtimeError("draw line", e.renderer.DrawLine(from, to, p))
}

// DrawRect fills r.
func (e *Engine) DrawRect(r math.Rect, p math.Pixel) error {
	if err := e.ready(); err != nil {
		return err
	}
	return runtimeError("fill rect", e.renderer.FillRect(r, p))
}

func (e *Engine) DrawRectOutline(r math.Rect, p math.Pixel) error {
	if err := e.ready(); err != nil {
		return err
	}
	return runtimeError("draw rect", e.renderer.DrawRect(r, p))
}

// DrawTexture blits the whole texture at its natural size with its top-left
// corner at x, y.
func (e *Engine) DrawTexture(t resources.Texture, x, y int32) error {
	return e.DrawTextureRect(t, math.NewRect(x, y, t.Width(), t.Height()))
}

// DrawTextureRect stretches the whole texture into dst.
func (e *Engine) DrawTextureRect(t resources.Texture, dst math.Rect) error {
	return e.copyTexture(t, nil, dst)
}

// DrawTextureCrop stretches the src region of the texture into dst.
func (e *Engine) DrawTextureCrop(t resources.Texture, dst, src math.Rect) error {
	return e.copyTexture(t, &src, dst)
}

func (e *Engine) copyTexture(t resources.Texture, src *math.Rect, dst math.Rect) error {
	if err := e.ready(); err != nil {
		return err
	}
	native := t.Native()
	if native == nil {
		return core.ErrInvalidResource
	}
	return runtimeError("copy texture", e.renderer.Copy(native, src, dst))
}

// SetViewport confines drawing to r and fills it with the background colour.
// The viewport is reset to the whole target at the start of every frame.
func (e *Engine) SetViewport(r math.Rect) error {
	if err := e.ready(); err != nil {
		return err
	}
	if err := e.renderer.SetViewport(&r); err != nil {
		return runtimeError("set viewport", err)
	}
	return runtimeError("fill viewport", e.renderer.FillRect(math.NewRect(0, 0, r.W, r.H), e.settings.background))
}

func (e *Engine) ResetViewport() error {
	if err := e.ready(); err != nil {
		return err
	}
	return runtimeError("reset viewport", e.renderer.SetViewport(nil))
}
