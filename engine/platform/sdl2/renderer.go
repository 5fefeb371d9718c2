package sdl2

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/platform"
)

type renderer struct {
	r *sdl.Renderer
}

func toRect(r math.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func (r *renderer) setColor(c math.Pixel) error {
	return r.r.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (r *renderer) Clear(c math.Pixel) error {
	if err := r.setColor(c); err != nil {
		return err
	}
	return r.r.Clear()
}

func (r *renderer) SetViewport(v *math.Rect) error {
	if v == nil {
		return r.r.SetViewport(nil)
	}
	rect := toRect(*v)
	return r.r.SetViewport(&rect)
}

func (r *renderer) FillRect(rect math.Rect, c math.Pixel) error {
	if err := r.setColor(c); err != nil {
		return err
	}
	sr := toRect(rect)
	return r.r.FillRect(&sr)
}

func (r *renderer) DrawRect(rect math.Rect, c math.Pixel) error {
	if err := r.setColor(c); err != nil {
		return err
	}
	sr := toRect(rect)
	return r.r.DrawRect(&sr)
}

func (r *renderer) DrawLine(from, to math.Point, c math.Pixel) error {
	if err := r.setColor(c); err != nil {
		return err
	}
	return r.r.DrawLine(from.X, from.Y, to.X, to.Y)
}

func (r *renderer) DrawPoint(p math.Point, c math.Pixel) error {
	if err := r.setColor(c); err != nil {
		return err
	}
	return r.r.DrawPoint(p.X, p.Y)
}

func (r *renderer) Copy(t platform.Texture, src *math.Rect, dst math.Rect) error {
	tex, ok := t.(*texture)
	if !ok {
		return fmt.Errorf("texture %T was not created by the sdl2 backend", t)
	}
	d := toRect(dst)
	if src == nil {
		return r.r.Copy(tex.t, nil, &d)
	}
	s := toRect(*src)
	return r.r.Copy(tex.t, &s, &d)
}

func (r *renderer) Present() {
	r.r.Present()
}

func (r *renderer) LoadTexture(path string) (platform.Texture, error) {
	t, err := img.LoadTexture(r.r, path)
	if err != nil {
		return nil, err
	}
	return newTexture(t)
}

func (r *renderer) RenderText(f platform.Font, text string, c math.Pixel) (platform.Texture, error) {
	ft, ok := f.(*font)
	if !ok {
		return nil, fmt.Errorf("font %T was not opened by the sdl2 backend", f)
	}
	surface, err := ft.f.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	t, err := r.r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	return newTexture(t)
}

func (r *renderer) Destroy() error {
	return r.r.Destroy()
}

type texture struct {
	t      *sdl.Texture
	width  int32
	height int32
}

func newTexture(t *sdl.Texture) (platform.Texture, error) {
	_, _, w, h, err := t.Query()
	if err != nil {
		t.Destroy()
		return nil, err
	}
	return &texture{t: t, width: w, height: h}, nil
}

func (t *texture) Size() (int32, int32) {
	return t.width, t.height
}

func (t *texture) Destroy() error {
	return t.t.Destroy()
}
