package headless

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/platform"
)

// renderer draws on a target of logical size. Blending follows the alpha
// "over" operator, like an SDL renderer in blend mode.
type renderer struct {
	backend   *Backend
	target    *image.RGBA
	frame     *image.RGBA
	viewport  image.Rectangle
	presents  int
	destroyed bool
}

func newRenderer(b *Backend, w, h int32) *renderer {
	bounds := image.Rect(0, 0, int(w), int(h))
	return &renderer{
		backend:  b,
		target:   image.NewRGBA(bounds),
		frame:    image.NewRGBA(bounds),
		viewport: bounds,
	}
}

// Frame returns a copy of the last presented frame.
func (b *Backend) Frame() *image.RGBA {
	if b.renderer == nil {
		return nil
	}
	out := image.NewRGBA(b.renderer.frame.Bounds())
	copy(out.Pix, b.renderer.frame.Pix)
	return out
}

// Presents counts the frames presented so far.
func (b *Backend) Presents() int {
	if b.renderer == nil {
		return 0
	}
	return b.renderer.presents
}

// toTarget moves r from viewport space to target space.
func (r *renderer) toTarget(rect math.Rect) image.Rectangle {
	x, y := int(rect.X)+r.viewport.Min.X, int(rect.Y)+r.viewport.Min.Y
	return image.Rect(x, y, x+int(rect.W), y+int(rect.H))
}

func (r *renderer) blend(dst image.Rectangle, c math.Pixel) {
	dst = dst.Intersect(r.viewport)
	if dst.Empty() {
		return
	}
	draw.Draw(r.target, dst, image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *renderer) plot(x, y int, c math.Pixel) {
	p := image.Pt(x+r.viewport.Min.X, y+r.viewport.Min.Y)
	if !p.In(r.viewport) {
		return
	}
	r.blend(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, c)
}

func (r *renderer) Clear(c math.Pixel) error {
	draw.Draw(r.target, r.target.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

func (r *renderer) SetViewport(v *math.Rect) error {
	if v == nil {
		r.viewport = r.target.Bounds()
		return nil
	}
	if v.W < 0 || v.H < 0 {
		return fmt.Errorf("invalid viewport %+v", *v)
	}
	r.viewport = r.toTargetFromOrigin(*v).Intersect(r.target.Bounds())
	return nil
}

func (r *renderer) toTargetFromOrigin(v math.Rect) image.Rectangle {
	return image.Rect(int(v.X), int(v.Y), int(v.X+v.W), int(v.Y+v.H))
}

func (r *renderer) FillRect(rect math.Rect, c math.Pixel) error {
	r.blend(r.toTarget(rect), c)
	return nil
}

func (r *renderer) DrawRect(rect math.Rect, c math.Pixel) error {
	if rect.Empty() {
		return nil
	}
	x0, y0 := int(rect.X), int(rect.Y)
	x1, y1 := x0+int(rect.W)-1, y0+int(rect.H)-1
	for x := x0; x <= x1; x++ {
		r.plot(x, y0, c)
		if y1 != y0 {
			r.plot(x, y1, c)
		}
	}
	for y := y0 + 1; y < y1; y++ {
		r.plot(x0, y, c)
		if x1 != x0 {
			r.plot(x1, y, c)
		}
	}
	return nil
}

// DrawLine rasterizes with Bresenham, both end points included.
func (r *renderer) DrawLine(from, to math.Point, c math.Pixel) error {
	x0, y0 := int(from.X), int(from.Y)
	x1, y1 := int(to.X), int(to.Y)
	dx, dy := math.Abs(x1-x0), -math.Abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.plot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (r *renderer) DrawPoint(p math.Point, c math.Pixel) error {
	r.plot(int(p.X), int(p.Y), c)
	return nil
}

// Copy scales with nearest neighbour, the same filtering the native backend
// is configured with.
func (r *renderer) Copy(t platform.Texture, src *math.Rect, dst math.Rect) error {
	tex, ok := t.(*texture)
	if !ok {
		return fmt.Errorf("texture %T was not created by the headless backend", t)
	}
	if tex.destroyed {
		return fmt.Errorf("texture already destroyed")
	}
	sr := tex.img.Bounds()
	if src != nil {
		sr = r.toTargetFromOrigin(*src).Intersect(sr)
	}
	dr := r.toTarget(dst)
	if sr.Empty() || dr.Empty() {
		return nil
	}
	// Scale clips dr to the sub-image, which keeps the blit inside the viewport.
	clipped := r.target.SubImage(r.viewport).(*image.RGBA)
	xdraw.NearestNeighbor.Scale(clipped, dr, tex.img, sr, xdraw.Over, nil)
	return nil
}

func (r *renderer) Present() {
	copy(r.frame.Pix, r.target.Pix)
	r.presents++
}

func (r *renderer) Destroy() error {
	if r.destroyed {
		return fmt.Errorf("renderer already destroyed")
	}
	r.destroyed = true
	return nil
}
