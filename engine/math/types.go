package math

import "image/color"

// Pixel is a colour with byte valued channels. Packed form is 0xRRGGBBAA.
type Pixel struct {
	R, G, B, A uint8
}

var (
	Black       = Pixel{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	White       = Pixel{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Transparent = Pixel{}
)

// NewPixel unpacks a 0xRRGGBBAA value.
func NewPixel(n uint32) Pixel {
	return Pixel{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}
}

// Uint32 packs the pixel back into 0xRRGGBBAA.
func (p Pixel) Uint32() uint32 {
	return uint32(p.R)<<24 | uint32(p.G)<<16 | uint32(p.B)<<8 | uint32(p.A)
}

// RGBA implements color.Color. Channels are not premultiplied, so the
// conversion goes through color.NRGBA.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

/** @brief A point on the logical pixel grid. */
type Point struct {
	X, Y int32
}

/** @brief An axis aligned rectangle on the logical pixel grid. */
type Rect struct {
	X, Y int32
	W, H int32
}

func NewRect(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle covers no pixel.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the largest rectangle contained by both r and s.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.W, s.X+s.W)
	y1 := min(r.Y+r.H, s.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
