package headless

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/fzipp/bmfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/platform"
)

// rasterizer draws a line of text into a fresh image sized to fit it, in
// white; the caller tints it.
type rasterizer interface {
	platform.Font
	rasterize(text string) (*image.Alpha, error)
}

func (b *Backend) OpenFont(path string, size int) (platform.Font, error) {
	if !b.Started(platform.SubsystemFont) {
		return nil, fmt.Errorf("font subsystem not started")
	}
	if strings.EqualFold(filepath.Ext(path), ".fnt") {
		return openBitmapFont(path)
	}
	return openTrueType(path, size)
}

func (r *renderer) RenderText(f platform.Font, text string, c math.Pixel) (platform.Texture, error) {
	rf, ok := f.(rasterizer)
	if !ok {
		return nil, fmt.Errorf("font %T was not opened by the headless backend", f)
	}
	if text == "" {
		return nil, fmt.Errorf("text has zero width")
	}
	mask, err := rf.rasterize(text)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(mask.Bounds())
	draw.DrawMask(img, img.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Src)
	return &texture{img: img}, nil
}

type trueTypeFont struct {
	face   font.Face
	closed bool
}

func openTrueType(path string, size int) (*trueTypeFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &trueTypeFont{face: face}, nil
}

func (f *trueTypeFont) rasterize(text string) (*image.Alpha, error) {
	if f.closed {
		return nil, fmt.Errorf("font already closed")
	}
	metrics := f.face.Metrics()
	width := font.MeasureString(f.face, text).Ceil()
	height := metrics.Height.Ceil()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("text %q has zero width", text)
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(text)
	return mask, nil
}

func (f *trueTypeFont) Close() {
	if !f.closed {
		f.face.Close()
		f.closed = true
	}
}

type glyph struct {
	page             int
	bounds           image.Rectangle
	xOffset, yOffset int
	xAdvance         int
}

// bitmapFont is an AngelCode .fnt font with its page sheets.
type bitmapFont struct {
	lineHeight int
	glyphs     map[rune]glyph
	kerning    map[[2]rune]int
	pages      map[int]image.Image
	closed     bool
}

func openBitmapFont(path string) (*bitmapFont, error) {
	bf, err := bmfont.Load(path)
	if err != nil {
		return nil, err
	}
	desc := bf.Descriptor

	f := &bitmapFont{
		lineHeight: int(desc.Common.LineHeight),
		glyphs:     make(map[rune]glyph, len(desc.Chars)),
		kerning:    make(map[[2]rune]int, len(desc.Kerning)),
		pages:      make(map[int]image.Image, len(desc.Pages)),
	}
	for _, p := range desc.Pages {
		img, err := decodeImage(filepath.Join(filepath.Dir(path), p.File))
		if err != nil {
			return nil, err
		}
		f.pages[int(p.ID)] = img
	}
	for _, g := range desc.Chars {
		x, y := int(g.X), int(g.Y)
		f.glyphs[rune(g.ID)] = glyph{
			page:     int(g.Page),
			bounds:   image.Rect(x, y, x+int(g.Width), y+int(g.Height)),
			xOffset:  int(g.XOffset),
			yOffset:  int(g.YOffset),
			xAdvance: int(g.XAdvance),
		}
	}
	for p, k := range desc.Kerning {
		f.kerning[[2]rune{rune(p.First), rune(p.Second)}] = int(k.Amount)
	}
	return f, nil
}

func (f *bitmapFont) rasterize(text string) (*image.Alpha, error) {
	if f.closed {
		return nil, fmt.Errorf("font already closed")
	}

	width, prev := 0, rune(-1)
	for _, ch := range text {
		g, ok := f.glyphs[ch]
		if !ok {
			continue
		}
		width += g.xAdvance + f.kerning[[2]rune{prev, ch}]
		prev = ch
	}
	if width <= 0 || f.lineHeight <= 0 {
		return nil, fmt.Errorf("text %q has zero width", text)
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, f.lineHeight))
	x, prev := 0, rune(-1)
	for _, ch := range text {
		g, ok := f.glyphs[ch]
		if !ok {
			continue
		}
		x += f.kerning[[2]rune{prev, ch}]
		if page, ok := f.pages[g.page]; ok {
			dst := g.bounds.Sub(g.bounds.Min).Add(image.Pt(x+g.xOffset, g.yOffset))
			draw.Draw(mask, dst, page, g.bounds.Min, draw.Over)
		}
		x += g.xAdvance
		prev = ch
	}
	return mask, nil
}

func (f *bitmapFont) Close() {
	f.closed = true
	f.pages = nil
}
