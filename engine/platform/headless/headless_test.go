package headless

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/spaghettifunk/pixello/engine/containers"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/platform"
)

var red = math.Pixel{R: 255, A: 255}

func startAll(t *testing.T, b *Backend) {
	t.Helper()
	for _, s := range platform.StartupOrder {
		if err := b.Startup(s); err != nil {
			t.Fatalf("startup %s: %s", s, err)
		}
	}
}

func newTestRenderer(t *testing.T, w, h int32) (*Backend, platform.Renderer) {
	t.Helper()
	b := New()
	startAll(t, b)
	win, err := b.CreateWindow(platform.WindowConfig{Title: "test", Width: w, Height: h})
	if err != nil {
		t.Fatalf("window: %s", err)
	}
	r, err := b.CreateRenderer(win, w, h)
	if err != nil {
		t.Fatalf("renderer: %s", err)
	}
	if err := r.Clear(math.Black); err != nil {
		t.Fatalf("clear: %s", err)
	}
	return b, r
}

func pixelAt(img *image.RGBA, x, y int) math.Pixel {
	c := img.RGBAAt(x, y)
	return math.Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %s", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %s", path, err)
	}
}

func TestPrimitives(t *testing.T) {
	b, r := newTestRenderer(t, 8, 8)

	r.FillRect(math.NewRect(1, 1, 2, 2), red)
	r.DrawPoint(math.Point{X: 7, Y: 7}, math.White)
	r.DrawLine(math.Point{X: 0, Y: 4}, math.Point{X: 3, Y: 7}, math.White)

	if f := b.Frame(); pixelAt(f, 1, 1) != math.Transparent {
		t.Fatalf("nothing should be visible before present, got %+v", pixelAt(f, 1, 1))
	}
	r.Present()
	f := b.Frame()

	for _, p := range []image.Point{{1, 1}, {2, 2}} {
		if got := pixelAt(f, p.X, p.Y); got != red {
			t.Fatalf("expected red at %v, got %+v", p, got)
		}
	}
	if got := pixelAt(f, 3, 3); got != math.Black {
		t.Fatalf("fill leaked to (3,3): %+v", got)
	}
	if got := pixelAt(f, 7, 7); got != math.White {
		t.Fatalf("expected point at (7,7), got %+v", got)
	}
	for i := 0; i < 4; i++ {
		if got := pixelAt(f, i, 4+i); got != math.White {
			t.Fatalf("expected line pixel at (%d,%d), got %+v", i, 4+i, got)
		}
	}
	if b.Presents() != 1 {
		t.Fatalf("expected 1 present, got %d", b.Presents())
	}
}

func TestOutline(t *testing.T) {
	b, r := newTestRenderer(t, 8, 8)
	r.DrawRect(math.NewRect(1, 1, 4, 3), red)
	r.Present()
	f := b.Frame()

	for _, p := range []image.Point{{1, 1}, {4, 1}, {1, 3}, {4, 3}, {1, 2}, {4, 2}} {
		if got := pixelAt(f, p.X, p.Y); got != red {
			t.Fatalf("expected outline at %v, got %+v", p, got)
		}
	}
	if got := pixelAt(f, 2, 2); got != math.Black {
		t.Fatalf("outline should be hollow, got %+v", got)
	}
}

func TestViewportClipsAndTranslates(t *testing.T) {
	b, r := newTestRenderer(t, 8, 8)
	r.SetViewport(&math.Rect{X: 2, Y: 2, W: 4, H: 4})
	r.FillRect(math.NewRect(0, 0, 10, 10), red)
	r.SetViewport(nil)
	r.DrawPoint(math.Point{X: 0, Y: 0}, math.White)
	r.Present()
	f := b.Frame()

	if got := pixelAt(f, 2, 2); got != red {
		t.Fatalf("viewport origin should map to (2,2), got %+v", got)
	}
	if got := pixelAt(f, 5, 5); got != red {
		t.Fatalf("expected red inside the viewport, got %+v", got)
	}
	if got := pixelAt(f, 6, 6); got != math.Black {
		t.Fatalf("fill should be clipped to the viewport, got %+v", got)
	}
	if got := pixelAt(f, 0, 0); got != math.White {
		t.Fatalf("reset viewport should draw at (0,0), got %+v", got)
	}
}

func TestClearIgnoresViewport(t *testing.T) {
	b, r := newTestRenderer(t, 4, 4)
	r.SetViewport(&math.Rect{X: 1, Y: 1, W: 1, H: 1})
	r.Clear(red)
	r.Present()
	if got := pixelAt(b.Frame(), 3, 3); got != red {
		t.Fatalf("clear should cover the whole target, got %+v", got)
	}
}

func TestLoadAndCopyTexture(t *testing.T) {
	b, r := newTestRenderer(t, 8, 8)

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 255, A: 255})
	src.Set(0, 1, color.RGBA{B: 255, A: 255})
	src.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	path := filepath.Join(t.TempDir(), "tiles.png")
	writePNG(t, path, src)

	tex, err := r.LoadTexture(path)
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if w, h := tex.Size(); w != 2 || h != 2 {
		t.Fatalf("expected 2x2, got %dx%d", w, h)
	}

	// Whole texture scaled 2x, then the bottom-right texel alone.
	if err := r.Copy(tex, nil, math.NewRect(0, 0, 4, 4)); err != nil {
		t.Fatalf("copy: %s", err)
	}
	if err := r.Copy(tex, &math.Rect{X: 1, Y: 1, W: 1, H: 1}, math.NewRect(6, 6, 2, 2)); err != nil {
		t.Fatalf("copy crop: %s", err)
	}
	r.Present()
	f := b.Frame()

	checks := map[image.Point]math.Pixel{
		{0, 0}: red,
		{1, 1}: red,
		{3, 0}: {G: 255, A: 255},
		{0, 3}: {B: 255, A: 255},
		{7, 7}: math.White,
		{5, 5}: math.Black,
	}
	for p, want := range checks {
		if got := pixelAt(f, p.X, p.Y); got != want {
			t.Fatalf("at %v expected %+v, got %+v", p, want, got)
		}
	}

	if err := tex.Destroy(); err != nil {
		t.Fatalf("destroy: %s", err)
	}
	if err := r.Copy(tex, nil, math.NewRect(0, 0, 1, 1)); err == nil {
		t.Fatalf("copy of a destroyed texture should fail")
	}
}

func TestLoadTextureErrors(t *testing.T) {
	_, r := newTestRenderer(t, 4, 4)
	if _, err := r.LoadTexture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("missing file accepted")
	}
	junk := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %s", err)
	}
	if _, err := r.LoadTexture(junk); err == nil {
		t.Fatalf("junk accepted as an image")
	}
}

func TestTrueTypeText(t *testing.T) {
	b, r := newTestRenderer(t, 4, 4)
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %s", err)
	}

	f, err := b.OpenFont(path, 16)
	if err != nil {
		t.Fatalf("open font: %s", err)
	}
	defer f.Close()

	short, err := r.RenderText(f, "i", red)
	if err != nil {
		t.Fatalf("render: %s", err)
	}
	long, err := r.RenderText(f, "Hello, pixels", red)
	if err != nil {
		t.Fatalf("render: %s", err)
	}
	sw, sh := short.Size()
	lw, lh := long.Size()
	if sw <= 0 || lw <= sw || sh != lh {
		t.Fatalf("unexpected text sizes %dx%d and %dx%d", sw, sh, lw, lh)
	}

	inked := false
	img := long.(*texture).img
	for y := 0; y < int(lh) && !inked; y++ {
		for x := 0; x < int(lw); x++ {
			if c := img.RGBAAt(x, y); c.A == 255 && c.R == 255 && c.G == 0 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Fatalf("no fully inked red pixel in the rendered text")
	}

	if _, err := r.RenderText(f, "", red); err == nil {
		t.Fatalf("empty text accepted")
	}
}

func TestBitmapFontText(t *testing.T) {
	b, r := newTestRenderer(t, 4, 4)
	dir := t.TempDir()

	sheet := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			sheet.Set(x, y, color.White)
		}
	}
	writePNG(t, filepath.Join(dir, "tiny_0.png"), sheet)

	fnt := `info face="Tiny" size=4 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=0 aa=1 padding=0,0,0,0 spacing=0,0 outline=0
common lineHeight=4 base=3 scaleW=8 scaleH=4 pages=1 packed=0 alphaChnl=0 redChnl=0 greenChnl=0 blueChnl=0
page id=0 file="tiny_0.png"
chars count=2
char id=65   x=0     y=0     width=3     height=4     xoffset=0     yoffset=0     xadvance=4     page=0  chnl=15
char id=66   x=4     y=0     width=3     height=4     xoffset=0     yoffset=0     xadvance=4     page=0  chnl=15
`
	path := filepath.Join(dir, "tiny.fnt")
	if err := os.WriteFile(path, []byte(fnt), 0o644); err != nil {
		t.Fatalf("write fnt: %s", err)
	}

	f, err := b.OpenFont(path, 4)
	if err != nil {
		t.Fatalf("open bitmap font: %s", err)
	}
	defer f.Close()

	tex, err := r.RenderText(f, "AB", red)
	if err != nil {
		t.Fatalf("render: %s", err)
	}
	if w, h := tex.Size(); w != 8 || h != 4 {
		t.Fatalf("expected 8x4, got %dx%d", w, h)
	}
	img := tex.(*texture).img
	if c := img.RGBAAt(1, 1); c.R != 255 || c.A != 255 {
		t.Fatalf("glyph A should be inked, got %+v", c)
	}
	if c := img.RGBAAt(5, 1); c.A != 0 {
		t.Fatalf("glyph B is blank on the sheet, got %+v", c)
	}
}

func TestFailOn(t *testing.T) {
	b := New()
	b.FailOn("audio")
	b.FailOn(StepRenderer)

	if err := b.Startup(platform.SubsystemVideo); err != nil {
		t.Fatalf("video: %s", err)
	}
	if err := b.Startup(platform.SubsystemAudio); err == nil {
		t.Fatalf("audio should fail")
	}
	win, err := b.CreateWindow(platform.WindowConfig{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("window: %s", err)
	}
	if _, err := b.CreateRenderer(win, 4, 4); err == nil {
		t.Fatalf("renderer should fail")
	}
	if err := win.Destroy(); err != nil {
		t.Fatalf("destroy: %s", err)
	}
	if err := win.Destroy(); err == nil {
		t.Fatalf("double destroy should be reported")
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %s", name, err)
	}
	return path
}

func TestAudio(t *testing.T) {
	b := New()
	if _, err := b.LoadSound("jump.wav"); err == nil {
		t.Fatalf("sound loaded without the audio subsystem")
	}
	startAll(t, b)

	wav := writeFile(t, "jump.wav", []byte("RIFF\x24\x00\x00\x00WAVEfmt "))
	avi := writeFile(t, "clip.avi", []byte("RIFF\x24\x00\x00\x00AVI LIST"))
	ogg := writeFile(t, "theme.ogg", []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00"))

	s, err := b.LoadSound(wav)
	if err != nil {
		t.Fatalf("load sound: %s", err)
	}
	if _, err := b.LoadSound(avi); err == nil {
		t.Fatalf("non WAVE RIFF accepted")
	}
	if _, err := b.LoadSound(ogg); err == nil {
		t.Fatalf("ogg accepted as a sound chunk")
	}
	s.SetVolume(64)
	if err := s.Play(2); err != nil {
		t.Fatalf("play: %s", err)
	}
	if snd := s.(*sound); snd.volume != 64 || len(snd.plays) != 1 || snd.plays[0] != 2 {
		t.Fatalf("unexpected sound state %+v", snd)
	}

	m, err := b.LoadMusic(ogg)
	if err != nil {
		t.Fatalf("load music: %s", err)
	}
	if err := m.Play(-1); err != nil {
		t.Fatalf("play music: %s", err)
	}
	b.PauseMusic()
	if b.MusicState() != MusicPaused {
		t.Fatalf("expected paused, got %d", b.MusicState())
	}
	b.ResumeMusic()
	if b.MusicState() != MusicPlaying {
		t.Fatalf("expected playing, got %d", b.MusicState())
	}
	m.Free()
	if b.MusicState() != MusicHalted {
		t.Fatalf("freeing the playing track should halt it")
	}
	if err := m.Play(0); err == nil {
		t.Fatalf("freed music played")
	}
	b.SetMusicVolume(32)
	if b.MusicVolume() != 32 {
		t.Fatalf("expected music volume 32, got %d", b.MusicVolume())
	}
}

func TestScriptedEvents(t *testing.T) {
	b := New()
	if err := b.PushEvent(core.KeyDownEvent{Key: core.KEY_A}, core.QuitEvent{}); err != nil {
		t.Fatalf("push: %s", err)
	}
	if ev := b.PollEvent(); ev.Kind() != core.EVENT_KIND_KEY_DOWN {
		t.Fatalf("expected key down first, got %v", ev)
	}
	if ev := b.PollEvent(); ev.Kind() != core.EVENT_KIND_QUIT {
		t.Fatalf("expected quit second, got %v", ev)
	}
	if ev := b.PollEvent(); ev != nil {
		t.Fatalf("expected a drained queue, got %v", ev)
	}

	overflow := make([]core.Event, EventQueueSize+1)
	for i := range overflow {
		overflow[i] = core.MouseWheelEvent{DY: 1}
	}
	if err := b.PushEvent(overflow...); !errors.Is(err, containers.ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	b.SetKey(core.KEY_SPACE, true)
	if !b.KeyHeld(core.KEY_SPACE) || b.KeyHeld(core.KEY_A) {
		t.Fatalf("unexpected keyboard state")
	}
}
