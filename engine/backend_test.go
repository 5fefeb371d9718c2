package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/platform"
)

var errFake = errors.New("fake backend failure")

// fakeBackend records every call in order. Time only moves when the pacer
// sleeps.
type fakeBackend struct {
	calls    []string
	failOn   map[string]bool
	queue    []core.Event
	held     map[core.Keycap]bool
	now      uint64
	renderer *fakeRenderer

	musicVolume int
	freed       int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		failOn: map[string]bool{},
		held:   map[core.Keycap]bool{},
	}
}

func (b *fakeBackend) record(format string, args ...interface{}) {
	b.calls = append(b.calls, fmt.Sprintf(format, args...))
}

func (b *fakeBackend) count(prefix string) int {
	n := 0
	for _, c := range b.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (b *fakeBackend) index(call string) int {
	for i, c := range b.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func (b *fakeBackend) push(evs ...core.Event) {
	b.queue = append(b.queue, evs...)
}

func (b *fakeBackend) Counter() uint64   { return b.now }
func (b *fakeBackend) Frequency() uint64 { return 1000 }
func (b *fakeBackend) Delay(ms uint32)   { b.now += uint64(ms) }

func (b *fakeBackend) Startup(s platform.Subsystem) error {
	if b.failOn[s.String()] {
		return errFake
	}
	b.record("startup %s", s)
	return nil
}

func (b *fakeBackend) Teardown(s platform.Subsystem) error {
	b.record("teardown %s", s)
	return nil
}

func (b *fakeBackend) CreateWindow(config platform.WindowConfig) (platform.Window, error) {
	if b.failOn["window"] {
		return nil, errFake
	}
	b.record("window %dx%d", config.Width, config.Height)
	return &fakeWindow{b: b}, nil
}

func (b *fakeBackend) CreateRenderer(w platform.Window, logicalWidth, logicalHeight int32) (platform.Renderer, error) {
	if b.failOn["renderer"] {
		return nil, errFake
	}
	b.record("renderer %dx%d", logicalWidth, logicalHeight)
	b.renderer = &fakeRenderer{b: b}
	return b.renderer, nil
}

func (b *fakeBackend) PollEvent() core.Event {
	if len(b.queue) == 0 {
		return nil
	}
	ev := b.queue[0]
	b.queue = b.queue[1:]
	return ev
}

func (b *fakeBackend) KeyHeld(k core.Keycap) bool { return b.held[k] }

func (b *fakeBackend) OpenFont(path string, size int) (platform.Font, error) {
	if b.failOn[path] {
		return nil, errFake
	}
	b.record("open font %s", path)
	return &fakeFont{b: b}, nil
}

func (b *fakeBackend) LoadSound(path string) (platform.Sound, error) {
	if b.failOn[path] {
		return nil, errFake
	}
	return &fakeSound{b: b}, nil
}

func (b *fakeBackend) LoadMusic(path string) (platform.Music, error) {
	if b.failOn[path] {
		return nil, errFake
	}
	return &fakeMusic{b: b}, nil
}

func (b *fakeBackend) PauseMusic()               { b.record("pause music") }
func (b *fakeBackend) ResumeMusic()              { b.record("resume music") }
func (b *fakeBackend) HaltMusic()                { b.record("halt music") }
func (b *fakeBackend) SetMusicVolume(volume int) { b.musicVolume = volume }

type fakeWindow struct{ b *fakeBackend }

func (w *fakeWindow) Destroy() error {
	w.b.record("destroy window")
	return nil
}

type fakeRenderer struct {
	b        *fakeBackend
	viewport *math.Rect
	fills    []math.Rect
	copies   int
}

func (r *fakeRenderer) Clear(c math.Pixel) error {
	r.b.record("clear")
	return nil
}

func (r *fakeRenderer) SetViewport(v *math.Rect) error {
	r.viewport = v
	return nil
}

func (r *fakeRenderer) FillRect(rect math.Rect, c math.Pixel) error {
	r.fills = append(r.fills, rect)
	return nil
}

func (r *fakeRenderer) DrawRect(rect math.Rect, c math.Pixel) error      { return nil }
func (r *fakeRenderer) DrawLine(from, to math.Point, c math.Pixel) error { return nil }
func (r *fakeRenderer) DrawPoint(p math.Point, c math.Pixel) error       { return nil }
func (r *fakeRenderer) Present()                                         { r.b.record("present") }

func (r *fakeRenderer) Copy(t platform.Texture, src *math.Rect, dst math.Rect) error {
	if r.b.failOn["copy"] {
		return errFake
	}
	r.copies++
	return nil
}

func (r *fakeRenderer) LoadTexture(path string) (platform.Texture, error) {
	if r.b.failOn[path] {
		return nil, errFake
	}
	return &fakeTexture{b: r.b, w: 16, h: 8}, nil
}

func (r *fakeRenderer) RenderText(f platform.Font, text string, c math.Pixel) (platform.Texture, error) {
	if text == "" {
		return nil, errFake
	}
	return &fakeTexture{b: r.b, w: int32(len(text)) * 6, h: 12}, nil
}

func (r *fakeRenderer) Destroy() error {
	r.b.record("destroy renderer")
	return nil
}

type fakeTexture struct {
	b    *fakeBackend
	w, h int32
}

func (t *fakeTexture) Size() (int32, int32) { return t.w, t.h }

func (t *fakeTexture) Destroy() error {
	t.b.record("destroy texture")
	return nil
}

type fakeFont struct{ b *fakeBackend }

func (f *fakeFont) Close() { f.b.record("close font") }

type fakeSound struct {
	b      *fakeBackend
	volume int
}

func (s *fakeSound) Play(loops int) error {
	if s.b.failOn["play"] {
		return errFake
	}
	s.b.record("play sound %d", loops)
	return nil
}

func (s *fakeSound) SetVolume(volume int) { s.volume = volume }
func (s *fakeSound) Free()                { s.b.freed++ }

type fakeMusic struct{ b *fakeBackend }

func (m *fakeMusic) Play(loops int) error {
	m.b.record("play music %d", loops)
	return nil
}

func (m *fakeMusic) Free() { m.b.freed++ }
