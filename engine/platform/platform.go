package platform

import (
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
)

// MaxVolume is the top of the backend volume scale.
const MaxVolume = 128

// Subsystem is a bit set of backend subsystems.
type Subsystem uint8

const (
	SubsystemVideo Subsystem = 1 << iota
	SubsystemAudio
	SubsystemImage
	SubsystemFont
)

// StartupOrder is the fixed acquisition order. Teardown walks it backwards.
var StartupOrder = []Subsystem{SubsystemVideo, SubsystemAudio, SubsystemImage, SubsystemFont}

func (s Subsystem) String() string {
	switch s {
	case SubsystemVideo:
		return "video"
	case SubsystemAudio:
		return "audio"
	case SubsystemImage:
		return "image"
	case SubsystemFont:
		return "font"
	}
	return "unknown"
}

type WindowConfig struct {
	Title  string
	X, Y   int32
	Width  int32
	Height int32
}

// Backend is everything the engine needs from the native graphics and
// audio library. All calls happen on the loop goroutine.
type Backend interface {
	core.Timer

	Startup(s Subsystem) error
	Teardown(s Subsystem) error

	CreateWindow(config WindowConfig) (Window, error)
	// CreateRenderer creates an accelerated renderer drawing on a logical
	// grid of logicalWidth x logicalHeight pixels scaled to the window.
	CreateRenderer(w Window, logicalWidth, logicalHeight int32) (Renderer, error)

	// PollEvent never blocks. It returns nil once the queue is drained.
	PollEvent() core.Event
	// KeyHeld queries the live keyboard state.
	KeyHeld(k core.Keycap) bool

	OpenFont(path string, size int) (Font, error)
	LoadSound(path string) (Sound, error)
	LoadMusic(path string) (Music, error)

	PauseMusic()
	ResumeMusic()
	HaltMusic()
	// SetMusicVolume takes a value in [0, MaxVolume].
	SetMusicVolume(volume int)
}

type Window interface {
	Destroy() error
}

type Renderer interface {
	Clear(c math.Pixel) error
	// SetViewport confines drawing to r; nil restores the full target.
	SetViewport(r *math.Rect) error
	FillRect(r math.Rect, c math.Pixel) error
	DrawRect(r math.Rect, c math.Pixel) error
	DrawLine(from, to math.Point, c math.Pixel) error
	DrawPoint(p math.Point, c math.Pixel) error
	// Copy blits src (the whole texture when nil) of t into dst.
	Copy(t Texture, src *math.Rect, dst math.Rect) error
	Present()

	LoadTexture(path string) (Texture, error)
	RenderText(f Font, text string, c math.Pixel) (Texture, error)

	Destroy() error
}

// Native handles. Each kind has its own release call.

type Texture interface {
	Size() (width, height int32)
	Destroy() error
}

type Font interface {
	Close()
}

// TotalPlays converts an extra repeat count into the number of times a track
// is heard, keeping -1 for forever.
func TotalPlays(loops int) int {
	if loops < 0 {
		return -1
	}
	return loops + 1
}

type Sound interface {
	// Play takes the number of extra repeats; -1 repeats forever.
	Play(loops int) error
	// SetVolume takes a value in [0, MaxVolume].
	SetVolume(volume int)
	Free()
}

type Music interface {
	// Play takes the number of extra repeats; -1 repeats forever.
	Play(loops int) error
	Free()
}
