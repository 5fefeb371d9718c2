// Package headless is a software backend. It renders into an in-memory
// image, reads events from a script and never opens a window, which makes it
// suitable for tests and CI smoke runs.
package headless

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/pixello/engine/containers"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/platform"
)

// Failure injection steps accepted by FailOn besides the subsystem names.
const (
	StepWindow   = "window"
	StepRenderer = "renderer"
)

// EventQueueSize bounds the scripted events waiting to be polled.
const EventQueueSize = 256

var errInjected = errors.New("injected failure")

var _ platform.Backend = (*Backend)(nil)

type Backend struct {
	timer   core.Timer
	started platform.Subsystem
	failOn  map[string]bool
	queue   *containers.RingQueue[core.Event]
	held    map[core.Keycap]bool

	window   *window
	renderer *renderer

	music       *music
	musicState  MusicState
	musicVolume int
}

func New() *Backend {
	return &Backend{
		timer:       core.NewSystemTimer(),
		failOn:      make(map[string]bool),
		queue:       containers.NewRingQueue[core.Event](EventQueueSize),
		held:        make(map[core.Keycap]bool),
		musicVolume: platform.MaxVolume,
	}
}

// SetTimer replaces the wall clock, typically with a fake that advances on
// Delay so runs are deterministic.
func (b *Backend) SetTimer(t core.Timer) {
	b.timer = t
}

// FailOn makes the named step fail: a subsystem name ("video", "audio",
// "image", "font"), StepWindow or StepRenderer.
func (b *Backend) FailOn(step string) {
	b.failOn[step] = true
}

// PushEvent queues events for the next polls. Events that do not fit are
// dropped and reported.
func (b *Backend) PushEvent(evs ...core.Event) error {
	for i, ev := range evs {
		if err := b.queue.Enqueue(ev); err != nil {
			return fmt.Errorf("event %d of %d: %w", i+1, len(evs), err)
		}
	}
	return nil
}

// SetKey changes the live keyboard state.
func (b *Backend) SetKey(k core.Keycap, held bool) {
	b.held[k] = held
}

// Started reports whether subsystem s is up.
func (b *Backend) Started(s platform.Subsystem) bool {
	return b.started&s != 0
}

func (b *Backend) Startup(s platform.Subsystem) error {
	if b.failOn[s.String()] {
		return fmt.Errorf("%s: %w", s, errInjected)
	}
	if b.started&s != 0 {
		return fmt.Errorf("%s subsystem already started", s)
	}
	b.started |= s
	return nil
}

func (b *Backend) Teardown(s platform.Subsystem) error {
	if b.started&s == 0 {
		return fmt.Errorf("%s subsystem not started", s)
	}
	b.started &^= s
	if s == platform.SubsystemAudio {
		b.music = nil
		b.musicState = MusicHalted
	}
	return nil
}

func (b *Backend) Counter() uint64   { return b.timer.Counter() }
func (b *Backend) Frequency() uint64 { return b.timer.Frequency() }
func (b *Backend) Delay(ms uint32)   { b.timer.Delay(ms) }

type window struct {
	config    platform.WindowConfig
	destroyed bool
}

func (w *window) Destroy() error {
	if w.destroyed {
		return fmt.Errorf("window %q already destroyed", w.config.Title)
	}
	w.destroyed = true
	return nil
}

func (b *Backend) CreateWindow(config platform.WindowConfig) (platform.Window, error) {
	if b.failOn[StepWindow] {
		return nil, errInjected
	}
	if b.started&platform.SubsystemVideo == 0 {
		return nil, fmt.Errorf("video subsystem not started")
	}
	b.window = &window{config: config}
	return b.window, nil
}

func (b *Backend) CreateRenderer(w platform.Window, logicalWidth, logicalHeight int32) (platform.Renderer, error) {
	if b.failOn[StepRenderer] {
		return nil, errInjected
	}
	if _, ok := w.(*window); !ok {
		return nil, fmt.Errorf("window %T was not created by the headless backend", w)
	}
	if logicalWidth <= 0 || logicalHeight <= 0 {
		return nil, fmt.Errorf("invalid logical size %dx%d", logicalWidth, logicalHeight)
	}
	b.renderer = newRenderer(b, logicalWidth, logicalHeight)
	return b.renderer, nil
}

func (b *Backend) PollEvent() core.Event {
	ev, err := b.queue.Dequeue()
	if err != nil {
		return nil
	}
	return ev
}

func (b *Backend) KeyHeld(k core.Keycap) bool {
	return b.held[k]
}
