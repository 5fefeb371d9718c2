package headless_test

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/pixello/engine"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/platform/headless"
)

// stepTimer only moves when the engine sleeps.
type stepTimer struct{ now uint64 }

func (t *stepTimer) Counter() uint64   { return t.now }
func (t *stepTimer) Frequency() uint64 { return 1000 }
func (t *stepTimer) Delay(ms uint32)   { t.now += uint64(ms) }

func TestEngineOnHeadless(t *testing.T) {
	config := engine.DefaultApplicationConfig()
	config.StartWidth = 64
	config.StartHeight = 48
	config.PixelSize = 4
	config.Background = 0x000080FF

	var clicked core.MouseState
	g := &engine.Game{
		ApplicationConfig: config,
		FnInitialize:      func(e *engine.Engine) error { return nil },
		FnUpdate: func(e *engine.Engine) error {
			m := e.Mouse()
			if m.Left.Click {
				clicked = m
			}
			return e.DrawPixel(m.X, m.Y, math.White)
		},
	}

	b := headless.New()
	b.SetTimer(&stepTimer{})
	err := b.PushEvent(
		core.MouseMotionEvent{X: 3, Y: 2, DX: 3, DY: 2},
		core.MouseButtonEvent{Button: core.BUTTON_LEFT, Down: true, Clicks: 1, X: 3, Y: 2},
		core.QuitEvent{},
	)
	if err != nil {
		t.Fatalf("push: %s", err)
	}

	e, err := engine.New(g, b)
	if err != nil {
		t.Fatalf("new: %s", err)
	}
	if !e.Run() {
		t.Fatalf("run failed: %v", e.Err())
	}

	if !clicked.Left.Click || clicked.X != 3 {
		t.Fatalf("click not seen by the update hook: %+v", clicked)
	}
	f := b.Frame()
	if f.Bounds().Dx() != 16 || f.Bounds().Dy() != 12 {
		t.Fatalf("expected a 16x12 logical frame, got %v", f.Bounds())
	}
	if c := f.RGBAAt(3, 2); c.R != 255 || c.G != 255 {
		t.Fatalf("expected the cursor pixel, got %+v", c)
	}
	if c := f.RGBAAt(0, 0); c.B != 0x80 || c.R != 0 {
		t.Fatalf("expected the background, got %+v", c)
	}
	if b.Presents() != 1 {
		t.Fatalf("expected one presented frame, got %d", b.Presents())
	}
}

func TestEngineInitFailureOnHeadless(t *testing.T) {
	g := &engine.Game{
		ApplicationConfig: engine.DefaultApplicationConfig(),
		FnInitialize:      func(e *engine.Engine) error { return nil },
		FnUpdate:          func(e *engine.Engine) error { return nil },
	}
	b := headless.New()
	b.SetTimer(&stepTimer{})
	b.FailOn(headless.StepRenderer)

	e, err := engine.New(g, b)
	if err != nil {
		t.Fatalf("new: %s", err)
	}
	if e.Run() {
		t.Fatalf("run should fail")
	}
	var initErr *core.InitError
	if !errors.As(e.Err(), &initErr) || initErr.Step != "renderer" {
		t.Fatalf("expected renderer InitError, got %v", e.Err())
	}
	if b.Started(0xFF) {
		t.Fatalf("subsystems left running after a failed init")
	}
}
