package testbed

import (
	"fmt"

	"github.com/spaghettifunk/pixello/engine"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
)

// BasicGame needs no assets: it paints the cursor, a box that changes colour
// on clicks and a cross that moves with the arrow keys.
type BasicGame struct {
	*engine.Game
}

type basicState struct {
	cross      math.Point
	boxColour  math.Pixel
	clicks     int
	lastFPS    uint32
	fileEvents int
}

var palette = []math.Pixel{
	math.NewPixel(0xE04040FF),
	math.NewPixel(0x40E040FF),
	math.NewPixel(0x4040E0FF),
	math.NewPixel(0xE0E040FF),
}

func NewBasicGame(config *engine.ApplicationConfig) *BasicGame {
	if config == nil {
		config = engine.DefaultApplicationConfig()
		config.Name = "Pixello basic"
		config.StartWidth = 640
		config.StartHeight = 480
		config.PixelSize = 4
		config.Background = 0x202030FF
	}

	bg := &BasicGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &basicState{boxColour: palette[0]},
		},
	}
	bg.FnInitialize = bg.Initialize
	bg.FnUpdate = bg.Update
	bg.FnLog = bg.Log
	return bg
}

func (g *BasicGame) Initialize(e *engine.Engine) error {
	state := g.State.(*basicState)
	state.cross = math.Point{X: e.WidthInPixels() / 2, Y: e.HeightInPixels() / 2}

	e.Events().Register(core.EVENT_KIND_FILE_CHANGED, func(ev core.Event) bool {
		fc := ev.(core.FileChangedEvent)
		state.fileEvents++
		e.Log(fmt.Sprintf("asset %s: %s", fc.Op, fc.Path))
		return false
	})
	e.Events().Register(core.EVENT_KIND_KEY_DOWN, func(ev core.Event) bool {
		if kd := ev.(core.KeyDownEvent); kd.Key == core.KEY_R && !kd.Repeat {
			state.cross = math.Point{X: e.WidthInPixels() / 2, Y: e.HeightInPixels() / 2}
			return true
		}
		return false
	})

	e.Log("basic demo initialized")
	return nil
}

func (g *BasicGame) Update(e *engine.Engine) error {
	state := g.State.(*basicState)
	mouse := e.Mouse()

	if mouse.Left.Click {
		state.clicks++
		state.boxColour = palette[state.clicks%len(palette)]
	}
	if mouse.Left.DoubleClick {
		e.Log("double click")
	}

	w, h := e.WidthInPixels(), e.HeightInPixels()
	if e.IsKeyPressed(core.KEY_LEFT) {
		state.cross.X--
	}
	if e.IsKeyPressed(core.KEY_RIGHT) {
		state.cross.X++
	}
	if e.IsKeyPressed(core.KEY_UP) {
		state.cross.Y--
	}
	if e.IsKeyPressed(core.KEY_DOWN) {
		state.cross.Y++
	}
	state.cross.X = math.Clamp(state.cross.X, 0, w-1)
	state.cross.Y = math.Clamp(state.cross.Y, 0, h-1)

	if fps := e.FPS(); fps != state.lastFPS {
		state.lastFPS = fps
		e.Log(fmt.Sprintf("fps: %d", fps))
	}

	// Status panel in its own viewport.
	if err := e.SetViewport(math.NewRect(0, 0, w, 6)); err != nil {
		return err
	}
	bar := int32(state.clicks) % w
	if err := e.DrawRect(math.NewRect(0, 1, bar, 4), state.boxColour); err != nil {
		return err
	}
	if err := e.ResetViewport(); err != nil {
		return err
	}

	box := math.NewRect(w/4, h/4, w/2, h/2)
	if err := e.DrawRect(box, state.boxColour); err != nil {
		return err
	}
	if err := e.DrawRectOutline(box, math.White); err != nil {
		return err
	}

	c := state.cross
	if err := e.DrawLine(math.Point{X: c.X - 3, Y: c.Y}, math.Point{X: c.X + 3, Y: c.Y}, math.White); err != nil {
		return err
	}
	if err := e.DrawLine(math.Point{X: c.X, Y: c.Y - 3}, math.Point{X: c.X, Y: c.Y + 3}, math.White); err != nil {
		return err
	}

	return e.DrawPixel(mouse.X, mouse.Y, math.NewPixel(0xFF8000FF))
}

func (g *BasicGame) Log(msg string) {
	core.LogInfo("[basic] %s", msg)
}
