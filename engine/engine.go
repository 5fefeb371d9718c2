package engine

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/pixello/engine/assets"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/platform"
	"github.com/spaghettifunk/pixello/engine/resources"
)

type Stage uint8

const (
	// Engine is constructed but Run was not called yet
	EngineStageUninitialized Stage = iota
	// Engine is acquiring backend resources and running the game's init hook
	EngineStageInitializing
	// Engine is running the frame loop
	EngineStageRunning
	// Engine left the loop cleanly
	EngineStageStopped
	// Engine gave up after an error
	EngineStageFailed
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageRunning:
		return "running"
	case EngineStageStopped:
		return "stopped"
	case EngineStageFailed:
		return "failed"
	}
	return "unknown"
}

// Engine owns the window, the renderer and the optional default font, and
// drives the frame loop. It is not safe for concurrent use: every method must
// be called from the goroutine running Run, which for the native backend is
// the main OS thread.
type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	config        ApplicationConfig
	settings      settings
	backend       platform.Backend
	window        platform.Window
	renderer      platform.Renderer
	defaultFont   resources.Font
	subsystems    platform.Subsystem
	input         *core.InputState
	pacer         *core.FramePacer
	events        *core.EventBus
	tracker       *resources.Tracker
	watcher       *assets.Watcher
	stopRequested bool
	initCalled    bool
	isShutdown    bool
	lastErr       error
	frameCount    uint64
}

func New(g *Game, b platform.Backend) (*Engine, error) {
	if g == nil {
		return nil, &core.InputError{Param: "game", Value: nil, Reason: "must not be nil"}
	}
	if g.FnInitialize == nil || g.FnUpdate == nil {
		return nil, &core.InputError{Param: "game hooks", Value: nil, Reason: "FnInitialize and FnUpdate are required"}
	}
	if b == nil {
		return nil, &core.InputError{Param: "backend", Value: nil, Reason: "must not be nil"}
	}
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}

	// Later edits to g.ApplicationConfig do not reach the engine.
	config := *g.ApplicationConfig
	s, err := config.settings()
	if err != nil {
		core.LogError("%s", err)
		return nil, err
	}
	core.SetLogLevel(s.logLevel)

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       config,
		settings:     s,
		backend:      b,
		input:        core.NewInputState(),
		events:       core.NewEventBus(),
		tracker:      resources.NewTracker(),
	}, nil
}

// Run initializes the backend, runs the game until it stops and tears
// everything down. It returns false when initialization or a frame failed;
// the error is logged and available through Err.
func (e *Engine) Run() (ok bool) {
	if e.currentStage != EngineStageUninitialized || e.isShutdown {
		e.lastErr = core.ErrAlreadyStarted
		e.logError(e.lastErr.Error())
		return false
	}
	defer e.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			e.fail(&core.RuntimeError{Op: "run", Err: fmt.Errorf("panic: %v", r)})
			ok = false
		}
	}()

	if err := e.initialize(); err != nil {
		e.fail(err)
		return false
	}
	if err := e.loop(); err != nil {
		e.fail(err)
		return false
	}

	e.currentStage = EngineStageStopped
	core.LogInfo("engine stopped after %d frames", e.frameCount)
	return true
}

func (e *Engine) initialize() error {
	e.currentStage = EngineStageInitializing

	wanted := platform.SubsystemVideo | platform.SubsystemImage | platform.SubsystemFont
	if e.config.Audio {
		wanted |= platform.SubsystemAudio
	}
	for _, s := range platform.StartupOrder {
		if wanted&s == 0 {
			continue
		}
		if err := e.backend.Startup(s); err != nil {
			return &core.InitError{Step: s.String(), Err: err}
		}
		e.subsystems |= s
		core.LogDebug("%s subsystem initialized.", s)
	}

	window, err := e.backend.CreateWindow(platform.WindowConfig{
		Title:  e.config.Name,
		X:      e.config.StartPosX,
		Y:      e.config.StartPosY,
		Width:  e.config.StartWidth,
		Height: e.config.StartHeight,
	})
	if err == nil && window == nil {
		err = core.ErrNoHandle
	}
	if err != nil {
		return &core.InitError{Step: "window", Err: err}
	}
	e.window = window

	renderer, err := e.backend.CreateRenderer(window, e.settings.widthInPixels, e.settings.heightInPixels)
	if err == nil && renderer == nil {
		err = core.ErrNoHandle
	}
	if err != nil {
		return &core.InitError{Step: "renderer", Err: err}
	}
	e.renderer = renderer

	if e.config.FontPath != "" {
		font, err := e.LoadFont(e.config.FontPath, e.config.FontSize)
		if err != nil {
			return &core.InitError{Step: "font", Err: err}
		}
		e.defaultFont = font
	}

	if e.config.WatchAssets && e.config.AssetsDir != "" {
		w, err := assets.NewWatcher(e.config.AssetsDir)
		if err != nil {
			core.LogWarn("asset watcher disabled: %s", err)
		} else {
			e.watcher = w
		}
	}

	e.pacer = core.NewFramePacer(e.backend, e.settings.targetFPS)
	core.LogInfo("%s initialized: %dx%d logical pixels at %.0f fps", e.config.Name,
		e.settings.widthInPixels, e.settings.heightInPixels, e.settings.targetFPS)

	e.initCalled = true
	return e.gameInstance.FnInitialize(e)
}

func (e *Engine) loop() error {
	e.currentStage = EngineStageRunning
	e.pacer.Start()

	for !e.stopRequested {
		e.pacer.BeginFrame()
		e.pollEvents()

		if err := e.renderer.Clear(e.settings.background); err != nil {
			return &core.RuntimeError{Op: "clear", Err: err}
		}
		if err := e.renderer.SetViewport(nil); err != nil {
			return &core.RuntimeError{Op: "reset viewport", Err: err}
		}

		if err := e.gameInstance.FnUpdate(e); err != nil {
			return err
		}

		// NOTE: pulses are cleared whether or not the game looked at them.
		e.input.EndFrame()

		e.renderer.Present()
		e.pacer.EndFrame()
		e.frameCount++
	}
	return nil
}

// pollEvents drains the backend queue into the input snapshot, then hands
// each event to the listeners registered on the event bus.
func (e *Engine) pollEvents() {
	e.input.BeginFrame()

	for ev := e.backend.PollEvent(); ev != nil; ev = e.backend.PollEvent() {
		switch t := ev.(type) {
		case core.QuitEvent:
			core.LogInfo("quit event received, shutting down.")
			e.stopRequested = true
		case core.KeyDownEvent:
			if e.settings.exitKey != core.KEY_UNKNOWN && t.Key == e.settings.exitKey {
				core.LogInfo("exit key '%s' pressed, shutting down.", t.Key)
				e.stopRequested = true
			}
		}
		e.input.Process(ev)
		e.events.Fire(ev)
	}

	if e.watcher != nil {
		e.watcher.Drain(func(ev core.FileChangedEvent) {
			core.LogDebug("asset %s: %s", ev.Op, ev.Path)
			e.events.Fire(ev)
		})
	}
}

// Stop asks the loop to exit. The current frame, including present, still
// completes; the loop checks the request at the next iteration.
func (e *Engine) Stop() {
	e.stopRequested = true
}

// Shutdown releases the default font, the renderer, the window and the
// backend subsystems in that order. It is idempotent and never fails: errors
// are logged and the remaining resources are still released.
func (e *Engine) Shutdown() {
	if e.isShutdown {
		return
	}
	e.isShutdown = true

	if e.initCalled && e.gameInstance.FnShutdown != nil {
		e.callShutdownHook()
	}

	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			core.LogWarn("failed to close asset watcher: %s", err)
		}
		e.watcher = nil
	}

	e.defaultFont.Release()
	e.defaultFont = resources.Font{}

	if e.renderer != nil {
		if err := e.renderer.Destroy(); err != nil {
			core.LogError("failed to destroy renderer: %s", err)
		}
		e.renderer = nil
	}
	if e.window != nil {
		if err := e.window.Destroy(); err != nil {
			core.LogError("failed to destroy window: %s", err)
		}
		e.window = nil
	}

	for i := len(platform.StartupOrder) - 1; i >= 0; i-- {
		s := platform.StartupOrder[i]
		if e.subsystems&s == 0 {
			continue
		}
		if err := e.backend.Teardown(s); err != nil {
			core.LogError("failed to shut down %s subsystem: %s", s, err)
		}
		e.subsystems &^= s
	}

	if live := e.tracker.Live(); live > 0 {
		core.LogWarn("%d resources were not released before shutdown: %v", live, e.tracker.Sources())
	}
}

func (e *Engine) callShutdownHook() {
	defer func() {
		if r := recover(); r != nil {
			core.LogError("game shutdown hook panicked: %v", r)
		}
	}()
	e.gameInstance.FnShutdown(e)
}

func (e *Engine) fail(err error) {
	e.lastErr = err
	e.currentStage = EngineStageFailed
	e.logError(fmt.Sprintf("engine stopped on error: %s", err))
}

// Log forwards a message to the game's log hook.
func (e *Engine) Log(msg string) {
	if e.gameInstance.FnLog != nil {
		e.gameInstance.FnLog(msg)
		return
	}
	core.LogInfo("%s", msg)
}

func (e *Engine) logError(msg string) {
	if e.gameInstance.FnLog != nil {
		e.gameInstance.FnLog(msg)
		return
	}
	core.LogError("%s", msg)
}

// ready reports whether drawing and loading calls are allowed.
func (e *Engine) ready() error {
	if e.isShutdown || e.renderer == nil {
		return core.ErrNotInitialized
	}
	return nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Failed() bool {
	return e.currentStage == EngineStageFailed
}

// Err returns the error that stopped the engine, if any.
func (e *Engine) Err() error {
	return e.lastErr
}

func (e *Engine) Game() *Game {
	return e.gameInstance
}

func (e *Engine) Config() ApplicationConfig {
	return e.config
}

func (e *Engine) Events() *core.EventBus {
	return e.events
}

// Mouse returns this frame's mouse snapshot.
func (e *Engine) Mouse() core.MouseState {
	return e.input.Mouse()
}

// IsKeyPressed queries the live keyboard state.
func (e *Engine) IsKeyPressed(k core.Keycap) bool {
	if e.ready() != nil {
		return false
	}
	return e.backend.KeyHeld(k)
}

// FPS is the number of frames completed during the previous second.
func (e *Engine) FPS() uint32 {
	if e.pacer == nil {
		return 0
	}
	return e.pacer.FPS()
}

// DeltaTicks is the raw timer delta between the last two frame starts. Use
// TickFrequency to convert it.
func (e *Engine) DeltaTicks() uint64 {
	if e.pacer == nil {
		return 0
	}
	return e.pacer.DeltaTicks()
}

func (e *Engine) DeltaSeconds() float64 {
	if e.pacer == nil {
		return 0
	}
	return e.pacer.DeltaSeconds()
}

func (e *Engine) TickFrequency() uint64 {
	return e.backend.Frequency()
}

func (e *Engine) FrameCount() uint64 {
	return e.frameCount
}

func (e *Engine) PixelSize() int32 {
	return e.settings.pixelSize
}

// WidthInPixels is the logical width: window width divided by pixel size.
func (e *Engine) WidthInPixels() int32 {
	return e.settings.widthInPixels
}

func (e *Engine) HeightInPixels() int32 {
	return e.settings.heightInPixels
}

// DefaultFont is the font opened from the config, or the zero Font.
func (e *Engine) DefaultFont() resources.Font {
	return e.defaultFont
}

// LiveResources counts the native handles loaded through this engine that
// are not released yet.
func (e *Engine) LiveResources() int {
	return e.tracker.Live()
}

func runtimeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *core.RuntimeError
	if errors.As(err, &re) {
		return err
	}
	return &core.RuntimeError{Op: op, Err: err}
}
