package engine

// Game is what an application plugs into the engine. FnInitialize and
// FnUpdate are required. State is free for the application to use.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnLog             Log
	FnShutdown        Shutdown
}

// Initialize runs once, after the window and renderer exist.
type Initialize func(e *Engine) error

// Update runs once per frame between clear and present.
type Update func(e *Engine) error

// Log receives every message the engine logs on behalf of the game.
type Log func(msg string)

// Shutdown runs at the start of teardown, while the renderer is still alive,
// so cached textures can be released before it goes away.
type Shutdown func(e *Engine)
