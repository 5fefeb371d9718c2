package testbed

import (
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/pixello/engine"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
	"github.com/spaghettifunk/pixello/engine/resources"
)

const (
	worldWidth  = 20
	worldHeight = 20

	tileWidth  = 40
	tileHeight = 20
)

// Tile position (0,0) is drawn at, in tile steps.
var isoOrigin = math.Point{X: 5, Y: 1}

var textColour = math.NewPixel(0x000000FF)

type tileKind int

const (
	tileInvisible tileKind = iota
	tileVisible
	tileTree
	tileSpookyTree
	tileBeach
	tileWater
	tileKindCount
)

// IsometricGame draws a 20x20 isometric world from a sprite sheet and shows
// which tile the mouse is over.
type IsometricGame struct {
	*engine.Game
}

type isometricState struct {
	sprites resources.Texture
	font    resources.Font
	world   [worldHeight][worldWidth]tileKind
}

func NewIsometricGame(config *engine.ApplicationConfig) *IsometricGame {
	if config == nil {
		config = engine.DefaultApplicationConfig()
		config.Name = "Pixello isometric"
		config.StartWidth = 800
		config.StartHeight = 400
		config.AssetsDir = "assets"
	}

	ig := &IsometricGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &isometricState{},
		},
	}
	ig.FnInitialize = ig.Initialize
	ig.FnUpdate = ig.Update
	ig.FnShutdown = ig.Shutdown
	return ig
}

func (g *IsometricGame) asset(name string) string {
	return filepath.Join(g.ApplicationConfig.AssetsDir, name)
}

func (g *IsometricGame) Initialize(e *engine.Engine) error {
	state := g.State.(*isometricState)

	sprites, err := e.LoadImage(g.asset("isometric_demo.png"))
	if err != nil {
		return err
	}
	state.sprites = sprites

	font, err := e.LoadFont(g.asset(filepath.Join("font", "GoMono.ttf")), 10)
	if err != nil {
		return err
	}
	state.font = font

	// One kind per row.
	for y := range state.world {
		for x := range state.world[y] {
			state.world[y][x] = tileKind(y) % tileKindCount
		}
	}

	e.Log("isometric demo initialized")
	return nil
}

func toScreen(p math.Point) math.Point {
	return math.Point{
		X: isoOrigin.X*tileWidth + (p.X-p.Y)*(tileWidth/2),
		Y: isoOrigin.Y*tileHeight + (p.X+p.Y)*(tileHeight/2),
	}
}

// screenToIsometric maps a screen position to the tile under it.
func screenToIsometric(x, y int32) math.Point {
	tx := x - 2*y + tileWidth/2
	ty := x + 2*y - tileHeight/2
	return math.Point{X: tx / tileWidth, Y: ty / tileHeight}
}

// spriteFor returns where a tile is drawn and which part of the sheet it uses.
// Trees are two tiles tall and drawn one tile higher.
func spriteFor(kind tileKind, at math.Point) (dst, src math.Rect) {
	dst = math.NewRect(at.X, at.Y, tileWidth, tileHeight)
	switch kind {
	case tileVisible:
		src = math.NewRect(2*tileWidth, 0, tileWidth, tileHeight)
	case tileTree:
		dst = math.NewRect(at.X, at.Y-tileHeight, tileWidth, 2*tileHeight)
		src = math.NewRect(0, tileHeight, tileWidth, 2*tileHeight)
	case tileSpookyTree:
		dst = math.NewRect(at.X, at.Y-tileHeight, tileWidth, 2*tileHeight)
		src = math.NewRect(tileWidth, tileHeight, tileWidth, 2*tileHeight)
	case tileBeach:
		src = math.NewRect(2*tileWidth, 2*tileHeight, tileWidth, tileHeight)
	case tileWater:
		src = math.NewRect(3*tileWidth, 2*tileHeight, tileWidth, tileHeight)
	default:
		src = math.NewRect(tileWidth, 0, tileWidth, tileHeight)
	}
	return dst, src
}

func (g *IsometricGame) Update(e *engine.Engine) error {
	state := g.State.(*isometricState)
	mouse := e.Mouse()

	if mouse.Left.Click {
		e.Log("Click!")
	}
	if e.IsKeyPressed(core.KEY_ESCAPE) {
		e.Stop()
	}

	if err := e.DrawRect(math.NewRect(0, 0, e.WidthInPixels(), e.HeightInPixels()), math.White); err != nil {
		return err
	}

	for y := int32(0); y < worldHeight; y++ {
		for x := int32(0); x < worldWidth; x++ {
			dst, src := spriteFor(state.world[y][x], toScreen(math.Point{X: x, Y: y}))
			if err := e.DrawTextureCrop(state.sprites, dst, src); err != nil {
				return err
			}
		}
	}

	selected := screenToIsometric(mouse.X, mouse.Y)
	lines := []string{
		fmt.Sprintf("Mouse: %d, %d", mouse.X, mouse.Y),
		fmt.Sprintf("Cell: %d, %d", mouse.X/tileWidth, mouse.Y/tileHeight),
		fmt.Sprintf("Tile: %d, %d", selected.X, selected.Y),
	}
	for i, line := range lines {
		if err := g.drawText(e, line, 5, 5+int32(i)*15); err != nil {
			return err
		}
	}
	return nil
}

// drawText renders a throwaway texture; text changes every frame so nothing
// is cached.
func (g *IsometricGame) drawText(e *engine.Engine, text string, x, y int32) error {
	state := g.State.(*isometricState)
	t, err := e.CreateText(text, textColour, state.font)
	if err != nil {
		return err
	}
	defer t.Release()
	return e.DrawTexture(t, x, y)
}

func (g *IsometricGame) Shutdown(e *engine.Engine) {
	state := g.State.(*isometricState)
	state.sprites.Release()
	state.font.Release()
}
