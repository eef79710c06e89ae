// Package ebiten provides the Ebiten-based windowed renderer. It owns the
// game loop: Update applies input and the automatic controller, Draw paints
// the board and agents.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"colorgate/pkg/game/controller"
	"colorgate/pkg/game/state"
)

const (
	tileSize = 80

	// Automatic mode advances one move every autoTickFrames frames; at the
	// default 60 TPS that is one move per 100ms, like the original cadence.
	autoTickFrames = 6
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorFloorAlt   = color.RGBA{40, 40, 40, 255}
	colorWall       = color.RGBA{128, 128, 128, 255}
	colorColorSw    = color.RGBA{128, 128, 0, 255}
	colorDoorSw     = color.RGBA{128, 0, 128, 255}
	colorActiveDot  = color.RGBA{0, 0, 0, 255}
)

// Renderer is the Ebiten game: session state, the automatic controller and
// loop bookkeeping.
type Renderer struct {
	game *state.Game
	ctrl controller.Controller

	tickCounter int
	finished    bool
}

// New creates an Ebiten renderer for the given session and controller.
func New(g *state.Game, ctrl controller.Controller) *Renderer {
	return &Renderer{game: g, ctrl: ctrl}
}

// Init sets up the window
func (r *Renderer) Init() {
	ebiten.SetWindowSize(r.game.Grid.Width()*tileSize, r.game.Grid.Height()*tileSize)
	ebiten.SetWindowTitle(gotext.Get("Color Gate"))
}

// ShowMessage forwards a message to the session log
func (r *Renderer) ShowMessage(msg string) {
	r.game.AddMessage(msg)
}

// RenderFrame is a no-op: Ebiten renders through Draw on its own loop.
func (r *Renderer) RenderFrame(g *state.Game) {}

// Layout returns the game's logical screen size
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.game.Grid.Width() * tileSize, r.game.Grid.Height() * tileSize
}

// Run starts the Ebiten game loop and blocks until the window closes.
func (r *Renderer) Run() error {
	r.Init()
	if err := ebiten.RunGame(r); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
