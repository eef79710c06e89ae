// Package renderer defines the rendering boundary. The planning core never
// touches anything in here; backends only read the session state.
package renderer

import (
	"colorgate/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Implementations include the TUI (terminal) and the Ebiten window.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// RenderFrame renders a complete frame: board, agents, status, messages
	RenderFrame(g *state.Game)

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// ShowMessage displays a message to the user
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
