// Package tui renders the puzzle board to the terminal with ANSI colors.
package tui

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"colorgate/pkg/engine/terminal"
	"colorgate/pkg/engine/world"
	"colorgate/pkg/game/renderer"
	"colorgate/pkg/game/state"
)

// TUIRenderer draws the board as a character grid, one cell per two columns
// so tiles come out roughly square.
type TUIRenderer struct{}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes colors for the TUI renderer
func (t *TUIRenderer) Init() {
	renderer.InitColors()
}

// clearScreen clears the terminal and homes the cursor
func (t *TUIRenderer) clearScreen() {
	fmt.Print("\033[2J\033[H")
}

// RenderFrame renders the board, the agent roster and the message log.
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.clearScreen()

	width, _ := terminal.GetSize()
	if width < g.Grid.Width()*2+2 {
		fmt.Println(gotext.Get("Terminal too narrow for the board."))
		return
	}

	for y := 0; y < g.Grid.Height(); y++ {
		for x := 0; x < g.Grid.Width(); x++ {
			fmt.Print(t.cellGlyph(g, world.Position{X: x, Y: y}), " ")
		}
		fmt.Println()
	}
	fmt.Println()

	for i, a := range g.Agents {
		marker := " "
		if i == g.ActiveAgent {
			marker = renderer.ColorAction.Sprintf(">")
		}
		done := renderer.ColorSubtle.Sprintf("…")
		if g.HasTargetColor(i) {
			done = renderer.ColorColorSw.Sprintf("✓")
		}
		fmt.Printf("%s agent %d at (%d,%d) color %s target (%d,%d)\n",
			marker, i, a.Pos.X, a.Pos.Y, done, g.TargetPos[i].X, g.TargetPos[i].Y)
	}

	mode := gotext.Get("manual")
	if g.Auto {
		mode = gotext.Get("auto")
	}
	fmt.Println(renderer.FormatString("mode: ACTION{%s}   ACTION{arrows} move  ACTION{tab} agent  ACTION{a} auto  ACTION{q} quit", mode))

	for _, msg := range g.Messages {
		fmt.Println(msg)
	}
}

// cellGlyph picks the glyph and color for one board cell.
func (t *TUIRenderer) cellGlyph(g *state.Game, p world.Position) string {
	for i, a := range g.Agents {
		if a.Pos == p {
			glyph := renderer.AgentColor(a.Color.R, a.Color.G, a.Color.B).Sprint(renderer.IconAgent)
			if i == g.ActiveAgent {
				return color.Style{color.OpBold}.Sprintf("%s", glyph)
			}
			return glyph
		}
	}

	switch g.Grid.KindAt(p) {
	case world.Obstacle:
		if block, ok := g.Grid.DoorBlock(); ok && p == block && g.DoorOpen {
			return renderer.ColorSubtle.Sprintf(renderer.IconDoorGap)
		}
		return renderer.ColorTile.Sprintf(renderer.IconWall)
	case world.ColorSwitch:
		return renderer.ColorColorSw.Sprintf(renderer.IconColorSw)
	case world.DoorSwitch:
		return renderer.ColorDoorSw.Sprintf(renderer.IconDoorSw)
	default:
		if (p.X+p.Y)&1 == 1 {
			return renderer.IconFloor
		}
		return renderer.ColorSubtle.Sprintf(renderer.IconFloorAlt)
	}
}

// ShowMessage prints a message below the board
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}
