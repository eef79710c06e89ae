package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"colorgate/pkg/engine/world"
)

// Draw renders the board and agents (Ebiten interface)
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := r.game
	for y := 0; y < g.Grid.Height(); y++ {
		for x := 0; x < g.Grid.Width(); x++ {
			if clr, ok := r.tileColor(world.Position{X: x, Y: y}); ok {
				vector.DrawFilledRect(screen,
					float32(x*tileSize), float32(y*tileSize),
					tileSize, tileSize, clr, false)
			}
		}
	}

	for i, a := range g.Agents {
		cx := float32(a.Pos.X*tileSize) + tileSize/2
		cy := float32(a.Pos.Y*tileSize) + tileSize/2
		vector.DrawFilledCircle(screen, cx, cy, tileSize/2-2,
			color.RGBA{a.Color.R, a.Color.G, a.Color.B, 255}, true)
		if i == g.ActiveAgent {
			vector.DrawFilledCircle(screen, cx, cy, 5, colorActiveDot, true)
		}
	}
}

// tileColor picks the fill color for one board cell. The second return is
// false for cells left as plain background.
func (r *Renderer) tileColor(p world.Position) (color.Color, bool) {
	g := r.game
	switch g.Grid.KindAt(p) {
	case world.Obstacle:
		if block, ok := g.Grid.DoorBlock(); ok && p == block && g.DoorOpen {
			break // opened gap renders as floor
		}
		return colorWall, true
	case world.ColorSwitch:
		return colorColorSw, true
	case world.DoorSwitch:
		return colorDoorSw, true
	}

	if (p.X+p.Y)&1 == 0 {
		return colorFloorAlt, true
	}
	return nil, false
}
