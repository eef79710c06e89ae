package controller

import (
	"math/rand"

	"colorgate/pkg/engine/world"
	"colorgate/pkg/game/gameplay"
	"colorgate/pkg/game/state"
)

// RandomController picks a random agent and a random direction on every
// tick. It never plans; it exists as the demonstration baseline and will
// solve the puzzle only by accident.
type RandomController struct {
	rng *rand.Rand
}

// NewRandomController returns a random controller seeded deterministically.
func NewRandomController(seed int64) *RandomController {
	return &RandomController{rng: rand.New(rand.NewSource(seed))}
}

// Initialize does nothing; there is nothing to plan.
func (c *RandomController) Initialize(g *state.Game) {}

// Step moves a random agent in a random direction. Illegal moves are simply
// rejected by the move path.
func (c *RandomController) Step(g *state.Game) {
	agent := c.rng.Intn(len(g.Agents))
	dirs := world.AllDirections()
	dx, dy := dirs[c.rng.Intn(len(dirs))].Delta()

	g.ActiveAgent = agent
	gameplay.ApplyMove(g, agent, dx, dy)
}
