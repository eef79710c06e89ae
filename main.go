package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	engineinput "colorgate/pkg/engine/input"
	"colorgate/pkg/game/controller"
	"colorgate/pkg/game/gameplay"
	"colorgate/pkg/game/planner"
	"colorgate/pkg/game/renderer"
	ebitenrenderer "colorgate/pkg/game/renderer/ebiten"
	"colorgate/pkg/game/renderer/tui"
	"colorgate/pkg/game/setup"
	"colorgate/pkg/game/state"
)

func initLocale() {
	gotext.Configure("locales", "en_US", "default")
}

// buildController wires the automatic-mode controller selected on the
// command line.
func buildController(name, algorithm string, seed int64) (controller.Controller, error) {
	switch name {
	case "plan":
		strategy, err := planner.New(algorithm)
		if err != nil {
			return nil, err
		}
		return controller.NewPlanController(strategy), nil
	case "random":
		return controller.NewRandomController(seed), nil
	default:
		return nil, fmt.Errorf("unknown controller %q (want plan or random)", name)
	}
}

// runTUI runs the terminal game loop: render, read one key, apply, repeat.
// In automatic mode it replays the plan at one move per 100ms instead of
// blocking on input.
func runTUI(g *state.Game, ctrl controller.Controller) {
	renderer.SetRenderer(tui.New())
	renderer.Init()

	for {
		gameplay.ApplySwitches(g)
		renderer.RenderFrame(g)

		if gameplay.Complete(g) {
			renderer.ShowMessage(gotext.Get("COMPLETED. YOU WIN !!!"))
			return
		}

		if g.Auto {
			ctrl.Step(g)
			if pc, ok := ctrl.(*controller.PlanController); ok && pc.Remaining() == 0 {
				// Plan exhausted; hand control back to the keyboard.
				g.Auto = false
			}
			time.Sleep(100 * time.Millisecond)
			continue
		}

		switch intent := engineinput.ReadIntent(); intent.Action {
		case engineinput.ActionQuit:
			return
		case engineinput.ActionToggleAuto:
			g.Auto = true
			ctrl.Initialize(g)
		default:
			gameplay.ProcessIntent(g, intent)
		}
	}
}

func main() {
	rendererName := flag.String("renderer", "ebiten", "renderer backend: ebiten or tui")
	algorithm := flag.String("algorithm", "bfs", "planning strategy: bfs, dfs or astar")
	controllerName := flag.String("controller", "plan", "automatic controller: plan or random")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random controller seed")
	auto := flag.Bool("auto", false, "start in automatic mode")
	flag.Parse()

	initLocale()

	g := setup.NewGame()

	ctrl, err := buildController(*controllerName, *algorithm, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *auto {
		g.Auto = true
		ctrl.Initialize(g)
	}

	switch *rendererName {
	case "ebiten":
		if err := ebitenrenderer.New(g, ctrl).Run(); err != nil {
			log.Fatalf("renderer error: %v", err)
		}
	case "tui":
		runTUI(g, ctrl)
	default:
		fmt.Fprintf(os.Stderr, "unknown renderer %q (want ebiten or tui)\n", *rendererName)
		os.Exit(1)
	}
}
