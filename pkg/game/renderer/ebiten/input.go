package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	engineinput "colorgate/pkg/engine/input"
	"colorgate/pkg/game/gameplay"
)

// keyBindings maps Ebiten keys to raw input codes, which then flow through
// the shared engine binding layer.
var keyBindings = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyTab:        "tab",
	ebiten.KeyA:          "a",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// checkInput returns the intent for the key pressed this frame, if any.
func (r *Renderer) checkInput() engineinput.Intent {
	for key, code := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code}
			return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Update handles input and game logic (Ebiten interface)
func (r *Renderer) Update() error {
	g := r.game

	switch intent := r.checkInput(); intent.Action {
	case engineinput.ActionQuit:
		return ebiten.Termination
	case engineinput.ActionToggleAuto:
		g.Auto = !g.Auto
		if g.Auto {
			r.ctrl.Initialize(g)
		}
	default:
		if !g.Auto {
			gameplay.ProcessIntent(g, intent)
		}
	}

	if g.Auto && !r.finished {
		r.tickCounter++
		if r.tickCounter >= autoTickFrames {
			r.tickCounter = 0
			r.ctrl.Step(g)
		}
	}

	gameplay.ApplySwitches(g)

	if !r.finished && gameplay.Complete(g) {
		r.finished = true
		g.AddMessage(gotext.Get("COMPLETED. YOU WIN !!!"))
	}

	return nil
}
