// Package controls maps keyboard and gamepad state onto game actions.
package controls

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
)

// Binding represents the keys and buttons that trigger an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the left stick threshold for directional input.
const AnalogDeadzone = 0.25

// Bindings is the global input mapping.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	cfg.ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	cfg.ActionAttack: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionConfirm: {
		Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		// Start / Select
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
			ebiten.StandardGamepadButtonCenterLeft,
		},
	},
	cfg.ActionBack: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
	cfg.ActionMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll reads the held state of every action this frame.
func Poll() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[actionID] = true
				}
			}
		}
	}

	// Merge the left stick into movement
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -AnalogDeadzone {
			held[cfg.ActionMoveLeft] = true
		}
		if horizontal > AnalogDeadzone {
			held[cfg.ActionMoveRight] = true
		}
		if vertical < -AnalogDeadzone {
			held[cfg.ActionJump] = true
		}
	}
	return held
}

// Update polls input and pushes it into the world's input singleton.
// Must run before systems.Step.
func Update(w donburi.World) {
	entry, ok := components.Input.First(w)
	if !ok {
		return
	}
	components.Input.Get(entry).Push(Poll())
}
