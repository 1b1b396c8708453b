package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/wask-game/wask/config"
)

// InputData stores the current and previous frame's pressed state for all
// actions. Edges are computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Push starts a new frame with the given held state.
func (i *InputData) Push(held [cfg.ActionCount]bool) {
	i.Previous = i.Current
	i.Current = held
}

func (i *InputData) Held(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
