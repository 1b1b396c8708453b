package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/leveldata"
)

type BossData struct {
	Spec     leveldata.BossSpec // scaled tuning for this fight
	HP       int
	Phase    cfg.BossPhase
	Deadline time.Duration // meaning depends on Phase

	// HP bar easing; BarHP trails HP for display only.
	Bar   *gween.Tween
	BarHP float32
}

var Boss = donburi.NewComponentType[BossData]()

// HazardData is a ground shockwave growing away from the boss's landing point.
type HazardData struct {
	Direction float64
	Speed     float64
	Life      int
}

var Hazard = donburi.NewComponentType[HazardData]()
