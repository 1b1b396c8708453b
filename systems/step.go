package systems

import (
	"github.com/yohamta/donburi"

	cfg "github.com/wask-game/wask/config"
)

// playSteps run in order once per tick while playing.
var playSteps = []func(donburi.World){
	UpdatePlayerMovement,
	UpdatePlayerAttack,
	UpdatePlayerPhysics,
	UpdateEnemies,
	UpdateProjectiles,
	UpdateCollectibles,
	UpdateLevelExit,
}

// Step advances the simulation by one tick. The clock runs during play and
// questions; everything else only runs during play. A step that reloads the
// level or leaves play ends the tick early.
func Step(w donburi.World) {
	s := SessionOf(w)
	switch s.State {
	case cfg.StatePlay, cfg.StateQuestion:
		UpdateClock(w)
	}
	if s.State != cfg.StatePlay {
		return
	}

	level := LevelOf(w)
	gen := level.Generation
	for _, step := range playSteps {
		step(w)
		if level.Generation != gen || s.State != cfg.StatePlay {
			break
		}
	}
	checkLifeLoss(w)
}

// UpdateLevelExit runs the boss fight on boss levels and the portal
// everywhere else.
func UpdateLevelExit(w donburi.World) {
	if !isBossLevel(w) {
		UpdatePortal(w)
		return
	}

	gen := LevelOf(w).Generation
	UpdateBoss(w)
	if LevelOf(w).Generation != gen || SessionOf(w).State != cfg.StatePlay {
		return
	}
	UpdateHazards(w)
}
