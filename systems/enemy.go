package systems

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/tags"
)

// UpdateEnemies walks every live enemy along its patrol lane and damages
// the player on contact.
func UpdateEnemies(w donburi.World) {
	step := LevelOf(w).Scaler.Scale(cfg.Enemy.PatrolSpeed)
	player := PlayerOf(w)

	for _, e := range collect(w, tags.Enemy) {
		enemy := components.Enemy.Get(e)
		if !enemy.Alive {
			continue
		}

		obj := components.Object.Get(e)
		obj.X += enemy.Direction * step
		if obj.X < enemy.PatrolLo || obj.Right() > enemy.PatrolHi {
			enemy.Direction = -enemy.Direction
		}
		obj.Update()

		if touching(obj, player, tags.ResolvPlayer) {
			DamagePlayer(w)
			return
		}
	}
}

// AliveEnemies counts enemies that have not been shot.
func AliveEnemies(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Alive {
			n++
		}
	})
	return n
}
