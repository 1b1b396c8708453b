package systems

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

// UpdateProjectiles moves every projectile and removes the ones that hit an
// enemy, leave the screen or run out of range. A projectile kills at most
// one enemy, the first it overlaps.
func UpdateProjectiles(w donburi.World) {
	level := LevelOf(w)
	speed := level.Scaler.Scale(cfg.Projectile.Speed)
	maxRange := level.Scaler.Scale(cfg.Projectile.Range)

	for _, e := range collect(w, tags.Projectile) {
		proj := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		obj.X += proj.Direction * speed
		proj.Distance += speed
		obj.Update()

		hit := false
		near := nearby(obj, tags.ResolvEnemy)
		for _, enemyEntry := range collect(w, tags.Enemy) {
			if !near[enemyEntry.Entity()] {
				continue
			}
			enemy := components.Enemy.Get(enemyEntry)
			if enemy.Alive && obj.Overlaps(components.Object.Get(enemyEntry)) {
				enemy.Alive = false
				hit = true
				break
			}
		}

		if obj.X < 0 || obj.Right() > level.Width {
			hit = true
		}

		if hit || proj.Distance >= maxRange {
			factory.Destroy(w, e)
		}
	}
}
