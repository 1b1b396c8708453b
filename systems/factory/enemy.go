package factory

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/archetypes"
	"github.com/wask-game/wask/components"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/tags"
)

func CreateEnemy(w donburi.World, spawn leveldata.EnemySpawn, direction float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)
	attach(w, enemy, spawn.Rect, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		PatrolLo:  spawn.Lo,
		PatrolHi:  spawn.Hi,
		Direction: direction,
		Alive:     true,
	})
	return enemy
}
