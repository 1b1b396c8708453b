package factory

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/archetypes"
	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/tags"
)

// CreateBoss creates the boss resting on the ground, ready to jump at now.
func CreateBoss(w donburi.World, r gamemath.Rect, spec leveldata.BossSpec, now time.Duration) *donburi.Entry {
	boss := archetypes.Boss.Spawn(w)
	attach(w, boss, r, tags.ResolvBoss)

	components.Boss.SetValue(boss, components.BossData{
		Spec:     spec,
		HP:       spec.HP,
		Phase:    cfg.BossGround,
		Deadline: now,
		BarHP:    float32(spec.HP),
	})
	return boss
}

func CreateHazard(w donburi.World, r gamemath.Rect, direction, speed float64, life int) *donburi.Entry {
	hz := archetypes.Hazard.Spawn(w)
	attach(w, hz, r, tags.ResolvHazard)

	components.Hazard.SetValue(hz, components.HazardData{
		Direction: direction,
		Speed:     speed,
		Life:      life,
	})
	return hz
}
