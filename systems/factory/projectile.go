package factory

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/archetypes"
	"github.com/wask-game/wask/components"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/tags"
)

func CreateProjectile(w donburi.World, r gamemath.Rect, direction float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)
	attach(w, p, r, tags.ResolvProjectile)

	components.Projectile.SetValue(p, components.ProjectileData{Direction: direction})
	return p
}
