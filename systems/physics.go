package systems

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/tags"
)

// UpdatePlayerPhysics integrates gravity and resolves the player against the
// ground plane, then the platforms. Platform tests are swept against the
// previous frame's edges so a falling player cannot pass through a top.
func UpdatePlayerPhysics(w donburi.World) {
	level := LevelOf(w)
	e := PlayerOf(w)
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	physics.SpeedY = gamemath.ApplyGravity(
		physics.SpeedY,
		level.Scaler.Mul(cfg.Player.Gravity),
		level.Scaler.Mul(cfg.Player.MaxFallSpeed),
	)

	prevBottom := obj.Bottom()
	prevTop := obj.Y

	obj.Y += physics.SpeedY
	player.OnGround = false

	if obj.Bottom() >= level.GroundY {
		obj.Y = level.GroundY - obj.H
		physics.SpeedY = 0
		player.OnGround = true
	}

	for _, p := range platformRects(w, obj) {
		if !obj.Rect().Overlaps(p) {
			continue
		}
		if physics.SpeedY >= 0 && prevBottom <= p.Top() {
			obj.Y = p.Top() - obj.H
			physics.SpeedY = 0
			player.OnGround = true
			break
		}
		if physics.SpeedY < 0 && prevTop >= p.Bottom() {
			obj.Y = p.Bottom()
			physics.SpeedY = 0
			break
		}
	}

	if player.OnGround {
		player.CanDoubleJump = true
	}
	obj.Update()
}

// platformRects lists the platforms near obj in level order.
func platformRects(w donburi.World, obj *components.ObjectData) []gamemath.Rect {
	near := nearby(obj, tags.ResolvSolid)
	var rects []gamemath.Rect
	tags.Platform.Each(w, func(e *donburi.Entry) {
		if near[e.Entity()] {
			rects = append(rects, components.Object.Get(e).Rect())
		}
	})
	return rects
}
