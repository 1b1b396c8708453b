package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

// UpdateBoss runs one frame of the boss fight: the phase machine, touch
// damage, projectile hits and the win check.
func UpdateBoss(w donburi.World) {
	e, ok := tags.Boss.First(w)
	if !ok {
		return
	}

	level := LevelOf(w)
	now := ClockOf(w).Now
	boss := components.Boss.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	playerObj := components.Object.Get(PlayerOf(w))
	spec := boss.Spec

	switch boss.Phase {
	case cfg.BossGround:
		obj.Y = level.GroundY - obj.H
		physics.SpeedY = 0
		if now >= boss.Deadline {
			physics.SpeedX = gamemath.DirectionToward(obj.CenterX(), playerObj.CenterX()) * spec.SpeedX
			physics.SpeedY = spec.JumpPower
			boss.Phase = cfg.BossTakeoff
		}

	case cfg.BossTakeoff:
		physics.SpeedY += spec.Gravity
		physics.SpeedX = gamemath.DirectionToward(obj.CenterX(), playerObj.CenterX()) * spec.SpeedX
		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		if physics.SpeedY >= 0 {
			physics.SpeedX, physics.SpeedY = 0, 0
			boss.Phase = cfg.BossHover
			boss.Deadline = now + spec.Hover
		}

	case cfg.BossHover:
		if now >= boss.Deadline {
			physics.SpeedX = 0
			physics.SpeedY = level.Scaler.Mul(cfg.Boss.FallSpeed)
			boss.Phase = cfg.BossFall
		}

	case cfg.BossFall:
		physics.SpeedY += spec.Gravity
		obj.Y += physics.SpeedY
		if obj.Bottom() >= level.GroundY {
			obj.Y = level.GroundY - obj.H
			physics.SpeedY = 0
			spawnShockwaves(w, obj.CenterX(), level.GroundY)
			boss.Phase = cfg.BossGround
			boss.Deadline = now + spec.LandCooldown
		}
	}
	obj.Update()

	if spec.TouchDamage && touching(obj, PlayerOf(w), tags.ResolvPlayer) {
		DamagePlayer(w)
		return
	}

	hits := moveProjectilesAtBoss(w, e)
	if hits > 0 {
		boss.HP = max(0, boss.HP-hits)
		boss.Bar = gween.New(boss.BarHP, float32(boss.HP), cfg.Boss.BarEaseSeconds, ease.OutQuad)
	}
	if boss.Bar != nil {
		v, done := boss.Bar.Update(tickSeconds())
		boss.BarHP = v
		if done {
			boss.Bar = nil
		}
	}

	if boss.HP <= 0 {
		factory.Destroy(w, e)
		Victory(w)
	}
}

// moveProjectilesAtBoss gives every projectile its boss-fight move on top of
// the regular one, then removes the ones that hit the boss or ran out of
// range. It returns the number of hits.
func moveProjectilesAtBoss(w donburi.World, bossEntry *donburi.Entry) int {
	s := LevelOf(w).Scaler
	speed := s.Scale(cfg.Projectile.Speed)
	maxRange := s.Scale(cfg.Projectile.Range)

	hits := 0
	for _, p := range collect(w, tags.Projectile) {
		proj := components.Projectile.Get(p)
		obj := components.Object.Get(p)
		obj.X += proj.Direction * speed
		proj.Distance += speed
		obj.Update()

		switch {
		case touching(obj, bossEntry, tags.ResolvBoss):
			hits++
			factory.Destroy(w, p)
		case proj.Distance >= maxRange:
			factory.Destroy(w, p)
		}
	}
	return hits
}

func spawnShockwaves(w donburi.World, centerX, bottom float64) {
	s := LevelOf(w).Scaler
	h := s.Scale(cfg.Hazard.Height)
	speed := s.Scale(cfg.Hazard.Speed)
	for _, dir := range []float64{cfg.DirectionLeft, cfg.DirectionRight} {
		factory.CreateHazard(w, gamemath.Rect{
			X: centerX,
			Y: bottom - h,
			W: cfg.Hazard.StartWidth,
			H: h,
		}, dir, speed, cfg.Hazard.Life)
	}
}

// UpdateHazards grows each shockwave away from its origin, damages the
// player on contact and drops the spent ones.
func UpdateHazards(w donburi.World) {
	player := PlayerOf(w)

	for _, e := range collect(w, tags.Hazard) {
		hz := components.Hazard.Get(e)
		obj := components.Object.Get(e)

		if hz.Direction < 0 {
			obj.X -= hz.Speed
		}
		obj.W += hz.Speed
		hz.Life--
		obj.Update()

		if touching(obj, player, tags.ResolvPlayer) {
			DamagePlayer(w)
			return
		}
		if hz.Life <= 0 || obj.W <= 0 {
			factory.Destroy(w, e)
		}
	}
}

func clearHazards(w donburi.World) {
	for _, e := range collect(w, tags.Hazard) {
		factory.Destroy(w, e)
	}
}
