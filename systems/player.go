package systems

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

// UpdatePlayerMovement applies horizontal input and jumping.
func UpdatePlayerMovement(w donburi.World) {
	level := LevelOf(w)
	input := InputOf(w)
	e := PlayerOf(w)
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	speed := level.Scaler.Scale(cfg.Player.MoveSpeed)
	switch {
	case input.Held(cfg.ActionMoveLeft):
		physics.SpeedX = -speed
		player.Facing = cfg.DirectionLeft
	case input.Held(cfg.ActionMoveRight):
		physics.SpeedX = speed
		player.Facing = cfg.DirectionRight
	default:
		physics.SpeedX = 0
	}

	obj.X += physics.SpeedX
	if obj.X < level.LeftWall.Right() {
		obj.X = level.LeftWall.Right()
	}
	if obj.Right() > level.RightWall.Left() {
		obj.X = level.RightWall.Left() - obj.W
	}

	if input.JustPressed(cfg.ActionJump) {
		jump := -level.Scaler.Mul(cfg.Player.JumpSpeed)
		switch {
		case player.OnGround:
			physics.SpeedY = jump
			player.OnGround = false
			player.CanDoubleJump = true
		case player.CanDoubleJump:
			physics.SpeedY = jump
			player.CanDoubleJump = false
		}
	}

	obj.Update()
}

// UpdatePlayerAttack fires a projectile while attack is held, once per
// cooldown and only below the live projectile cap.
func UpdatePlayerAttack(w donburi.World) {
	if !InputOf(w).Held(cfg.ActionAttack) {
		return
	}

	now := ClockOf(w).Now
	e := PlayerOf(w)
	player := components.Player.Get(e)
	if now < player.NextShotAt {
		return
	}
	if count(w, tags.Projectile) >= cfg.Projectile.MaxLive {
		return
	}

	s := LevelOf(w).Scaler
	obj := components.Object.Get(e)
	factory.CreateProjectile(w, gamemath.Rect{
		X: obj.CenterX(),
		Y: obj.Y + obj.H/2,
		W: s.Scale(cfg.Projectile.Width),
		H: s.Scale(cfg.Projectile.Height),
	}, player.Facing)
	player.NextShotAt = now + cfg.Projectile.Cooldown
}

// AttackCooldown returns how long until the next shot is allowed.
func AttackCooldown(w donburi.World) time.Duration {
	left := components.Player.Get(PlayerOf(w)).NextShotAt - ClockOf(w).Now
	return max(0, left)
}
