package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

func TestPlayerStaysBetweenWalls(t *testing.T) {
	w, _ := newRun(t)
	removeAll(w, tags.Enemy)
	level := LevelOf(w)

	for _, dir := range []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight} {
		for i := 0; i < 250; i++ {
			hold(w, dir)
			Step(w)
			obj := playerObject(w)
			require.GreaterOrEqual(t, obj.X, level.LeftWall.Right(), "frame %d", i)
			require.LessOrEqual(t, obj.Right(), level.RightWall.Left(), "frame %d", i)
		}
	}
	assert.Equal(t, level.RightWall.Left(), playerObject(w).Right())
}

func TestMovementSetsFacing(t *testing.T) {
	w, _ := newRun(t)
	player := components.Player.Get(PlayerOf(w))

	hold(w, cfg.ActionMoveLeft)
	UpdatePlayerMovement(w)
	assert.Equal(t, cfg.DirectionLeft, player.Facing)
	assert.Equal(t, -cfg.Player.MoveSpeed, components.Physics.Get(PlayerOf(w)).SpeedX)

	hold(w)
	UpdatePlayerMovement(w)
	assert.Equal(t, cfg.DirectionLeft, player.Facing, "facing is kept when idle")
	assert.Zero(t, components.Physics.Get(PlayerOf(w)).SpeedX)
}

func TestDoubleJumpButNoTripleJump(t *testing.T) {
	w, _ := newRun(t)
	e := PlayerOf(w)
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	player.OnGround = true

	hold(w, cfg.ActionJump)
	UpdatePlayerMovement(w)
	assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)
	assert.False(t, player.OnGround)
	assert.True(t, player.CanDoubleJump)

	// Holding jump does not fire again.
	physics.SpeedY = -3
	hold(w, cfg.ActionJump)
	UpdatePlayerMovement(w)
	assert.Equal(t, -3.0, physics.SpeedY)

	hold(w)
	hold(w, cfg.ActionJump)
	UpdatePlayerMovement(w)
	assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)
	assert.False(t, player.CanDoubleJump)

	physics.SpeedY = 5
	hold(w)
	hold(w, cfg.ActionJump)
	UpdatePlayerMovement(w)
	assert.Equal(t, 5.0, physics.SpeedY, "third jump in the air is ignored")
}

func TestGroundContactRestoresDoubleJump(t *testing.T) {
	w, _ := newRun(t)
	player := components.Player.Get(PlayerOf(w))
	player.CanDoubleJump = false

	for i := 0; i < 10; i++ {
		hold(w)
		UpdatePlayerPhysics(w)
	}
	assert.True(t, player.OnGround)
	assert.True(t, player.CanDoubleJump)
	assert.Equal(t, LevelOf(w).GroundY, playerObject(w).Bottom())
}

func TestPlatformLanding(t *testing.T) {
	w, _ := newRun(t)
	LoadLevel(w, 1)
	platform := LevelOf(w).Current().Platforms[0]

	placePlayer(w, platform.X+30, platform.Top()-playerObject(w).H-30)
	e := PlayerOf(w)
	physics := components.Physics.Get(e)

	landed := false
	for i := 0; i < 60 && !landed; i++ {
		hold(w)
		Step(w)
		landed = components.Player.Get(e).OnGround
	}
	require.True(t, landed)
	assert.Equal(t, platform.Top(), playerObject(w).Bottom())
	assert.Zero(t, physics.SpeedY)
}

func TestPlatformLandingAtMaxFallSpeed(t *testing.T) {
	w, _ := newRun(t)
	LoadLevel(w, 1)
	platform := LevelOf(w).Current().Platforms[0]

	// One frame above the top, falling as fast as allowed.
	placePlayer(w, platform.X+30, platform.Top()-playerObject(w).H-2)
	physics := components.Physics.Get(PlayerOf(w))
	physics.SpeedY = cfg.Player.MaxFallSpeed

	UpdatePlayerPhysics(w)
	assert.Equal(t, platform.Top(), playerObject(w).Bottom())
	assert.Zero(t, physics.SpeedY)
	assert.True(t, components.Player.Get(PlayerOf(w)).OnGround)
}

func TestPlatformUndersideStopsJump(t *testing.T) {
	w, _ := newRun(t)
	LoadLevel(w, 1)
	platform := LevelOf(w).Current().Platforms[0]

	placePlayer(w, platform.X+30, platform.Bottom()+3)
	physics := components.Physics.Get(PlayerOf(w))
	physics.SpeedY = -10

	UpdatePlayerPhysics(w)
	assert.Equal(t, platform.Bottom(), playerObject(w).Y)
	assert.Zero(t, physics.SpeedY)
	assert.False(t, components.Player.Get(PlayerOf(w)).OnGround)
}

func TestAttackRespectsCooldown(t *testing.T) {
	w, _ := newRun(t)

	hold(w, cfg.ActionAttack)
	UpdatePlayerAttack(w)
	require.Equal(t, 1, count(w, tags.Projectile))
	assert.Equal(t, cfg.Projectile.Cooldown, AttackCooldown(w))

	UpdatePlayerAttack(w)
	assert.Equal(t, 1, count(w, tags.Projectile), "still cooling down")

	for ClockOf(w).Now < cfg.Projectile.Cooldown {
		UpdateClock(w)
	}
	assert.Zero(t, AttackCooldown(w))
	UpdatePlayerAttack(w)
	assert.Equal(t, 2, count(w, tags.Projectile))
}

func TestProjectileCap(t *testing.T) {
	w, _ := newRun(t)
	for i := 0; i < cfg.Projectile.MaxLive; i++ {
		factory.CreateProjectile(w, gamemath.Rect{X: 100, Y: 100, W: 10, H: 5}, cfg.DirectionRight)
	}

	hold(w, cfg.ActionAttack)
	UpdatePlayerAttack(w)
	assert.Equal(t, cfg.Projectile.MaxLive, count(w, tags.Projectile))
	assert.Zero(t, AttackCooldown(w), "a blocked shot does not start the cooldown")
}

func TestProjectileCountNeverExceedsCap(t *testing.T) {
	w, _ := newRun(t)
	removeAll(w, tags.Enemy)
	cooldown := cfg.Projectile.Cooldown
	cfg.Projectile.Cooldown = 0
	t.Cleanup(func() { cfg.Projectile.Cooldown = cooldown })

	for i := 0; i < 120; i++ {
		hold(w, cfg.ActionAttack)
		Step(w)
		require.LessOrEqual(t, count(w, tags.Projectile), cfg.Projectile.MaxLive)
	}
}
