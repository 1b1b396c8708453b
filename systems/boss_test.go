package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

func newBossRun(t *testing.T) (donburi.World, *recordingReporter) {
	t.Helper()
	w, rep := newRun(t)
	LoadLevel(w, 2)
	require.True(t, isBossLevel(w))
	return w, rep
}

func TestBossStartsOnGround(t *testing.T) {
	w, _ := newBossRun(t)
	e := tags.Boss.MustFirst(w)
	boss := components.Boss.Get(e)
	obj := components.Object.Get(e)
	level := LevelOf(w)

	assert.Equal(t, cfg.BossGround, boss.Phase)
	assert.Equal(t, boss.Spec.HP, boss.HP)
	assert.Equal(t, level.GroundY, obj.Bottom())
	assert.Equal(t, level.Width-cfg.Boss.Size-cfg.Boss.RightMargin, obj.X)
}

func TestBossPhaseCycle(t *testing.T) {
	w, _ := newBossRun(t)
	e := tags.Boss.MustFirst(w)
	boss := components.Boss.Get(e)
	startHP := boss.HP

	phases := []cfg.BossPhase{boss.Phase}
	hazardsAtLanding := -1
	for i := 0; i < 10*cfg.C.TickRate && len(phases) < 5; i++ {
		hold(w)
		Step(w)
		if boss.Phase != phases[len(phases)-1] {
			phases = append(phases, boss.Phase)
			if boss.Phase == cfg.BossGround {
				hazardsAtLanding = count(w, tags.Hazard)
			}
		}
	}

	assert.Equal(t, []cfg.BossPhase{
		cfg.BossGround, cfg.BossTakeoff, cfg.BossHover, cfg.BossFall, cfg.BossGround,
	}, phases)
	assert.Equal(t, startHP, boss.HP)
	assert.Equal(t, 2, hazardsAtLanding, "one shockwave each way")
	assert.Equal(t, LevelOf(w).GroundY, components.Object.Get(e).Bottom())
	assert.Equal(t, cfg.Player.StartingLives, lives(w))
}

func TestBossTakeoffAimsAtPlayer(t *testing.T) {
	w, _ := newBossRun(t)
	e := tags.Boss.MustFirst(w)
	obj := components.Object.Get(e)
	startX := obj.X

	hold(w)
	Step(w) // ground -> takeoff
	hold(w)
	Step(w)
	require.Equal(t, cfg.BossTakeoff, components.Boss.Get(e).Phase)
	assert.Less(t, obj.X, startX, "player spawns left of the boss")
}

func TestBossHoverWaitsForDeadline(t *testing.T) {
	w, _ := newBossRun(t)
	e := tags.Boss.MustFirst(w)
	boss := components.Boss.Get(e)
	obj := components.Object.Get(e)

	for i := 0; i < 5*cfg.C.TickRate && boss.Phase != cfg.BossHover; i++ {
		hold(w)
		Step(w)
	}
	require.Equal(t, cfg.BossHover, boss.Phase)
	assert.Equal(t, ClockOf(w).Now+boss.Spec.Hover, boss.Deadline)

	x, y := obj.X, obj.Y
	hold(w)
	Step(w)
	assert.Equal(t, cfg.BossHover, boss.Phase)
	assert.Equal(t, x, obj.X)
	assert.Equal(t, y, obj.Y)
}

func TestProjectileHitDamagesBoss(t *testing.T) {
	w, _ := newBossRun(t)
	e := tags.Boss.MustFirst(w)
	boss := components.Boss.Get(e)
	boss.HP, boss.BarHP = 2, 2
	obj := components.Object.Get(e)
	factory.CreateProjectile(w, gamemath.Rect{X: obj.X + 20, Y: obj.Y + 40, W: 10, H: 5}, cfg.DirectionRight)

	hold(w)
	Step(w)

	assert.Equal(t, 1, boss.HP)
	assert.Zero(t, count(w, tags.Projectile))
	assert.Less(t, boss.BarHP, float32(2))
	assert.Greater(t, boss.BarHP, float32(1), "the bar eases toward the new value")
	assert.Equal(t, cfg.StatePlay, SessionOf(w).State)
}

// holdBossOnGround keeps the boss grounded at its spawn for the test.
func holdBossOnGround(w donburi.World) {
	components.Boss.Get(tags.Boss.MustFirst(w)).Deadline = ClockOf(w).Now + time.Hour
}

func TestProjectilesMoveTwiceOnBossLevel(t *testing.T) {
	w, _ := newBossRun(t)
	holdBossOnGround(w)
	e := factory.CreateProjectile(w, gamemath.Rect{X: 300, Y: 100, W: 10, H: 5}, cfg.DirectionLeft)

	hold(w)
	Step(w)

	require.True(t, e.Valid())
	assert.Equal(t, 2*cfg.Projectile.Speed, components.Projectile.Get(e).Distance)
	assert.Equal(t, 300-2*cfg.Projectile.Speed, components.Object.Get(e).X)
}

func TestProjectilesExpireSoonerOnBossLevel(t *testing.T) {
	w, _ := newBossRun(t)
	holdBossOnGround(w)
	factory.CreateProjectile(w, gamemath.Rect{X: 300, Y: 100, W: 10, H: 5}, cfg.DirectionRight)

	frames := int(cfg.Projectile.Range / (2 * cfg.Projectile.Speed))
	for range frames - 1 {
		hold(w)
		Step(w)
	}
	require.Equal(t, 1, count(w, tags.Projectile))

	hold(w)
	Step(w)
	assert.Zero(t, count(w, tags.Projectile))
}

func TestBossDefeatAtOneHP(t *testing.T) {
	w, rep := newBossRun(t)
	e := tags.Boss.MustFirst(w)
	boss := components.Boss.Get(e)
	boss.HP = 1
	obj := components.Object.Get(e)
	factory.CreateProjectile(w, gamemath.Rect{X: obj.X + 20, Y: obj.Y + 40, W: 10, H: 5}, cfg.DirectionRight)
	factory.CreateHazard(w, gamemath.Rect{X: 700, Y: 446, W: 1, H: 14}, cfg.DirectionRight, 10, 35)

	hold(w)
	Step(w)

	assert.Equal(t, cfg.StateVictory, SessionOf(w).State)
	_, ok := tags.Boss.First(w)
	assert.False(t, ok, "a beaten boss is removed")
	assert.Zero(t, count(w, tags.Hazard))
	require.Len(t, rep.results, 1)
	assert.Equal(t, "win", rep.results[0].Outcome)
}

func TestBossTouchDamagesPlayer(t *testing.T) {
	w, _ := newBossRun(t)
	boss := components.Boss.Get(tags.Boss.MustFirst(w))
	boss.HP = 5
	obj := components.Object.Get(tags.Boss.MustFirst(w))
	placePlayer(w, obj.X+10, LevelOf(w).GroundY-playerObject(w).H)

	hold(w)
	Step(w)

	assert.Equal(t, cfg.Player.StartingLives-1, lives(w))
	fresh := components.Boss.Get(tags.Boss.MustFirst(w))
	assert.Equal(t, fresh.Spec.HP, fresh.HP, "the level reload restores the boss")
	assert.Equal(t, cfg.BossGround, fresh.Phase)
}

func TestHazardGrowsAwayFromOrigin(t *testing.T) {
	w, _ := newBossRun(t)
	left := factory.CreateHazard(w, gamemath.Rect{X: 400, Y: 446, W: 1, H: 14}, cfg.DirectionLeft, 10, 35)
	right := factory.CreateHazard(w, gamemath.Rect{X: 400, Y: 446, W: 1, H: 14}, cfg.DirectionRight, 10, 35)

	UpdateHazards(w)

	l := components.Object.Get(left)
	assert.Equal(t, 390.0, l.X)
	assert.Equal(t, 11.0, l.W)
	assert.Equal(t, 401.0, l.Right(), "right edge of a left-moving hazard stays put")

	r := components.Object.Get(right)
	assert.Equal(t, 400.0, r.X)
	assert.Equal(t, 11.0, r.W)
	assert.Equal(t, 34, components.Hazard.Get(right).Life)
}

func TestHazardExpires(t *testing.T) {
	w, _ := newBossRun(t)
	factory.CreateHazard(w, gamemath.Rect{X: 400, Y: 446, W: 1, H: 14}, cfg.DirectionRight, 10, 1)

	UpdateHazards(w)
	assert.Zero(t, count(w, tags.Hazard))
}

func TestHazardDamagesPlayer(t *testing.T) {
	w, _ := newBossRun(t)
	p := playerObject(w)
	factory.CreateHazard(w, gamemath.Rect{X: p.X, Y: p.Bottom() - 4, W: 1, H: 14}, cfg.DirectionRight, 10, 35)

	UpdateHazards(w)
	assert.Equal(t, cfg.Player.StartingLives-1, lives(w))
	assert.Zero(t, count(w, tags.Hazard), "the reload clears hazards")
}
