package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/tags"
)

func TestNewWorldScalesToDisplay(t *testing.T) {
	w := NewWorld(WorldOptions{
		Levels: leveldata.Builtin(),
		Width:  2 * cfg.BaseWidth,
		Height: 2 * cfg.BaseHeight,
	})
	level := LevelOf(w)

	assert.Equal(t, 2.0, level.Scaler.S)
	assert.Equal(t, level.Height-2*cfg.World.GroundHeight, level.GroundY)
	assert.Equal(t, 2*cfg.World.WallWidth, level.LeftWall.W)
	assert.Equal(t, level.Width, level.RightWall.Right())

	obj := playerObject(w)
	assert.Equal(t, 2*cfg.Player.Width, obj.W)
	assert.Equal(t, 2*cfg.Player.Height, obj.H)
	assert.Equal(t, 2*leveldata.Builtin()[0].Spawn.X, obj.X)
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(WorldOptions{
		Levels: leveldata.Builtin(),
		Width:  cfg.BaseWidth,
		Height: cfg.BaseHeight,
	})
	services := servicesOf(w)
	assert.NotNil(t, services.Reporter)
	assert.NotNil(t, services.Rand)
	assert.NotEmpty(t, services.Questions.TrueFalse)
	assert.NotEmpty(t, services.Questions.MultipleChoice)
	assert.Equal(t, 2, count(w, tags.Wall))
}

func TestLoadLevelRebuildsEntities(t *testing.T) {
	w, _ := newRun(t)

	LoadLevel(w, 1)
	assert.Equal(t, 2, count(w, tags.Platform))
	assert.Equal(t, 2, count(w, tags.Enemy))
	assert.Equal(t, 2, count(w, tags.Collectible))
	assert.Zero(t, count(w, tags.Boss))

	LoadLevel(w, 2)
	assert.Zero(t, count(w, tags.Platform))
	assert.Zero(t, count(w, tags.Enemy))
	assert.Equal(t, 1, count(w, tags.Boss))
	assert.Equal(t, 1, count(w, tags.Player))
}

func TestReplaceLevelsReloadsDuringPlay(t *testing.T) {
	w, _ := newRun(t)
	LoadLevel(w, 2)
	gen := LevelOf(w).Generation

	require.NoError(t, ReplaceLevels(w, leveldata.Builtin()[:1]))
	level := LevelOf(w)
	assert.Len(t, level.Levels, 1)
	assert.Equal(t, 0, level.LevelIndex)
	assert.Greater(t, level.Generation, gen)
	assert.Equal(t, 1, count(w, tags.Enemy))
}

func TestReplaceLevelsOutsidePlayWaits(t *testing.T) {
	w, _ := newTestWorld(t)
	gen := LevelOf(w).Generation

	require.NoError(t, ReplaceLevels(w, leveldata.Builtin()))
	assert.Equal(t, gen, LevelOf(w).Generation)
	assert.ErrorIs(t, ReplaceLevels(w, nil), errNoLevels)
}

func TestPlayerKeepsSizeAcrossLevels(t *testing.T) {
	w, _ := newRun(t)
	before := components.Object.Get(PlayerOf(w)).Rect()
	LoadLevel(w, 1)
	after := components.Object.Get(PlayerOf(w)).Rect()
	assert.Equal(t, before.W, after.W)
	assert.Equal(t, before.H, after.H)
}
