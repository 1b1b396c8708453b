package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/leaderboard"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

type recordingReporter struct {
	results []leaderboard.Result
}

func (r *recordingReporter) Report(res leaderboard.Result) {
	r.results = append(r.results, res)
}

// newTestWorld builds a world at the design resolution, so every scaled
// value equals its design value.
func newTestWorld(t *testing.T) (donburi.World, *recordingReporter) {
	t.Helper()
	rep := &recordingReporter{}
	w := NewWorld(WorldOptions{
		Levels:   leveldata.Builtin(),
		Width:    cfg.BaseWidth,
		Height:   cfg.BaseHeight,
		Reporter: rep,
		Rand:     rand.New(rand.NewSource(1)),
	})
	return w, rep
}

// newRun returns a world already playing the first level.
func newRun(t *testing.T) (donburi.World, *recordingReporter) {
	t.Helper()
	w, rep := newTestWorld(t)
	require.NoError(t, StartNameEntry(w))
	require.NoError(t, StartRun(w, "Tester", "tester@example.com"))
	return w, rep
}

// hold pushes a frame of input with the given actions held.
func hold(w donburi.World, actions ...cfg.ActionID) {
	var held [cfg.ActionCount]bool
	for _, a := range actions {
		held[a] = true
	}
	InputOf(w).Push(held)
}

func playerObject(w donburi.World) *components.ObjectData {
	return components.Object.Get(PlayerOf(w))
}

func placePlayer(w donburi.World, x, y float64) {
	obj := playerObject(w)
	obj.X, obj.Y = x, y
	obj.Update()
}

func lives(w donburi.World) int {
	return components.Lives.Get(PlayerOf(w)).Lives
}

func removeAll(w donburi.World, c donburi.IComponentType) {
	for _, e := range collect(w, c) {
		factory.Destroy(w, e)
	}
}

func bossOf(t *testing.T, w donburi.World) *components.BossData {
	t.Helper()
	e, ok := tags.Boss.First(w)
	require.True(t, ok, "no boss in level")
	return components.Boss.Get(e)
}

// enemyAt returns the enemy whose spawn X was x.
func enemyAt(t *testing.T, w donburi.World, x float64) *donburi.Entry {
	t.Helper()
	for _, e := range collect(w, tags.Enemy) {
		if components.Object.Get(e).X == x {
			return e
		}
	}
	t.Fatalf("no enemy at x=%v", x)
	return nil
}
