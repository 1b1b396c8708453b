package systems

import (
	"errors"
	"log"

	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

var errNoLevels = errors.New("no levels to load")

// levelTags are the entity kinds owned by a level and rebuilt on every load.
var levelTags = []donburi.IComponentType{
	tags.Enemy,
	tags.Platform,
	tags.Collectible,
	tags.Portal,
	tags.Boss,
	tags.Hazard,
}

// LoadLevel replaces the level's entities with fresh copies of the template
// at idx and puts the player back on its spawn point. Lives, facing and live
// projectiles carry over.
func LoadLevel(w donburi.World, idx int) {
	level := LevelOf(w)
	level.LevelIndex = idx
	level.Generation++

	for _, t := range levelTags {
		for _, e := range collect(w, t) {
			factory.Destroy(w, e)
		}
	}

	l := level.Current()
	for _, p := range l.Platforms {
		factory.CreatePlatform(w, p)
	}
	for _, e := range l.Enemies {
		factory.CreateEnemy(w, e, cfg.Enemy.StartDirection)
	}
	for _, c := range l.Collectibles {
		factory.CreateCollectible(w, c)
	}
	if l.IsBossLevel() {
		size := level.Scaler.Scale(cfg.Boss.Size)
		factory.CreateBoss(w, gamemath.Rect{
			X: level.Width - size - level.Scaler.Scale(cfg.Boss.RightMargin),
			Y: level.GroundY - size,
			W: size,
			H: size,
		}, *l.Boss, ClockOf(w).Now)
	}

	resetPlayer(w, l.Spawn.X, l.Spawn.Y)
}

func resetPlayer(w donburi.World, x, y float64) {
	e := PlayerOf(w)
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.Update()

	*components.Physics.Get(e) = components.PhysicsData{}
	player := components.Player.Get(e)
	player.OnGround = false
	player.CanDoubleJump = true
}

// advanceLevel moves to the next template, or ends the run when there is none.
func advanceLevel(w donburi.World) {
	level := LevelOf(w)
	if level.IsLast() {
		Victory(w)
		return
	}
	LoadLevel(w, level.LevelIndex+1)
	log.Printf("[session] entered %s", level.Current().Name)
}

func isBossLevel(w donburi.World) bool {
	return LevelOf(w).Current().IsBossLevel()
}

// ReplaceLevels swaps in a new campaign, as on a hot reload. The active level
// is rebuilt right away during play; other screens pick the change up on the
// next load.
func ReplaceLevels(w donburi.World, templates []*leveldata.Template) error {
	if len(templates) == 0 {
		return errNoLevels
	}
	level := LevelOf(w)
	level.Levels = leveldata.ScaleAll(templates, level.Scaler, cfg.Enemy.Size, cfg.Collectible.Size)
	if level.LevelIndex >= len(level.Levels) {
		level.LevelIndex = len(level.Levels) - 1
	}
	if SessionOf(w).State == cfg.StatePlay {
		LoadLevel(w, level.LevelIndex)
	}
	log.Printf("[session] reloaded %d levels", len(level.Levels))
	return nil
}
