package systems

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/wask-game/wask/archetypes"
	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/leaderboard"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/shared/leveldata"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

// Resolv cell size in screen pixels.
const spaceCellSize = 32

// WorldOptions configures a new simulation world.
type WorldOptions struct {
	Levels []*leveldata.Template
	Width  int
	Height int

	// Optional; a NopReporter, a time-seeded source and the embedded
	// question pools are used when unset.
	Reporter  leaderboard.Reporter
	Rand      *rand.Rand
	Questions *cfg.QuestionPools
}

// NewWorld builds the world for a display of the given size: the collision
// space, boundary walls, session singletons, the player and the first level.
// The session starts in the menu.
func NewWorld(opts WorldOptions) donburi.World {
	w := donburi.NewWorld()

	width, height := float64(opts.Width), float64(opts.Height)
	s := gamemath.NewScaler(width, height, cfg.BaseWidth, cfg.BaseHeight)
	groundY := height - s.Scale(cfg.World.GroundHeight)
	wallW := s.Scale(cfg.World.WallWidth)

	factory.CreateSpace(w, opts.Width, opts.Height, spaceCellSize, spaceCellSize)

	level := components.LevelData{
		Levels:    leveldata.ScaleAll(opts.Levels, s, cfg.Enemy.Size, cfg.Collectible.Size),
		Scaler:    s,
		Width:     width,
		Height:    height,
		GroundY:   groundY,
		LeftWall:  gamemath.Rect{X: 0, Y: 0, W: wallW, H: groundY},
		RightWall: gamemath.Rect{X: width - wallW, Y: 0, W: wallW, H: groundY},
	}
	components.Level.SetValue(archetypes.Level.Spawn(w), level)
	factory.CreateWall(w, level.LeftWall)
	factory.CreateWall(w, level.RightWall)

	services := components.ServicesData{
		Reporter:  opts.Reporter,
		Rand:      opts.Rand,
		Questions: cfg.Questions,
	}
	if services.Reporter == nil {
		services.Reporter = leaderboard.NopReporter{}
	}
	if services.Rand == nil {
		services.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Questions != nil {
		services.Questions = *opts.Questions
	}

	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{State: cfg.StateMenu})
	components.Services.SetValue(session, services)

	spawn := level.Levels[0].Spawn
	factory.CreatePlayer(w, gamemath.Rect{
		X: spawn.X,
		Y: spawn.Y,
		W: s.Scale(cfg.Player.Width),
		H: s.Scale(cfg.Player.Height),
	}, cfg.Player.StartingLives, cfg.Player.MaxLives)

	LoadLevel(w, 0)
	return w
}

func LevelOf(w donburi.World) *components.LevelData {
	return components.Level.Get(components.Level.MustFirst(w))
}

func SessionOf(w donburi.World) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(w))
}

func ClockOf(w donburi.World) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(w))
}

func InputOf(w donburi.World) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(w))
}

func servicesOf(w donburi.World) *components.ServicesData {
	return components.Services.Get(components.Services.MustFirst(w))
}

// PlayerOf returns the player entry. There is exactly one per world.
func PlayerOf(w donburi.World) *donburi.Entry {
	return tags.Player.MustFirst(w)
}

// collect snapshots every entry carrying c, so callers can destroy entities
// while walking the result.
func collect(w donburi.World, c donburi.IComponentType) []*donburi.Entry {
	var entries []*donburi.Entry
	donburi.NewQuery(filter.Contains(c)).Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}
