package components

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/shared/leveldata"
)

// LevelData is the singleton describing the campaign and the screen geometry
// derived from the display size.
type LevelData struct {
	Levels     []*leveldata.Level
	LevelIndex int
	// Bumped on every reload so systems can tell the entity set was replaced
	// mid-frame.
	Generation int

	Scaler    gamemath.Scaler
	Width     float64
	Height    float64
	GroundY   float64
	LeftWall  gamemath.Rect
	RightWall gamemath.Rect
}

// Current returns the active level.
func (l *LevelData) Current() *leveldata.Level {
	return l.Levels[l.LevelIndex]
}

// IsLast reports whether no level follows the active one.
func (l *LevelData) IsLast() bool {
	return l.LevelIndex+1 >= len(l.Levels)
}

var Level = donburi.NewComponentType[LevelData]()
