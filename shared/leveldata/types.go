// Package leveldata provides the immutable level templates and their TMX
// parsing. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"time"

	"github.com/wask-game/wask/shared/gamemath"
)

// Point is a position in design units.
type Point struct {
	X, Y float64
}

// EnemyLane is an enemy's spawn (top-left) and its horizontal patrol range.
type EnemyLane struct {
	X, Y   float64
	Lo, Hi float64
}

// BossSpec is the per-fight boss tuning. In a Template the speeds are in
// design units; in a scaled Level they are in screen pixels.
type BossSpec struct {
	HP           int
	JumpPower    float64 // negative, upward
	Gravity      float64
	SpeedX       float64
	Hover        time.Duration
	LandCooldown time.Duration
	TouchDamage  bool
}

// Template is a level as authored, in design units. Read-only after load.
type Template struct {
	Name         string
	Spawn        Point
	Enemies      []EnemyLane
	Platforms    []gamemath.Rect
	Collectibles []Point
	Boss         *BossSpec
}

// EnemySpawn is a scaled enemy rectangle with its scaled patrol range.
type EnemySpawn struct {
	Rect   gamemath.Rect
	Lo, Hi float64
}

// Level is a Template converted to screen pixels for the active display.
type Level struct {
	Name         string
	Spawn        Point
	Enemies      []EnemySpawn
	Platforms    []gamemath.Rect
	Collectibles []gamemath.Rect
	Boss         *BossSpec
}

// IsBossLevel reports whether the level carries a boss fight.
func (l *Level) IsBossLevel() bool {
	return l.Boss != nil
}
