package leveldata

import (
	"time"

	"github.com/wask-game/wask/shared/gamemath"
)

// Builtin returns the stock campaign: two patrol levels and the boss fight.
// The embedded TMX files describe the same data; this copy is the fallback
// when they cannot be read.
func Builtin() []*Template {
	return []*Template{
		{
			Name:  "level01",
			Spawn: Point{X: 60, Y: 400},
			Enemies: []EnemyLane{
				{X: 400, Y: 410, Lo: 350, Hi: 500},
			},
			Collectibles: []Point{{X: 600, Y: 380}},
		},
		{
			Name:  "level02",
			Spawn: Point{X: 60, Y: 400},
			Enemies: []EnemyLane{
				{X: 300, Y: 410, Lo: 250, Hi: 500},
				{X: 600, Y: 410, Lo: 550, Hi: 750},
			},
			// Lower then upper conveyor belt.
			Platforms: []gamemath.Rect{
				{X: 170, Y: 292, W: 320, H: 40},
				{X: 470, Y: 215, W: 320, H: 40},
			},
			Collectibles: []Point{{X: 320, Y: 266}, {X: 620, Y: 189}},
		},
		{
			Name:  "level03",
			Spawn: Point{X: 80, Y: 400},
			Boss: &BossSpec{
				HP:           12,
				JumpPower:    -14,
				Gravity:      0.7,
				SpeedX:       4,
				Hover:        1000 * time.Millisecond,
				LandCooldown: 2000 * time.Millisecond,
				TouchDamage:  true,
			},
		},
	}
}
