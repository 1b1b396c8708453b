package factory

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/archetypes"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/tags"
)

// CreateWall creates one of the level's left/right boundary walls.
func CreateWall(w donburi.World, r gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	attach(w, wall, r, tags.ResolvSolid)
	return wall
}
