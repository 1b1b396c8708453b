package factory

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/archetypes"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/tags"
)

func CreatePlatform(w donburi.World, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	attach(w, platform, r, tags.ResolvSolid)
	return platform
}
