package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/archetypes"
	"github.com/wask-game/wask/components"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/tags"
)

func CreateCollectible(w donburi.World, r gamemath.Rect) *donburi.Entry {
	c := archetypes.Collectible.Spawn(w)
	attach(w, c, r, tags.ResolvCollectible)
	return c
}

// CreatePortal creates the level exit. The tween only animates how much of
// it is drawn.
func CreatePortal(w donburi.World, r gamemath.Rect, growSeconds float32) *donburi.Entry {
	portal := archetypes.Portal.Spawn(w)
	attach(w, portal, r, tags.ResolvPortal)

	components.Portal.SetValue(portal, components.PortalData{
		Grow: gween.New(0, 1, growSeconds, ease.OutQuad),
	})
	return portal
}
