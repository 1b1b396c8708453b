package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
)

// nearby asks the collision space which entities with any of the given tags
// sit in the cells around obj. The query box is one pixel larger than obj on
// every side so objects that only share an edge are reported too. Callers
// confirm each candidate with an exact overlap test.
func nearby(obj *components.ObjectData, resolvTags ...string) map[donburi.Entity]bool {
	near := map[donburi.Entity]bool{}
	if obj.Object == nil || obj.Space == nil {
		return near
	}

	query := resolv.NewObject(obj.X-1, obj.Y-1, obj.W+2, obj.H+2)
	query.Space = obj.Space
	if check := query.Check(0, 0, resolvTags...); check != nil {
		for _, o := range check.Objects {
			if o == obj.Object {
				continue
			}
			if e, ok := o.Data.(*donburi.Entry); ok {
				near[e.Entity()] = true
			}
		}
	}
	return near
}

// touching reports whether obj overlaps the entity e, which must carry one of
// the given resolv tags.
func touching(obj *components.ObjectData, e *donburi.Entry, resolvTags ...string) bool {
	return nearby(obj, resolvTags...)[e.Entity()] && obj.Overlaps(components.Object.Get(e))
}
