package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/shared/gamemath"
)

// ObjectData wraps the entity's collision rectangle. Position lives on the
// resolv object; call Update after moving it to keep the space in sync.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as a plain rectangle.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Overlaps reports whether two objects touch or intersect.
func (o *ObjectData) Overlaps(other *ObjectData) bool {
	return o.Rect().Overlaps(other.Rect())
}

func (o *ObjectData) Right() float64  { return o.X + o.W }
func (o *ObjectData) Bottom() float64 { return o.Y + o.H }
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space every object is registered in.
var Space = donburi.NewComponentType[resolv.Space]()
