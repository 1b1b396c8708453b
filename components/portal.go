package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PortalData drives the cosmetic materialize effect. Collision always uses
// the full rectangle.
type PortalData struct {
	Grow  *gween.Tween
	Scale float32 // 0..1 visible height fraction
}

var Portal = donburi.NewComponentType[PortalData]()
