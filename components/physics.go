package components

import "github.com/yohamta/donburi"

// PhysicsData holds per-frame velocity in screen pixels.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
