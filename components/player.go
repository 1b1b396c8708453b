package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing        float64 // -1 left, +1 right
	OnGround      bool
	CanDoubleJump bool
	NextShotAt    time.Duration // clock time the attack is ready again
}

var Player = donburi.NewComponentType[PlayerData]()
