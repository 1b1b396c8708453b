package systems

import (
	"time"

	"github.com/yohamta/donburi"

	cfg "github.com/wask-game/wask/config"
)

// TickDuration is the simulated time one update covers.
func TickDuration() time.Duration {
	return time.Second / time.Duration(cfg.C.TickRate)
}

// tickSeconds is TickDuration as tween time.
func tickSeconds() float32 {
	return float32(TickDuration().Seconds())
}

// UpdateClock advances the simulation clock by one tick.
func UpdateClock(w donburi.World) {
	c := ClockOf(w)
	c.Frame++
	c.Now += TickDuration()
}
