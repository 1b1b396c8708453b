package systems

import (
	"log"

	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
)

// DamagePlayer costs one life and restarts the current level from its
// template. It is the only way the player is hurt.
func DamagePlayer(w donburi.World) {
	lives := components.Lives.Get(PlayerOf(w))
	lives.Lives--
	log.Printf("[session] player hit, %d lives left", lives.Lives)

	LoadLevel(w, LevelOf(w).LevelIndex)
}
