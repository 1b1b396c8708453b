package factory

import (
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/archetypes"
	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/tags"
)

func CreatePlayer(w donburi.World, r gamemath.Rect, lives, maxLives int) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	attach(w, player, r, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Facing:        cfg.DirectionRight,
		CanDoubleJump: true,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    lives,
		MaxLives: maxLives,
	})
	return player
}
