package systems

import (
	"log"

	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/systems/factory"
	"github.com/wask-game/wask/tags"
)

// UpdateCollectibles picks up the first uncollected item the player touches
// and asks a true/false question for an extra life.
func UpdateCollectibles(w donburi.World) {
	playerObj := components.Object.Get(PlayerOf(w))
	near := nearby(playerObj, tags.ResolvCollectible)

	for _, e := range collect(w, tags.Collectible) {
		c := components.Collectible.Get(e)
		if c.Collected || !near[e.Entity()] || !playerObj.Overlaps(components.Object.Get(e)) {
			continue
		}
		c.Collected = true
		services := servicesOf(w)
		ask(w, components.QuestionLife, pick(services, services.Questions.TrueFalse))
		return
	}
}

// AllCollected reports whether every collectible of the level was picked up.
func AllCollected(w donburi.World) bool {
	all := true
	tags.Collectible.Each(w, func(e *donburi.Entry) {
		if !components.Collectible.Get(e).Collected {
			all = false
		}
	})
	return all
}

// UpdatePortal opens the exit once the level is cleared and asks a
// multiple-choice question when the player steps into it.
func UpdatePortal(w donburi.World) {
	portalEntry, ok := tags.Portal.First(w)
	if !ok {
		if !AllCollected(w) || AliveEnemies(w) > 0 {
			return
		}
		portalEntry = spawnPortal(w)
	}

	portal := components.Portal.Get(portalEntry)
	if portal.Grow != nil {
		scale, done := portal.Grow.Update(tickSeconds())
		portal.Scale = scale
		if done {
			portal.Grow = nil
			portal.Scale = 1
		}
	}

	if touching(components.Object.Get(PlayerOf(w)), portalEntry, tags.ResolvPortal) {
		services := servicesOf(w)
		ask(w, components.QuestionPortal, pick(services, services.Questions.MultipleChoice))
	}
}

func spawnPortal(w donburi.World) *donburi.Entry {
	level := LevelOf(w)
	s := level.Scaler
	log.Printf("[session] portal opened on %s", level.Current().Name)
	return factory.CreatePortal(w, gamemath.Rect{
		X: level.Width - s.Scale(cfg.Portal.RightOffset),
		Y: level.GroundY - s.Scale(cfg.Portal.Height),
		W: s.Scale(cfg.Portal.Width),
		H: s.Scale(cfg.Portal.Height),
	}, cfg.Portal.GrowSeconds)
}

func pick(services *components.ServicesData, pool []cfg.Question) cfg.Question {
	return pool[services.Rand.Intn(len(pool))]
}
