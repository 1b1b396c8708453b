// Package render draws the simulation state. It only reads the world.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/systems"
	"github.com/wask-game/wask/tags"
)

var drawOp = &ebiten.DrawImageOptions{}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawWorld renders the level and every live entity. When background is set
// it replaces the plain backdrop, ground and platforms.
func DrawWorld(w donburi.World, screen *ebiten.Image, background *ebiten.Image) {
	level := systems.LevelOf(w)

	if background != nil {
		drawOp.GeoM.Reset()
		b := background.Bounds()
		drawOp.GeoM.Scale(level.Width/float64(b.Dx()), level.Height/float64(b.Dy()))
		screen.DrawImage(background, drawOp)
	} else {
		screen.Fill(cfg.UI.Background)
		fillRect(screen, gamemath.Rect{
			X: 0, Y: level.GroundY, W: level.Width, H: level.Height - level.GroundY,
		}, cfg.UI.Ground)
		tags.Platform.Each(w, func(e *donburi.Entry) {
			fillRect(screen, components.Object.Get(e).Rect(), cfg.UI.Platform)
		})
	}

	tags.Hazard.Each(w, func(e *donburi.Entry) {
		fillRect(screen, components.Object.Get(e).Rect(), cfg.UI.Hazard)
	})

	fillRect(screen, components.Object.Get(systems.PlayerOf(w)).Rect(), cfg.UI.Player)

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Alive {
			fillRect(screen, components.Object.Get(e).Rect(), cfg.UI.Enemy)
		}
	})
	tags.Collectible.Each(w, func(e *donburi.Entry) {
		if !components.Collectible.Get(e).Collected {
			fillRect(screen, components.Object.Get(e).Rect(), cfg.UI.Collectible)
		}
	})

	// The portal rises out of the ground while it materializes.
	tags.Portal.Each(w, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		visible := r.H * float64(components.Portal.Get(e).Scale)
		r.Y = r.Bottom() - visible
		r.H = visible
		fillRect(screen, r, cfg.UI.Portal)
	})

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		fillRect(screen, components.Object.Get(e).Rect(), cfg.UI.Projectile)
	})

	tags.Boss.Each(w, func(e *donburi.Entry) {
		fillRect(screen, components.Object.Get(e).Rect(), cfg.UI.Boss)
		drawBossBar(screen, level, components.Boss.Get(e))
	})
}
