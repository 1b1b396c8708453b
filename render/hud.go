package render

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face drawing
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"

	"github.com/wask-game/wask/components"
	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/fonts"
	"github.com/wask-game/wask/shared/gamemath"
	"github.com/wask-game/wask/systems"
)

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, face font.Face, x, y float64) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, int(x), int(y)+ascent, cfg.UI.Text)
}

// CooldownLabel formats the attack cooldown the way the HUD shows it.
func CooldownLabel(left float64) string {
	if left <= 0 {
		return "Attack Ready"
	}
	return fmt.Sprintf("Attack CD: %ds", int(math.Ceil(left)))
}

// DrawHUD renders lives, run time and attack cooldown in the top-left corner.
func DrawHUD(w donburi.World, screen *ebiten.Image) {
	s := systems.LevelOf(w).Scaler
	face := fonts.Small.Get()
	lives := components.Lives.Get(systems.PlayerOf(w))

	drawText(screen, fmt.Sprintf("Lives: %d", lives.Lives), face, s.Scale(10), s.Scale(10))
	drawText(screen, fmt.Sprintf("Time: %.2fs", systems.Elapsed(w).Seconds()), face, s.Scale(10), s.Scale(50))
	drawText(screen, CooldownLabel(systems.AttackCooldown(w).Seconds()), face, s.Scale(10), s.Scale(70))
}

func drawBossBar(screen *ebiten.Image, level *components.LevelData, boss *components.BossData) {
	s := level.Scaler
	bw := math.Trunc(math.Min(500*s.Sx, level.Width*0.4))
	x0 := math.Trunc(level.Width/2 - bw/2)
	h := s.Scale(18)

	fillRect(screen, gamemath.Rect{X: x0, Y: 10, W: bw, H: h}, cfg.UI.BossBarBack)
	if boss.Spec.HP > 0 {
		fill := max(0, bw*float64(boss.BarHP)/float64(boss.Spec.HP))
		fillRect(screen, gamemath.Rect{X: x0, Y: 10, W: fill, H: h}, cfg.UI.BossBarFill)
	}
	drawText(screen, "BOSS", fonts.Small.Get(), x0-s.Scale(60), 10)
}
