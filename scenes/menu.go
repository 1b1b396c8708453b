package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/systems"
	"github.com/wask-game/wask/ui"
)

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, sh *Shared) *MenuScene {
	return &MenuScene{sceneChanger: sc, shared: sh}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	in := ms.shared.poll(true)
	w := ms.shared.World
	switch {
	case in.JustPressed(cfg.ActionConfirm):
		_ = systems.StartNameEntry(w)
	case in.JustPressed(cfg.ActionBack):
		systems.Quit(w)
	default:
		ms.menuUI.Update()
	}

	follow(ms.sceneChanger, ms.shared, cfg.StateMenu)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	w := ms.shared.World
	ms.menuUI = ui.NewMenuUI(
		func() { _ = systems.StartNameEntry(w) },
		func() { _ = systems.OpenLeaderboard(w) },
		func() { systems.Quit(w) },
	)
}
