package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/systems"
	"github.com/wask-game/wask/ui"
)

// ResultScene displays the end-of-run screen for a loss or a win
type ResultScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	resultUI     *ui.ResultUI
	state        cfg.SessionState
	primary      func()
	once         sync.Once
}

// NewResultScene creates a new result scene
func NewResultScene(sc SceneChanger, sh *Shared) *ResultScene {
	return &ResultScene{sceneChanger: sc, shared: sh}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)

	in := rs.shared.poll(true)
	switch {
	case in.JustPressed(cfg.ActionConfirm):
		rs.primary()
	case in.JustPressed(cfg.ActionBack):
		systems.Quit(rs.shared.World)
	default:
		rs.resultUI.Update()
	}

	follow(rs.sceneChanger, rs.shared, rs.state)
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.resultUI == nil {
		return
	}
	rs.resultUI.UI.Draw(screen)
}

func (rs *ResultScene) configure() {
	w := rs.shared.World
	s := systems.SessionOf(w)
	rs.state = s.State
	best := time.Duration(rs.shared.Profile.BestTimeS * float64(time.Second))
	quit := func() { systems.Quit(w) }

	if rs.state == cfg.StateVictory {
		rs.primary = func() { _ = systems.StartNameEntry(w) }
		rs.resultUI = ui.NewResultUI("YOU WIN", color.RGBA{0, 255, 0, 255}, s.FinalTime, best, []ui.ResultAction{
			{Label: "Restart", OnClick: rs.primary},
			{Label: "Quit", OnClick: quit},
		})
		return
	}

	rs.primary = func() { _ = systems.Respawn(w) }
	rs.resultUI = ui.NewResultUI("YOU DIED", color.RGBA{255, 0, 0, 255}, s.FinalTime, best, []ui.ResultAction{
		{Label: "Respawn", OnClick: rs.primary},
		{Label: "Main Menu", OnClick: func() { _ = systems.ReturnToMenu(w) }},
		{Label: "Quit", OnClick: quit},
	})
}
