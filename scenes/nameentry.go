package scenes

import (
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/systems"
	"github.com/wask-game/wask/ui"
)

// NameEntryScene collects the player's details before a run.
type NameEntryScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	entryUI      *ui.NameEntryUI
	once         sync.Once
}

func NewNameEntryScene(sc SceneChanger, sh *Shared) *NameEntryScene {
	return &NameEntryScene{sceneChanger: sc, shared: sh}
}

func (ns *NameEntryScene) Update() {
	ns.once.Do(ns.configure)

	// M is a letter here, not the mute key.
	in := ns.shared.poll(false)
	switch {
	case in.JustPressed(cfg.ActionBack):
		_ = systems.ReturnToMenu(ns.shared.World)
	case in.JustPressed(cfg.ActionConfirm):
		ns.entryUI.Submit()
	default:
		ns.entryUI.Update()
	}

	follow(ns.sceneChanger, ns.shared, cfg.StateNameEntry)
}

func (ns *NameEntryScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.entryUI == nil {
		return
	}
	ns.entryUI.UI.Draw(screen)
}

func (ns *NameEntryScene) configure() {
	p := ns.shared.Profile
	ns.entryUI = ui.NewNameEntryUI(p.Name, p.Email, ns.start, func() {
		_ = systems.ReturnToMenu(ns.shared.World)
	})
}

func (ns *NameEntryScene) start(name, email string) {
	err := systems.StartRun(ns.shared.World, name, email)
	if errors.Is(err, systems.ErrNameRequired) {
		ns.entryUI.SetStatus("Please enter a name")
	}
}
