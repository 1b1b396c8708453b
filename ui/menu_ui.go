package ui

import (
	"github.com/ebitenui/ebitenui"

	cfg "github.com/wask-game/wask/config"
)

// MenuUI is the title screen.
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay        func()
	OnLeaderboard func()
	OnQuit        func()
}

func NewMenuUI(onPlay, onLeaderboard, onQuit func()) *MenuUI {
	ui := &MenuUI{
		OnPlay:        onPlay,
		OnLeaderboard: onLeaderboard,
		OnQuit:        onQuit,
	}
	ui.buildUI()
	return ui
}

func (ui *MenuUI) buildUI() {
	t := newTheme()
	root, column := t.root(cfg.UI.Background)

	column.AddChild(t.label("WASK", &t.titleFace, cfg.UI.Text))
	column.AddChild(t.label("Collect, answer, escape", &t.smallFace, cfg.UI.Collectible))

	play := t.button("Play", 0.25, ui.OnPlay)
	column.AddChild(play)
	column.AddChild(t.button("Leaderboard", 0.25, ui.OnLeaderboard))
	column.AddChild(t.button("Quit", 0.25, ui.OnQuit))
	column.AddChild(t.label("Enter: play   M: mute   Esc: quit", &t.smallFace, cfg.UI.Text))

	ui.UI = &ebitenui.UI{Container: root}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}
