package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"

	cfg "github.com/wask-game/wask/config"
)

// NameEntryUI asks for the player's name and an optional email before a run.
type NameEntryUI struct {
	UI *ebitenui.UI

	OnStart  func(name, email string)
	OnGoBack func()

	nameInput   *widget.TextInput
	emailInput  *widget.TextInput
	statusLabel *widget.Label
}

// NewNameEntryUI builds the form prefilled with the last name and email used.
func NewNameEntryUI(name, email string, onStart func(name, email string), onGoBack func()) *NameEntryUI {
	ui := &NameEntryUI{
		OnStart:  onStart,
		OnGoBack: onGoBack,
	}
	ui.buildUI()
	ui.nameInput.SetText(name)
	ui.emailInput.SetText(email)
	ui.nameInput.Focus(true)
	return ui
}

func (ui *NameEntryUI) buildUI() {
	t := newTheme()
	root, column := t.root(cfg.UI.Panel)

	column.AddChild(t.label("Enter your details", &t.largeFace, cfg.UI.Text))

	column.AddChild(t.label("Name", &t.normalFace, color.RGBA{200, 200, 200, 255}))
	ui.nameInput = t.textInput("Your name", cfg.Session.MaxNameLength)
	column.AddChild(ui.nameInput)

	column.AddChild(t.label("Email (optional)", &t.normalFace, color.RGBA{200, 200, 200, 255}))
	ui.emailInput = t.textInput("you@example.com", cfg.Session.MaxEmailLength)
	column.AddChild(ui.emailInput)

	ui.statusLabel = t.label("", &t.smallFace, color.RGBA{255, 200, 100, 255})
	column.AddChild(ui.statusLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(t.width/60),
		)),
	)
	buttons.AddChild(t.button("Start", 0.18, ui.Submit))
	buttons.AddChild(t.button("Back", 0.18, ui.OnGoBack))
	column.AddChild(buttons)

	column.AddChild(t.label("Tab: switch field   Enter: start   Esc: back", &t.smallFace, cfg.UI.Text))

	ui.UI = &ebitenui.UI{Container: root}
}

// Submit hands the current field values to OnStart.
func (ui *NameEntryUI) Submit() {
	if ui.OnStart != nil {
		ui.OnStart(ui.nameInput.GetText(), ui.emailInput.GetText())
	}
}

func (ui *NameEntryUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *NameEntryUI) Update() {
	ui.UI.Update()
}
