package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
)

// ResultAction is one button on the end-of-run screen.
type ResultAction struct {
	Label   string
	OnClick func()
}

// ResultUI is the "YOU DIED" / "YOU WIN" screen.
type ResultUI struct {
	UI *ebitenui.UI
}

// NewResultUI builds an end-of-run screen with the given headline, the frozen
// run time and one button per action.
func NewResultUI(headline string, headlineColor color.Color, final time.Duration, best time.Duration, actions []ResultAction) *ResultUI {
	ui := &ResultUI{}
	ui.buildUI(headline, headlineColor, final, best, actions)
	return ui
}

func (ui *ResultUI) buildUI(headline string, headlineColor color.Color, final, best time.Duration, actions []ResultAction) {
	t := newTheme()
	root, column := t.root(color.Black)

	column.AddChild(t.label(headline, &t.titleFace, headlineColor))
	column.AddChild(t.label(FormatFinalTime(final), &t.largeFace, color.White))
	if best > 0 {
		column.AddChild(t.label(fmt.Sprintf("Best: %.2fs", best.Seconds()), &t.normalFace, color.RGBA{255, 220, 0, 255}))
	}
	for _, a := range actions {
		column.AddChild(t.button(a.Label, 0.25, a.OnClick))
	}

	ui.UI = &ebitenui.UI{Container: root}
}

// FormatFinalTime renders a run time the way the result screens show it.
func FormatFinalTime(d time.Duration) string {
	return fmt.Sprintf("Final Time: %.2fs", d.Seconds())
}

func (ui *ResultUI) Update() {
	ui.UI.Update()
}
