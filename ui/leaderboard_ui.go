package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/leaderboard"
)

// Row colours for the podium, then everyone else.
var rankColors = []color.Color{
	color.RGBA{255, 215, 0, 255},
	color.RGBA{192, 192, 192, 255},
	color.RGBA{205, 127, 50, 255},
}

// LeaderboardUI lists the fastest runs fetched from the leaderboard service.
type LeaderboardUI struct {
	UI *ebitenui.UI

	OnRefresh func()
	OnGoBack  func()

	theme       *theme
	rows        *widget.Container
	statusLabel *widget.Label
	refreshBtn  *widget.Button
}

func NewLeaderboardUI(onRefresh, onGoBack func()) *LeaderboardUI {
	ui := &LeaderboardUI{
		OnRefresh: onRefresh,
		OnGoBack:  onGoBack,
		theme:     newTheme(),
	}
	ui.buildUI()
	return ui
}

func (ui *LeaderboardUI) buildUI() {
	t := ui.theme
	root, column := t.root(cfg.UI.Background)

	column.AddChild(t.label("LEADERBOARD", &t.titleFace, cfg.UI.Text))

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	ui.rows = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(t.width*6/10, t.height/3)),
	)
	column.AddChild(ui.rows)

	ui.statusLabel = t.label("", &t.smallFace, color.RGBA{255, 200, 100, 255})
	column.AddChild(ui.statusLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(t.width/60),
		)),
	)
	ui.refreshBtn = t.button("Refresh", 0.18, ui.OnRefresh)
	buttons.AddChild(ui.refreshBtn)
	buttons.AddChild(t.button("Back", 0.18, ui.OnGoBack))
	column.AddChild(buttons)

	ui.UI = &ebitenui.UI{Container: root}
}

// RowText formats one leaderboard line.
func RowText(rank int, r leaderboard.Record) string {
	return fmt.Sprintf("%2d.  %-20s  %8.2fs  %s", rank, r.Name, r.TimeS, r.Outcome)
}

// SetRecords replaces the table contents. records must already be sorted.
func (ui *LeaderboardUI) SetRecords(records []leaderboard.Record) {
	t := ui.theme
	ui.rows.RemoveChildren()
	if len(records) == 0 {
		ui.rows.AddChild(t.label("No scores yet", &t.normalFace, cfg.UI.Text))
		return
	}
	for i, r := range records {
		c := color.Color(cfg.UI.Text)
		if i < len(rankColors) {
			c = rankColors[i]
		}
		ui.rows.AddChild(t.label(RowText(i+1, r), &t.normalFace, c))
	}
}

func (ui *LeaderboardUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LeaderboardUI) SetRefreshing(refreshing bool) {
	if ui.refreshBtn != nil {
		ui.refreshBtn.GetWidget().Disabled = refreshing
	}
}

func (ui *LeaderboardUI) Update() {
	ui.UI.Update()
}
