package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	cfg "github.com/wask-game/wask/config"
	"github.com/wask-game/wask/fonts"
)

// theme holds the faces and sizes shared by every screen. Sizes follow the
// screen so the layout keeps its proportions on any display.
type theme struct {
	titleFace  text.Face
	largeFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	width, height int
}

func newTheme() *theme {
	return &theme{
		titleFace:  fonts.Title.Face(),
		largeFace:  fonts.Large.Face(),
		normalFace: fonts.Medium.Face(),
		smallFace:  fonts.Small.Face(),
		width:      cfg.C.Width,
		height:     cfg.C.Height,
	}
}

// root returns a full-screen container that centers one vertical column.
func (t *theme) root(bg color.Color) (*widget.Container, *widget.Container) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(t.height/50),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(column)
	return rootContainer, column
}

func (t *theme) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: c,
		}),
	)
}

// button is a white menu button sized relative to the screen.
func (t *theme) button(label string, widthFrac float64, onClick func()) *widget.Button {
	w := int(float64(t.width) * widthFrac)
	h := t.height * 8 / 100
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{220, 220, 220, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{255, 255, 255, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{180, 180, 180, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{90, 90, 90, 255}),
		}),
		widget.ButtonOpts.Text(label, &t.normalFace, &widget.ButtonTextColor{
			Idle:     color.Black,
			Hover:    color.Black,
			Pressed:  color.RGBA{40, 40, 40, 255},
			Disabled: color.RGBA{140, 140, 140, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (t *theme) textInput(placeholder string, maxLen int) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(t.width*64/100, t.height*7/100)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 50, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.TextInputOpts.Face(&t.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(8)),
		widget.TextInputOpts.Validation(func(newInputText string) (bool, *string) {
			return len([]rune(newInputText)) <= maxLen, nil
		}),
	)
}
