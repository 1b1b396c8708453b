package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"

	cfg "github.com/wask-game/wask/config"
)

// QuestionUI shows one trivia question with a button per answer.
type QuestionUI struct {
	UI *ebitenui.UI

	// Called with the index of the chosen answer.
	OnAnswer func(choice int)
}

// NewQuestionUI builds the screen for q. heading names what a right answer
// earns.
func NewQuestionUI(heading string, q cfg.Question, onAnswer func(choice int)) *QuestionUI {
	ui := &QuestionUI{OnAnswer: onAnswer}
	ui.buildUI(heading, q)
	return ui
}

func (ui *QuestionUI) buildUI(heading string, q cfg.Question) {
	t := newTheme()
	root, column := t.root(cfg.UI.Panel)

	column.AddChild(t.label(heading, &t.largeFace, cfg.UI.Collectible))
	column.AddChild(widget.NewText(
		widget.TextOpts.Text(q.Text, &t.normalFace, cfg.UI.Text),
		widget.TextOpts.MaxWidth(float64(t.width)*0.8),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	))

	for i, answer := range q.Answers {
		choice := i
		column.AddChild(t.button(answerLabel(q, i, answer), 0.5, func() {
			if ui.OnAnswer != nil {
				ui.OnAnswer(choice)
			}
		}))
	}

	ui.UI = &ebitenui.UI{Container: root}
}

// answerLabel prefixes each answer with its keyboard shortcut.
func answerLabel(q cfg.Question, i int, answer string) string {
	if len(q.Answers) == len(cfg.TrueFalseAnswers) && q.Answers[0] == cfg.TrueFalseAnswers[0] {
		return fmt.Sprintf("[%s] %s", answer[:1], answer)
	}
	return fmt.Sprintf("[%d] %s", i+1, answer)
}

func (ui *QuestionUI) Update() {
	ui.UI.Update()
}
