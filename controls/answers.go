package controls

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = [][]ebiten.Key{
	{ebiten.Key1, ebiten.KeyNumpad1},
	{ebiten.Key2, ebiten.KeyNumpad2},
	{ebiten.Key3, ebiten.KeyNumpad3},
	{ebiten.Key4, ebiten.KeyNumpad4},
}

// AnswerPressed returns the answer index picked from the keyboard this frame:
// T/F for true/false questions, 1 to n otherwise.
func AnswerPressed(n int, trueFalse bool) (int, bool) {
	if trueFalse {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyT):
			return 0, true
		case inpututil.IsKeyJustPressed(ebiten.KeyF):
			return 1, true
		}
	}
	for i := 0; i < n && i < len(digitKeys); i++ {
		for _, k := range digitKeys[i] {
			if inpututil.IsKeyJustPressed(k) {
				return i, true
			}
		}
	}
	return 0, false
}
