package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

// Gain adds n lives without exceeding MaxLives.
func (l *LivesData) Gain(n int) {
	l.Lives = min(l.MaxLives, l.Lives+n)
}

var Lives = donburi.NewComponentType[LivesData]()
