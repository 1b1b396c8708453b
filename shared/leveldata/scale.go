package leveldata

import "github.com/wask-game/wask/shared/gamemath"

// Scale converts the template to screen pixels. Positions use the per-axis
// factors; enemy and collectible sizes and boss speeds use the uniform one.
func (t *Template) Scale(s gamemath.Scaler, enemySize, collectibleSize float64) *Level {
	l := &Level{
		Name:  t.Name,
		Spawn: Point{X: s.X(t.Spawn.X), Y: s.Y(t.Spawn.Y)},
	}

	for _, e := range t.Enemies {
		l.Enemies = append(l.Enemies, EnemySpawn{
			Rect: gamemath.Rect{X: s.X(e.X), Y: s.Y(e.Y), W: s.Scale(enemySize), H: s.Scale(enemySize)},
			Lo:   s.X(e.Lo),
			Hi:   s.X(e.Hi),
		})
	}
	for _, p := range t.Platforms {
		l.Platforms = append(l.Platforms, gamemath.Rect{X: s.X(p.X), Y: s.Y(p.Y), W: s.X(p.W), H: s.Y(p.H)})
	}
	for _, c := range t.Collectibles {
		l.Collectibles = append(l.Collectibles, gamemath.Rect{
			X: s.X(c.X), Y: s.Y(c.Y), W: s.Scale(collectibleSize), H: s.Scale(collectibleSize),
		})
	}

	if t.Boss != nil {
		b := *t.Boss
		b.JumpPower = s.Mul(b.JumpPower)
		b.Gravity = s.Mul(b.Gravity)
		b.SpeedX = s.Mul(b.SpeedX)
		l.Boss = &b
	}
	return l
}

// ScaleAll scales a list of templates, preserving order.
func ScaleAll(templates []*Template, s gamemath.Scaler, enemySize, collectibleSize float64) []*Level {
	levels := make([]*Level, 0, len(templates))
	for _, t := range templates {
		levels = append(levels, t.Scale(s, enemySize, collectibleSize))
	}
	return levels
}
