package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lafriks/go-tiled"

	"github.com/wask-game/wask/shared/gamemath"
)

// Object group names read from TMX files.
const (
	groupPlayerSpawn  = "PlayerSpawn"
	groupEnemies      = "Enemies"
	groupPlatforms    = "Platforms"
	groupCollectibles = "Collectibles"
	groupBoss         = "Boss"
)

var errNoSpawn = errors.New("missing PlayerSpawn object")

// LoadTemplate parses a TMX file into a level template. It takes an fs.FS so
// callers can pass embed.FS (release builds) or os.DirFS (hot reload).
func LoadTemplate(fsys fs.FS, tmxPath string) (*Template, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	t := &Template{Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")}
	spawnFound := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlayerSpawn:
			for _, o := range og.Objects {
				t.Spawn = Point{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case groupEnemies:
			for _, o := range og.Objects {
				t.Enemies = append(t.Enemies, EnemyLane{
					X:  o.X,
					Y:  o.Y,
					Lo: o.Properties.GetFloat("patrolLo"),
					Hi: o.Properties.GetFloat("patrolHi"),
				})
			}
		case groupPlatforms:
			for _, o := range og.Objects {
				t.Platforms = append(t.Platforms, gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupCollectibles:
			for _, o := range og.Objects {
				t.Collectibles = append(t.Collectibles, Point{X: o.X, Y: o.Y})
			}
		case groupBoss:
			for _, o := range og.Objects {
				t.Boss = &BossSpec{
					HP:           o.Properties.GetInt("hp"),
					JumpPower:    o.Properties.GetFloat("jumpPower"),
					Gravity:      o.Properties.GetFloat("gravity"),
					SpeedX:       o.Properties.GetFloat("speedX"),
					Hover:        time.Duration(o.Properties.GetInt("hoverMs")) * time.Millisecond,
					LandCooldown: time.Duration(o.Properties.GetInt("landCooldownMs")) * time.Millisecond,
					TouchDamage:  o.Properties.GetBool("touchDamage"),
				}
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, errNoSpawn)
	}
	if t.Boss != nil && t.Boss.HP <= 0 {
		return nil, fmt.Errorf("load TMX %s: boss hp must be positive", tmxPath)
	}
	return t, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns their
// templates sorted by file name, which is the play order.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Template, error) {
	pattern := levelsDir + "/*.tmx"
	if levelsDir == "" || levelsDir == "." {
		pattern = "*.tmx"
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	templates := make([]*Template, 0, len(matches))
	for _, path := range matches {
		t, err := LoadTemplate(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}
