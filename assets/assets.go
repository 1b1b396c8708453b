package assets

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/wask-game/wask/assets/levels"
	"github.com/wask-game/wask/shared/leveldata"
)

// LoadImage decodes a PNG or JPEG image from fsys.
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// LoadOptionalImage is LoadImage for decorative art: a missing or broken
// file is logged and yields nil.
func LoadOptionalImage(fsys fs.FS, path string) *ebiten.Image {
	img, err := LoadImage(fsys, path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return nil
	}
	return img
}

// LoadLevels reads the level templates from dir when set, else from the
// embedded TMX files. Anything unreadable falls back to the built-in levels.
func LoadLevels(fsys fs.FS, dir string) []*leveldata.Template {
	if fsys == nil {
		fsys, dir = levels.FS, "."
	}
	templates, err := leveldata.LoadAll(fsys, dir)
	if err != nil {
		log.Printf("Warning: Could not load levels, using built-in: %v", err)
		return leveldata.Builtin()
	}
	return templates
}
