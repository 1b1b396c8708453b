package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title  FontName = "title"
	Large  FontName = "large"
	Medium FontName = "medium"
	Small  FontName = "small"
)

// Get returns the raw freetype face.
func (f FontName) Get() font.Face {
	return getFont(f).raw
}

// Face returns the face wrapped for ebiten text drawing and ebitenui.
func (f FontName) Face() text.Face {
	return getFont(f).face
}

type loadedFont struct {
	raw  font.Face
	face text.Face
}

var (
	fonts = map[FontName]loadedFont{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	raw := truetype.NewFace(fontData, &truetype.Options{Size: size})
	fonts[name] = loadedFont{raw: raw, face: text.NewGoXFace(raw)}
	return nil
}

// SizesFor returns the point size of each font for a screen height, so text
// keeps its proportion on any display.
func SizesFor(screenHeight int) map[FontName]float64 {
	h := float64(screenHeight)
	return map[FontName]float64{
		Title:  max(24, h*0.12),
		Large:  max(20, h*0.08),
		Medium: max(16, h*0.05),
		Small:  max(12, h*0.035),
	}
}

// LoadAll loads every font from Go Regular, sized for the screen height.
func LoadAll(screenHeight int) error {
	for name, size := range SizesFor(screenHeight) {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func getFont(name FontName) loadedFont {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
