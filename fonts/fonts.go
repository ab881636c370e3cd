package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Sans      FontName = "sans"
	SansBold  FontName = "sans-bold"
	SansTitle FontName = "sans-title"
	SansSmall FontName = "sans-small"
)

// Point size for every face the game registers.
var sizes = map[FontName]float64{
	Sans:      10,
	SansBold:  20,
	SansTitle: 32,
	SansSmall: 12,
}

var faces = map[FontName]font.Face{}

// LoadAll parses the ttf once and builds a face for each entry in the size
// table. Must run before any Get.
func LoadAll(ttf []byte) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	for name, size := range sizes {
		faces[name] = truetype.NewFace(parsed, &truetype.Options{Size: size})
	}
	return nil
}

func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not loaded", f))
	}
	return face
}
