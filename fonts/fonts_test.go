package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadAllRegistersEveryFace(t *testing.T) {
	if err := LoadAll(goregular.TTF); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	for _, name := range []FontName{Sans, SansBold, SansTitle, SansSmall} {
		if name.Get() == nil {
			t.Fatalf("no face registered for %s", name)
		}
	}
}

func TestLoadAllRejectsGarbage(t *testing.T) {
	if err := LoadAll([]byte("not a font")); err == nil {
		t.Fatal("garbage ttf accepted")
	}
}
