package poster

import (
	"testing"

	"github.com/musecli/muse/pkg/errors"
)

func TestPalette(t *testing.T) {
	colors, err := Palette(7, 42)
	if err != nil {
		t.Fatalf("Palette() error: %v", err)
	}
	if len(colors) != 7 {
		t.Fatalf("len = %d, want 7", len(colors))
	}
	for i, c := range colors {
		for ch, v := range c {
			if v < 0 || v >= 1 {
				t.Errorf("color %d channel %d = %g, want [0,1)", i, ch, v)
			}
		}
	}
}

func TestPaletteDeterminism(t *testing.T) {
	a, _ := Palette(5, 42)
	b, _ := Palette(5, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("color %d differs across calls with same seed: %v vs %v", i, a[i], b[i])
		}
	}

	c, _ := Palette(5, 43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("palettes for different seeds should differ")
	}
}

func TestPaletteStreamIsolation(t *testing.T) {
	// Drawing another palette in between must not perturb the sequence.
	a, _ := Palette(3, 7)
	_, _ = Palette(100, 99)
	b, _ := Palette(3, 7)
	if a[0] != b[0] || a[2] != b[2] {
		t.Error("palette stream leaked state between calls")
	}
}

func TestPaletteInvalidSize(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, err := Palette(k, 42)
		if !errors.Is(err, errors.ErrCodeInvalidParameter) {
			t.Errorf("Palette(%d) error = %v, want INVALID_PARAMETER", k, err)
		}
	}
}
