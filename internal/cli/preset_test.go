package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/musecli/muse/pkg/errors"
	"github.com/musecli/muse/pkg/poster"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
width = 1200
height = 1600
layers = 8
wobble = 0.5
radius = 0.4
seed = 42
background = "#112233"
stroke = true
stroke_alpha = 0.5
`)

	p, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset() error: %v", err)
	}

	if p.Width != 1200 || p.Height != 1600 {
		t.Errorf("dimensions = %dx%d, want 1200x1600", p.Width, p.Height)
	}
	if p.Layers != 8 {
		t.Errorf("layers = %d, want 8", p.Layers)
	}
	if p.Wobble != 0.5 {
		t.Errorf("wobble = %g, want 0.5", p.Wobble)
	}
	if p.BaseRadius != 0.4 {
		t.Errorf("radius = %g, want 0.4", p.BaseRadius)
	}
	if p.Seed == nil || *p.Seed != 42 {
		t.Errorf("seed = %v, want 42", p.Seed)
	}
	if !p.Stroke || p.StrokeAlpha != 0.5 {
		t.Errorf("stroke = %v/%g, want true/0.5", p.Stroke, p.StrokeAlpha)
	}
	want := poster.Color{0x11 / 255.0, 0x22 / 255.0, 0x33 / 255.0}
	if p.Background != want {
		t.Errorf("background = %v, want %v", p.Background, want)
	}
}

func TestLoadPresetPartial(t *testing.T) {
	path := writePreset(t, "layers = 3\n")

	p, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset() error: %v", err)
	}

	defaults := poster.DefaultParams()
	if p.Layers != 3 {
		t.Errorf("layers = %d, want 3", p.Layers)
	}
	if p.Width != defaults.Width || p.Height != defaults.Height {
		t.Errorf("unset fields should keep defaults, got %dx%d", p.Width, p.Height)
	}
	if p.Seed != nil {
		t.Errorf("seed should stay unset, got %v", *p.Seed)
	}
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := loadPreset(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadPresetInvalidTOML(t *testing.T) {
	path := writePreset(t, "width = [not toml")

	_, err := loadPreset(path)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestLoadPresetBadColor(t *testing.T) {
	path := writePreset(t, `background = "#12"`)

	_, err := loadPreset(path)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}
