package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/musecli/muse/pkg/errors"
	"github.com/musecli/muse/pkg/poster"
)

// posterPreset mirrors poster.Params as a TOML document. All fields are
// optional; unset fields keep their defaults. Example:
//
//	width = 1200
//	height = 1600
//	layers = 8
//	wobble = 0.5
//	radius = 0.4
//	seed = 42
//	background = "#f7f5ee"
//	stroke = true
//	stroke_alpha = 0.5
type posterPreset struct {
	Width       *int     `toml:"width"`
	Height      *int     `toml:"height"`
	Layers      *int     `toml:"layers"`
	Wobble      *float64 `toml:"wobble"`
	Radius      *float64 `toml:"radius"`
	Seed        *int64   `toml:"seed"`
	Background  *string  `toml:"background"`
	Stroke      *bool    `toml:"stroke"`
	StrokeAlpha *float64 `toml:"stroke_alpha"`
}

// loadPreset reads a TOML preset file and applies it on top of the default
// poster parameters. Validation is deferred to poster.Generate.
func loadPreset(path string) (poster.Params, error) {
	p := poster.DefaultParams()

	var preset posterPreset
	if _, err := toml.DecodeFile(path, &preset); err != nil {
		if os.IsNotExist(err) {
			return p, errors.New(errors.ErrCodeFileNotFound, "preset file not found: %s", path)
		}
		return p, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse preset %s", path)
	}

	if preset.Width != nil {
		p.Width = *preset.Width
	}
	if preset.Height != nil {
		p.Height = *preset.Height
	}
	if preset.Layers != nil {
		p.Layers = *preset.Layers
	}
	if preset.Wobble != nil {
		p.Wobble = *preset.Wobble
	}
	if preset.Radius != nil {
		p.BaseRadius = *preset.Radius
	}
	if preset.Seed != nil {
		seed := *preset.Seed
		p.Seed = &seed
	}
	if preset.Background != nil {
		bg, err := poster.ParseColor(*preset.Background)
		if err != nil {
			return p, err
		}
		p.Background = bg
	}
	if preset.Stroke != nil {
		p.Stroke = *preset.Stroke
	}
	if preset.StrokeAlpha != nil {
		p.StrokeAlpha = *preset.StrokeAlpha
	}
	return p, nil
}
