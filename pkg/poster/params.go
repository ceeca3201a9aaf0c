package poster

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/musecli/muse/pkg/errors"
)

// Compositing constants. These preserve the original poster look; they are
// named here so callers embedding the generator can expose them if desired.
const (
	// DefaultContourPoints is the number of angular samples per blob contour.
	DefaultContourPoints = 220

	// DefaultFillAlpha is the fixed alpha used when filling each layer.
	DefaultFillAlpha = 0.8

	// DefaultStrokeAlpha is the default outline alpha when Stroke is enabled.
	DefaultStrokeAlpha = 0.6
)

// Color is an RGB triple with each channel in [0,1].
type Color [3]float64

// ParseColor converts a hex string like "#f7f5ee" or "f7f5ee" into a Color.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, errors.New(errors.ErrCodeInvalidFormat, "color must be 6 hex digits, got %q", s)
	}
	var c Color
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, errors.New(errors.ErrCodeInvalidFormat, "color must be 6 hex digits, got %q", s)
		}
		c[i] = float64(v) / 255
	}
	return c, nil
}

// Hex renders the color as "#rrggbb", quantizing each channel to 8 bits.
func (c Color) Hex() string {
	q := func(ch float64) int {
		return int(math.Round(math.Min(math.Max(ch, 0), 1) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", q(c[0]), q(c[1]), q(c[2]))
}

// Point is a 2D coordinate. Contours use normalized unit-square
// coordinates; the rasterizer works in pixel coordinates.
type Point struct {
	X, Y float64
}

// Params describes one poster composition. It is a value object: Generate
// never mutates it, and equal Params with an explicit Seed always produce
// identical output.
type Params struct {
	Width  int // canvas width in pixels, > 0
	Height int // canvas height in pixels, > 0

	Layers     int     // number of blob layers, >= 0
	Wobble     float64 // radial noise fraction, >= 0 (values near 1 may self-intersect)
	BaseRadius float64 // first-layer radius as a fraction of the unit canvas, in (0,1]

	// Seed makes the composition reproducible. When nil, each call draws a
	// fresh base seed and the output is intentionally non-reproducible.
	Seed *int64

	Background  Color   // canvas background, channels in [0,1]
	Stroke      bool    // draw contour outlines
	StrokeAlpha float64 // outline alpha in [0,1], used when Stroke is set
}

// DefaultParams returns the stock poster settings: a 900×1400 canvas with
// six layers on a warm paper background.
func DefaultParams() Params {
	return Params{
		Width:       900,
		Height:      1400,
		Layers:      6,
		Wobble:      0.35,
		BaseRadius:  0.42,
		Background:  Color{0.97, 0.96, 0.93},
		StrokeAlpha: DefaultStrokeAlpha,
	}
}

// Validate checks the parameters and returns an INVALID_PARAMETER error
// naming the offending field and its constraint. It performs no generation
// work.
func (p Params) Validate() error {
	if p.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "width must be positive, got %d", p.Width)
	}
	if p.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "height must be positive, got %d", p.Height)
	}
	if p.Layers < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "layers must be >= 0, got %d", p.Layers)
	}
	if p.Wobble < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "wobble must be >= 0, got %g", p.Wobble)
	}
	if p.BaseRadius <= 0 || p.BaseRadius > 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "base radius must be in (0,1], got %g", p.BaseRadius)
	}
	if p.StrokeAlpha < 0 || p.StrokeAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "stroke alpha must be in [0,1], got %g", p.StrokeAlpha)
	}
	for i, ch := range p.Background {
		if ch < 0 || ch > 1 {
			return errors.New(errors.ErrCodeInvalidParameter, "background channel %d must be in [0,1], got %g", i, ch)
		}
	}
	return nil
}
