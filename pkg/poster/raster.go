package poster

import (
	"math"
	"sort"
)

// inkColor is the outline color used when Stroke is enabled.
var inkColor = Color{0.1, 0.1, 0.1}

// canvas is the mutable working surface for one generation call. Channels
// are float64 in [0,1] until the terminal quantization to a Buffer; the
// canvas itself never outlives the call.
type canvas struct {
	w, h int
	pix  []float64 // row-major h×w×3
}

// newCanvas allocates a canvas filled with the background color.
func newCanvas(w, h int, bg Color) *canvas {
	c := &canvas{w: w, h: h, pix: make([]float64, w*h*3)}
	for i := 0; i < len(c.pix); i += 3 {
		c.pix[i] = bg[0]
		c.pix[i+1] = bg[1]
		c.pix[i+2] = bg[2]
	}
	return c
}

// blend composites col over the pixel at (x,y) with the given alpha.
// Out-of-bounds coordinates are ignored.
func (c *canvas) blend(x, y int, col Color, alpha float64) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := (y*c.w + x) * 3
	inv := 1 - alpha
	c.pix[i] = c.pix[i]*inv + col[0]*alpha
	c.pix[i+1] = c.pix[i+1]*inv + col[1]*alpha
	c.pix[i+2] = c.pix[i+2]*inv + col[2]*alpha
}

// fillPolygon paints the interior of a closed polygon (pixel coordinates)
// using an even-odd scanline fill. Spans outside the canvas are clipped.
// A pixel is inside when its center (x+0.5, y+0.5) is inside the polygon.
func (c *canvas) fillPolygon(poly []Point, col Color, alpha float64) {
	if len(poly) < 3 {
		return
	}

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(int(math.Floor(minY)), 0)
	y1 := min(int(math.Ceil(maxY)), c.h-1)

	xs := make([]float64, 0, 8)
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5

		xs = xs[:0]
		for i := range poly {
			p1 := poly[i]
			p2 := poly[(i+1)%len(poly)]
			// Edge crosses the scanline when exactly one endpoint is below it.
			if (p1.Y <= yc) == (p2.Y <= yc) {
				continue
			}
			t := (yc - p1.Y) / (p2.Y - p1.Y)
			xs = append(xs, p1.X+t*(p2.X-p1.X))
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(math.Ceil(xs[i]-0.5)), 0)
			x1 := min(int(math.Floor(xs[i+1]-0.5)), c.w-1)
			for x := x0; x <= x1; x++ {
				c.blend(x, y, col, alpha)
			}
		}
	}
}

// strokePolygon draws the closed outline of a polygon (pixel coordinates)
// by stepping each segment one pixel at a time. Consecutive duplicate
// pixels are skipped so joints are not blended twice within a segment.
func (c *canvas) strokePolygon(poly []Point, col Color, alpha float64) {
	if len(poly) < 2 {
		return
	}
	lastX, lastY := math.MinInt32, math.MinInt32
	for i := range poly {
		p1 := poly[i]
		p2 := poly[(i+1)%len(poly)]
		dx, dy := p2.X-p1.X, p2.Y-p1.Y
		steps := max(int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))), 1)
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			x := int(math.Floor(p1.X + t*dx))
			y := int(math.Floor(p1.Y + t*dy))
			if x == lastX && y == lastY {
				continue
			}
			c.blend(x, y, col, alpha)
			lastX, lastY = x, y
		}
	}
}

// composite paints all layers for the given parameters onto a fresh canvas,
// strictly in insertion order (painter's algorithm). Layer i derives every
// random quantity from the stream seeded baseSeed+i: its center (two
// uniforms in [0.3,0.7]), its radius factor in [0.85,1.15], and its wobble
// factor in [0.8,1.2]; the contour noise derives from the same layer seed.
func composite(p Params, baseSeed int64, palette []Color) *canvas {
	c := newCanvas(p.Width, p.Height, p.Background)
	w, h := float64(p.Width), float64(p.Height)

	for i := 0; i < p.Layers; i++ {
		layerSeed := baseSeed + int64(i)
		rng := newStream(layerSeed)

		center := Point{
			X: 0.3 + rng.Float64()*0.4,
			Y: 0.3 + rng.Float64()*0.4,
		}
		// Later layers shrink in expectation, giving the receding look.
		shrink := 1 - float64(i)/float64(p.Layers+2)
		radius := p.BaseRadius * shrink * (0.85 + rng.Float64()*0.3)
		wobble := p.Wobble * (0.8 + rng.Float64()*0.4)

		contour, err := Contour(center, radius, DefaultContourPoints, wobble, layerSeed)
		if err != nil {
			// Unreachable with validated Params; constants satisfy Contour's checks.
			continue
		}

		poly := make([]Point, len(contour))
		for j, pt := range contour {
			poly[j] = Point{X: pt.X * w, Y: pt.Y * h}
		}

		c.fillPolygon(poly, palette[i], DefaultFillAlpha)
		if p.Stroke {
			c.strokePolygon(poly, inkColor, p.StrokeAlpha)
		}
	}
	return c
}

// buffer quantizes the canvas to an 8-bit RGB Buffer. This is the terminal
// step of a generation: the returned buffer is never mutated afterwards.
func (c *canvas) buffer() *Buffer {
	pix := make([]uint8, len(c.pix))
	for i, v := range c.pix {
		pix[i] = uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
	}
	return &Buffer{width: c.w, height: c.h, pix: pix}
}
