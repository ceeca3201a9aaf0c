package poster

import (
	"image"
	"image/png"
	"io"
)

// Generate validates p and synthesizes the composition, returning the
// final pixel buffer. It is a pure function of its parameters: no I/O, no
// shared state, safe for concurrent calls. With an explicit Seed the
// result is bit-identical across invocations; with Seed nil each call uses
// a fresh entropy source.
func Generate(p Params) (*Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	baseSeed := freshSeed()
	if p.Seed != nil {
		baseSeed = *p.Seed
	}

	palette, err := Palette(p.Layers+1, baseSeed)
	if err != nil {
		return nil, err
	}

	return composite(p, baseSeed, palette).buffer(), nil
}

// Buffer is the immutable result of a generation: a row-major
// height×width×3 array of 8-bit RGB samples.
type Buffer struct {
	width, height int
	pix           []uint8
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Pix returns the underlying pixel data in row-major RGB order.
// The slice must not be modified.
func (b *Buffer) Pix() []uint8 { return b.pix }

// At returns the RGB sample at (x,y).
func (b *Buffer) At(x, y int) [3]uint8 {
	i := (y*b.width + x) * 3
	return [3]uint8{b.pix[i], b.pix[i+1], b.pix[i+2]}
}

// Image converts the buffer to an opaque image.RGBA for interoperability
// with the standard image packages.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			src := (y*b.width + x) * 3
			dst := img.PixOffset(x, y)
			img.Pix[dst] = b.pix[src]
			img.Pix[dst+1] = b.pix[src+1]
			img.Pix[dst+2] = b.pix[src+2]
			img.Pix[dst+3] = 0xff
		}
	}
	return img
}

// EncodePNG writes the buffer to w as a PNG image. The encoding is
// lossless: decoding yields the exact RGB samples of the buffer.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.Image())
}
