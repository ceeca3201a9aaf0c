// Package poster generates layered "blob" poster compositions.
//
// # Overview
//
// A poster is a deterministic-given-seed composition of wobbly closed
// polygons (blobs) of varying size, color, and position, painted back to
// front onto a canvas and returned as an RGB pixel buffer.
//
// The pipeline has four stages:
//
//   - Palette: k colors derived from the seed
//   - Contour: a circle perturbed by multiplicative radial noise
//   - Compositor: alpha-blended scanline rasterization, painter's order
//   - Generate: validation and orchestration
//
// # Reproducible Randomness
//
// Every random stream is scoped to a single Generate call. The palette
// stream derives from the seed, and each layer derives its own stream
// from seed+i, so a layer's geometry is reproducible independently of
// iteration order:
//
//	seed := int64(42)
//	buf, err := poster.Generate(poster.Params{..., Seed: &seed})
//
// Two calls with identical parameters and an explicit seed produce
// bit-identical buffers. Omitting the seed forfeits reproducibility: each
// call draws a fresh base seed and composes from that.
//
// # Rasterization
//
// The compositor operates directly on an explicit float pixel buffer with
// an even-odd scanline polygon fill; there is no dependency on a plotting
// toolkit. Contours may extend past the canvas (large radii, off-center
// blobs); they are clipped to the canvas bounds, never rejected.
//
// # Export
//
// The resulting [Buffer] is row-major height×width×3, 8-bit RGB, and
// encodes losslessly to PNG via [Buffer.EncodePNG].
package poster
