package poster

import (
	"math"

	"github.com/musecli/muse/pkg/errors"
)

// Contour returns a closed polygon approximating a circle of the given
// center and radius, perturbed by multiplicative radial noise.
//
// The points angles are evenly spaced over exactly one full turn, 0 to 2π
// inclusive, so the first and last angle coincide and the contour closes.
// At each angle an independent noise sample n in [-0.5,0.5) scales the
// local radius to radius·(1+wobble·n).
//
// Coordinates are in the same space as center and radius (the compositor
// uses the unit square) and are NOT clamped: contours near the boundary
// may overflow, which the rasterizer later clips. Wobble values near or
// above 1 may produce self-intersecting polygons; that is permitted.
//
// The noise stream derives from seed alone, so a fixed
// (center, radius, points, wobble, seed) tuple is bit-reproducible.
func Contour(center Point, radius float64, points int, wobble float64, seed int64) ([]Point, error) {
	if points < 3 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "contour points must be >= 3, got %d", points)
	}
	if wobble < 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "wobble must be >= 0, got %g", wobble)
	}

	rng := newStream(seed)
	pts := make([]Point, points)
	step := 2 * math.Pi / float64(points-1)
	for i := range pts {
		theta := float64(i) * step
		n := rng.Float64() - 0.5
		r := radius * (1 + wobble*n)
		pts[i] = Point{
			X: center.X + r*math.Cos(theta),
			Y: center.Y + r*math.Sin(theta),
		}
	}
	return pts, nil
}
