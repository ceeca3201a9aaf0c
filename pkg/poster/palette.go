package poster

import (
	"github.com/musecli/muse/pkg/errors"
)

// Palette returns k colors with each channel drawn uniformly from [0,1),
// deterministically derived from seed. The stream is scoped to this call:
// a fixed (k, seed) pair always yields the same sequence regardless of any
// other generator activity.
func Palette(k int, seed int64) ([]Color, error) {
	if k <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "palette size must be positive, got %d", k)
	}
	rng := newStream(seed)
	colors := make([]Color, k)
	for i := range colors {
		colors[i] = Color{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	return colors, nil
}
