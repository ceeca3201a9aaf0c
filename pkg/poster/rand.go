package poster

import "math/rand/v2"

// newStream creates a random stream scoped to one sub-generator. Streams
// are never shared between calls or layers, so reproducibility of one
// layer does not depend on how many draws another layer made.
func newStream(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0xdeadbeef))
}

// freshSeed draws a base seed for non-reproducible generations.
func freshSeed() int64 {
	return int64(rand.Uint64())
}
