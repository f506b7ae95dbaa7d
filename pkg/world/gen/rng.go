package gen

import (
	"math"
	"math/rand"
)

// decorRNG is the deterministic stream that drives tree and plant placement.
type decorRNG struct {
	state int64
}

func newDecorRNG(heightSeed, mountainSeed int64, salt int64) *decorRNG {
	s := heightSeed ^ (mountainSeed*341873128712 + salt*132897987541)
	return &decorRNG{state: s}
}

func (r *decorRNG) next() int64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// nextN returns a value in [0, n). n must be positive.
func (r *decorRNG) nextN(n int) int {
	v := int(r.next()>>33) % n
	if v < 0 {
		v = -v
	}
	return v
}

// between returns a value in [lo, hi).
func (r *decorRNG) between(lo, hi int) int {
	return lo + r.nextN(hi-lo)
}

// Reseed draws a fresh pair of terrain and mountain seeds. Unlike Generate it
// is not deterministic.
func Reseed() (heightSeed, mountainSeed int64) {
	return rand.Int63n(math.MaxInt32), rand.Int63n(math.MaxInt32)
}
