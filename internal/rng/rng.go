// ABOUTME: Injectable random source used by every generator.
// ABOUTME: Wraps math/rand/v2 and provides integer, float, choice, and coin-flip helpers.

package rng

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source yields uniformly distributed floats in [0, 1).
// *rand.Rand satisfies it, so tests can hand in a seeded generator or a Sequence.
type Source interface {
	Float64() float64
}

// New returns a PCG-backed source. A zero seed picks one from the clock.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Intn returns an integer in [0, n). n <= 0 returns 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Between returns an integer uniformly drawn from [lo, hi], both inclusive.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + Intn(src, hi-lo+1)
}

// Float returns a float in [lo, hi) rounded to two decimals.
func Float(src Source, lo, hi float64) float64 {
	return math.Round((lo+src.Float64()*(hi-lo))*100) / 100
}

// Chance reports whether a draw lands under p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Duration returns a duration uniformly drawn from [lo, hi].
func Duration(src Source, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(src.Float64()*float64(hi-lo))
}

// Choice picks one element uniformly. Panics on an empty slice.
func Choice[T any](src Source, items []T) T {
	return items[Intn(src, len(items))]
}

// Sequence replays a fixed list of draws, cycling when exhausted.
// Values are clamped into [0, 1).
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence builds a Sequence from the given draws.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	return s.pos
}
