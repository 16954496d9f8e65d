// ABOUTME: Weighted categorical sampling over a finite set of labels.
// ABOUTME: Draws one label with probability proportional to its weight.

package sampler

import (
	"fmt"
	"math"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/rng"
)

// Outcome is one labelled entry of a categorical distribution.
type Outcome[T any] struct {
	Label  T
	Weight float64
}

// Weighted zips parallel label and weight slices into outcomes.
// Mismatched lengths are a programming error and panic.
func Weighted[T any](labels []T, weights []float64) []Outcome[T] {
	if len(labels) != len(weights) {
		panic(fmt.Sprintf("sampler: %d labels but %d weights", len(labels), len(weights)))
	}
	out := make([]Outcome[T], len(labels))
	for i := range labels {
		out[i] = Outcome[T]{Label: labels[i], Weight: weights[i]}
	}
	return out
}

// Validate checks that every weight is finite and non-negative and that the
// total is positive. It returns the total weight.
func Validate[T any](outcomes []Outcome[T]) (float64, error) {
	if len(outcomes) == 0 {
		return 0, seederrors.Invalid("outcomes", "distribution is empty")
	}
	var total float64
	for i, o := range outcomes {
		if math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) {
			return 0, seederrors.Invalid("weight", "outcome %d (%v) has non-finite weight", i, o.Label)
		}
		if o.Weight < 0 {
			return 0, seederrors.Invalid("weight", "outcome %d (%v) has negative weight %v", i, o.Label, o.Weight)
		}
		total += o.Weight
	}
	if total <= 0 {
		return 0, seederrors.Invalid("weights", "sum must be > 0, got %v", total)
	}
	return total, nil
}

// Sample draws one label. r is drawn uniformly in [0, W); each weight is
// subtracted in order and the first outcome that brings the remainder to <= 0
// wins. Zero-weight outcomes are skipped so they can never be selected, even
// when a draw lands exactly on a cumulative boundary.
//
// If rounding leaves a positive residual after the last outcome, the last
// positive-weight outcome is returned. This fallback is intentional.
func Sample[T any](src rng.Source, outcomes []Outcome[T]) (T, error) {
	total, err := Validate(outcomes)
	if err != nil {
		var zero T
		return zero, err
	}

	r := src.Float64() * total
	last := -1
	for i, o := range outcomes {
		if o.Weight == 0 {
			continue
		}
		last = i
		r -= o.Weight
		if r <= 0 {
			return o.Label, nil
		}
	}
	return outcomes[last].Label, nil
}

// MustSample is Sample for package-level distributions whose validity is
// covered by tests. It panics on invalid input.
func MustSample[T any](src rng.Source, outcomes []Outcome[T]) T {
	v, err := Sample(src, outcomes)
	if err != nil {
		panic(err)
	}
	return v
}
