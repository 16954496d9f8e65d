// ABOUTME: Multi-stage causal funnel simulation for engagement records.
// ABOUTME: A stage is only tried when its prerequisite was reached; reached stages get strictly later timestamps.

package funnel

import (
	"math"
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/rng"
)

// Stage is one step of a funnel. After names the prerequisite stage; the root
// stage leaves it empty. A reached stage is stamped at its parent's time plus a
// delay drawn from [MinDelay, MaxDelay]. The root's parent time is the anchor.
type Stage struct {
	Name     string
	After    string
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Definition is an ordered list of stages. Every prerequisite must be declared
// before the stage that depends on it. Several stages may share a prerequisite,
// which makes them independent branches.
type Definition struct {
	Stages []Stage
}

// Validate checks names, prerequisite order, and delay windows.
func (d Definition) Validate() error {
	if len(d.Stages) == 0 {
		return seederrors.Invalid("stages", "funnel has no stages")
	}
	seen := make(map[string]bool, len(d.Stages))
	for i, s := range d.Stages {
		if s.Name == "" {
			return seederrors.Invalid("stages", "stage %d has no name", i)
		}
		if seen[s.Name] {
			return seederrors.Invalid("stages", "duplicate stage %q", s.Name)
		}
		if s.After != "" && !seen[s.After] {
			return seederrors.Invalid("stages", "stage %q depends on %q which is not declared before it", s.Name, s.After)
		}
		if s.MinDelay <= 0 {
			return seederrors.Invalid("stages", "stage %q min delay must be > 0, got %s", s.Name, s.MinDelay)
		}
		if s.MaxDelay < s.MinDelay {
			return seederrors.Invalid("stages", "stage %q max delay %s is below min delay %s", s.Name, s.MaxDelay, s.MinDelay)
		}
		seen[s.Name] = true
	}
	return nil
}

// Result is the simulated state of one stage.
type Result struct {
	Name    string
	Reached bool
	At      *time.Time
}

// Outcome holds every stage's result in definition order.
type Outcome struct {
	Results []Result
}

// Reached reports whether the named stage was reached.
func (o Outcome) Reached(name string) bool {
	for _, r := range o.Results {
		if r.Name == name {
			return r.Reached
		}
	}
	return false
}

// At returns the named stage's timestamp, or nil if it was not reached.
func (o Outcome) At(name string) *time.Time {
	for _, r := range o.Results {
		if r.Name == name {
			return r.At
		}
	}
	return nil
}

// Map renders the outcome as stage → bool and stage_at → *time.Time.
func (o Outcome) Map() map[string]any {
	m := make(map[string]any, len(o.Results)*2)
	for _, r := range o.Results {
		m[r.Name] = r.Reached
		m[r.Name+"_at"] = r.At
	}
	return m
}

// Simulate runs one pass through the funnel. Each stage whose prerequisite was
// reached succeeds with probability rates[stage] * multipliers[stage], capped at
// 1. A missing multiplier means 1. A zero probability fails the stage without
// consuming a draw, so a multiplier of exactly 0 can never produce a reached
// stage regardless of the random source.
func Simulate(src rng.Source, def Definition, rates, multipliers map[string]float64, anchor time.Time) (Outcome, error) {
	if err := def.Validate(); err != nil {
		return Outcome{}, err
	}
	probs := make([]float64, len(def.Stages))
	for i, s := range def.Stages {
		rate, ok := rates[s.Name]
		if !ok {
			return Outcome{}, seederrors.Invalid("rates", "no base rate for stage %q", s.Name)
		}
		if math.IsNaN(rate) || rate < 0 || rate > 1 {
			return Outcome{}, seederrors.Invalid("rates", "stage %q rate must be in [0,1], got %v", s.Name, rate)
		}
		mult := 1.0
		if m, ok := multipliers[s.Name]; ok {
			if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
				return Outcome{}, seederrors.Invalid("multipliers", "stage %q multiplier must be finite and >= 0, got %v", s.Name, m)
			}
			mult = m
		}
		probs[i] = math.Min(rate*mult, 1)
	}

	out := Outcome{Results: make([]Result, len(def.Stages))}
	index := make(map[string]int, len(def.Stages))
	for i, s := range def.Stages {
		index[s.Name] = i
		out.Results[i] = Result{Name: s.Name}

		parent := anchor
		if s.After != "" {
			pr := out.Results[index[s.After]]
			if !pr.Reached {
				continue
			}
			parent = *pr.At
		}
		if probs[i] <= 0 || !rng.Chance(src, probs[i]) {
			continue
		}
		at := parent.Add(rng.Duration(src, s.MinDelay, s.MaxDelay))
		out.Results[i].Reached = true
		out.Results[i].At = &at
	}
	return out, nil
}
