// Package engine implements the material impact and recommendation
// engine: lifespan prediction, CO2/water footprint, and substitution
// heuristics. Every function here is a total, pure computation: unknown
// materials and categories are never errors, they simply carry no weight.
package engine

import (
	"math"

	"github.com/wearwise/wearwise/internal/material"
)

// sumTolerance is the floating tolerance used when deciding whether a
// composition already sums to 1.0.
const sumTolerance = 1e-9

// Composition maps a material name to its fractional mass share of a
// garment. Keys are expected to be canonical (see material.Canonical),
// but unknown names are tolerated and preserved.
type Composition map[string]float64

// Clone returns a copy of the composition.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for name, f := range c {
		out[name] = f
	}
	return out
}

// Canonicalize returns a copy with every key passed through
// material.Canonical, merging fractions whose names collapse to the same
// canonical material ("Polyester" and "polyester", "Spandex" and
// "elastane"). Scoring and the substitution heuristics must see the
// same material set, so anything that matches materials by name
// canonicalizes first.
func Canonicalize(c Composition) Composition {
	out := make(Composition, len(c))
	for name, f := range c {
		out[material.Canonical(name)] += f
	}
	return out
}

// Sum returns the total of all fractions.
func (c Composition) Sum() float64 {
	var sum float64
	for _, f := range c {
		sum += f
	}
	return sum
}

// Normalize clamps every fraction to [0,1] and, when the clamped sum is
// positive and not within tolerance of 1.0, rescales each fraction by
// 1/sum so the result sums to 1.0. A zero-sum composition is returned as
// a clamped copy; callers handle the zero case downstream. The input is
// never modified, and Normalize(Normalize(c)) == Normalize(c).
func Normalize(c Composition) Composition {
	out := make(Composition, len(c))
	var sum float64
	for name, f := range c {
		f = clamp(f, 0, 1)
		out[name] = f
		sum += f
	}

	if sum <= 0 || math.Abs(sum-1.0) <= sumTolerance {
		return out
	}
	for name, f := range out {
		out[name] = f / sum
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
