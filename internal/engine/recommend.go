package engine

import (
	"sort"
	"strings"
)

// heuristic is one conditionally-applicable substitution rule. apply
// returns the candidate composition, or nil when the rule does not fire.
type heuristic struct {
	label string
	apply func(c Composition, category string) Composition
}

// heuristics is the fixed, ordered rule set evaluated by
// Recommendations. Order matters only for tie-breaking: ranking is by
// composite score, ties keep evaluation order.
var heuristics = []heuristic{
	{
		label: "Switch to recycled polyester",
		apply: func(c Composition, _ string) Composition {
			poly := c["polyester"]
			if poly <= 0.1 {
				return nil
			}
			out := c.Clone()
			delete(out, "polyester")
			out["recycled_polyester"] += poly
			return out
		},
	},
	{
		label: "Blend in recycled cotton",
		apply: func(c Composition, _ string) Composition {
			cotton := c["cotton"]
			if cotton <= 0.5 {
				return nil
			}
			out := c.Clone()
			out["recycled_cotton"] += 0.8 * cotton
			out["cotton"] = 0.2 * cotton
			return out
		},
	},
	{
		label: "Replace some polyester with cotton",
		apply: func(c Composition, _ string) Composition {
			if c["polyester"] <= 0.3 || c["cotton"] >= 0.5 {
				return nil
			}
			return moveFraction(c, "polyester", "cotton", 0.3)
		},
	},
	{
		label: "Introduce a linen blend",
		apply: func(c Composition, category string) Composition {
			cat := strings.ToLower(strings.TrimSpace(category))
			if cat != "tshirt" && cat != "dress" {
				return nil
			}
			if c["polyester"] <= 0.2 {
				return nil
			}
			return moveFraction(c, "polyester", "linen", 0.3)
		},
	},
}

// moveFraction moves up to max fraction from one material to another,
// dropping the source entry when it is fully consumed.
func moveFraction(c Composition, from, to string, max float64) Composition {
	moved := c[from]
	if moved > max {
		moved = max
	}
	out := c.Clone()
	if remaining := out[from] - moved; remaining > 0 {
		out[from] = remaining
	} else {
		delete(out, from)
	}
	out[to] += moved
	return out
}

// Recommendations evaluates the substitution heuristics against the
// current composition and returns the applicable candidates ranked by
// composite score: deltaLifespanMonths - deltaCO2 * CO2Tradeoff,
// descending. Inapplicable heuristics produce no entry, so the result
// has between zero and four recommendations; an empty result is a
// normal outcome, not an error.
func (e *Engine) Recommendations(c Composition, category string) []Recommendation {
	// Heuristic applicability matches materials by map key, so raw
	// retailer spellings ("Polyester", "Spandex") must collapse to the
	// canonical names the coefficient table uses before any rule runs.
	c = Canonicalize(c)

	currentLifespan := e.PredictLifespanMonths(c, category)
	currentImpact := e.Impact(c, 0)

	var recs []Recommendation
	for _, h := range heuristics {
		candidate := h.apply(c, category)
		if candidate == nil {
			continue
		}

		lifespan := e.PredictLifespanMonths(candidate, category)
		impact := e.Impact(candidate, 0)

		recs = append(recs, Recommendation{
			Label:                   h.label,
			Composition:             candidate,
			PredictedLifespanMonths: lifespan,
			DeltaLifespanMonths:     lifespan - currentLifespan,
			Impact:                  impact,
			DeltaCO2:                impact.CO2 - currentImpact.CO2,
			DeltaWater:              impact.Water - currentImpact.Water,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return e.compositeScore(recs[i]) > e.compositeScore(recs[j])
	})
	return recs
}

func (e *Engine) compositeScore(r Recommendation) float64 {
	return r.DeltaLifespanMonths - r.DeltaCO2*e.params.CO2Tradeoff
}
