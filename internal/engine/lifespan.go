package engine

import "math"

// PredictLifespanMonths computes the predicted garment lifespan in
// months for a composition and category.
//
// A weighted material score S starts at the baseline and accumulates
// (durability - center) * fraction for every known material with a
// positive fraction. When the used fractions do not cover exactly 1.0
// (unknown materials, partial data, or an over-100% label) the deviation
// from baseline is rescaled by 1/usedSum so missing coverage does not
// drag the score toward the default. S is clamped to
// [ScoreMin, ScoreMax] before conversion to months, which bounds the
// pre-multiplier lifespan to [15, 63] months under the default params.
func (e *Engine) PredictLifespanMonths(c Composition, category string) float64 {
	p := e.params
	score := p.BaselineScore
	var usedSum float64

	for name, fraction := range c {
		if fraction <= 0 {
			continue
		}
		coeff, ok := e.table.Coefficients(name)
		if !ok {
			continue
		}
		score += (coeff.Durability - p.DurabilityCenter) * fraction
		usedSum += fraction
	}

	if usedSum > 0 && math.Abs(usedSum-1.0) > sumTolerance {
		score = p.BaselineScore + (score-p.BaselineScore)/usedSum
	}
	score = clamp(score, p.ScoreMin, p.ScoreMax)

	baseline := p.BaselineMonths + (score-p.BaselineScore)*p.MonthsPerPoint
	return baseline * e.CategoryMultiplier(category)
}
