package engine

import (
	"strings"

	"github.com/wearwise/wearwise/internal/material"
)

// Params holds the tunable constants of the scoring formulas. The
// defaults reproduce the deployed closed-form model; they are injected
// rather than hard-coded so every caller scores against one consistent
// configuration.
type Params struct {
	BaselineScore    float64 `yaml:"baseline_score" mapstructure:"baseline_score"`
	DurabilityCenter float64 `yaml:"durability_center" mapstructure:"durability_center"`
	ScoreMin         float64 `yaml:"score_min" mapstructure:"score_min"`
	ScoreMax         float64 `yaml:"score_max" mapstructure:"score_max"`
	BaselineMonths   float64 `yaml:"baseline_months" mapstructure:"baseline_months"`
	MonthsPerPoint   float64 `yaml:"months_per_point" mapstructure:"months_per_point"`
	GarmentMassKg    float64 `yaml:"garment_mass_kg" mapstructure:"garment_mass_kg"`

	// CO2Tradeoff is the ranking weight that values one month of added
	// lifespan the same as avoiding 1/CO2Tradeoff kg of CO2.
	CO2Tradeoff float64 `yaml:"co2_tradeoff" mapstructure:"co2_tradeoff"`

	CategoryMultipliers map[string]float64 `yaml:"category_multipliers" mapstructure:"category_multipliers"`
}

// DefaultParams returns the production scoring constants.
func DefaultParams() Params {
	return Params{
		BaselineScore:    0.65,
		DurabilityCenter: 0.60,
		ScoreMin:         0.40,
		ScoreMax:         1.20,
		BaselineMonths:   30,
		MonthsPerPoint:   60,
		GarmentMassKg:    0.25,
		CO2Tradeoff:      50,
		CategoryMultipliers: map[string]float64{
			"tshirt":   1.0,
			"sweater":  1.15,
			"jacket":   1.15,
			"dress":    0.9,
			"trousers": 0.95,
			"jeans":    1.1,
			"other":    1.0,
		},
	}
}

// ImpactResult holds the aggregate environmental footprint of a garment.
// It is a derived value, recomputed fresh on every call.
type ImpactResult struct {
	CO2   float64 `json:"co2"`   // kg CO2e
	Water float64 `json:"water"` // liters
}

// Recommendation is one ranked substitution candidate with its predicted
// lifespan and footprint deltas versus the current composition.
type Recommendation struct {
	Label                   string       `json:"label"`
	Composition             Composition  `json:"composition"`
	PredictedLifespanMonths float64      `json:"predicted_lifespan_months"`
	DeltaLifespanMonths     float64      `json:"delta_lifespan_months"`
	Impact                  ImpactResult `json:"impact"`
	DeltaCO2                float64      `json:"delta_co2"`
	DeltaWater              float64      `json:"delta_water"`
}

// Engine scores compositions against an injected material table.
type Engine struct {
	table  material.Table
	params Params
}

// New creates an Engine. Zero-valued Params fields fall back to their
// defaults so partial configuration cannot zero out the formulas.
func New(table material.Table, params Params) *Engine {
	def := DefaultParams()
	if params.BaselineScore == 0 {
		params.BaselineScore = def.BaselineScore
	}
	if params.DurabilityCenter == 0 {
		params.DurabilityCenter = def.DurabilityCenter
	}
	if params.ScoreMin == 0 {
		params.ScoreMin = def.ScoreMin
	}
	if params.ScoreMax == 0 {
		params.ScoreMax = def.ScoreMax
	}
	if params.BaselineMonths == 0 {
		params.BaselineMonths = def.BaselineMonths
	}
	if params.MonthsPerPoint == 0 {
		params.MonthsPerPoint = def.MonthsPerPoint
	}
	if params.GarmentMassKg == 0 {
		params.GarmentMassKg = def.GarmentMassKg
	}
	if params.CO2Tradeoff == 0 {
		params.CO2Tradeoff = def.CO2Tradeoff
	}
	if len(params.CategoryMultipliers) == 0 {
		params.CategoryMultipliers = def.CategoryMultipliers
	}
	return &Engine{table: table, params: params}
}

// Params returns the engine's scoring constants.
func (e *Engine) Params() Params {
	return e.params
}

// Table returns the engine's material reference table.
func (e *Engine) Table() material.Table {
	return e.table
}

// CategoryMultiplier returns the lifespan multiplier for a garment
// category. Unknown categories fall back to 1.0.
func (e *Engine) CategoryMultiplier(category string) float64 {
	if m, ok := e.params.CategoryMultipliers[strings.ToLower(strings.TrimSpace(category))]; ok {
		return m
	}
	return 1.0
}
