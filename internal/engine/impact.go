package engine

// Impact computes the aggregate CO2 (kg) and water (liters) footprint of
// a composition for a garment of the given mass. A non-positive mass
// falls back to the configured default garment mass.
//
// Unlike lifespan prediction, impact is intentionally NOT normalized:
// it is a mass-weighted physical quantity, so a composition labeled at
// 150% reports 150% of the footprint. Unknown materials contribute
// nothing.
func (e *Engine) Impact(c Composition, massKg float64) ImpactResult {
	if massKg <= 0 {
		massKg = e.params.GarmentMassKg
	}

	var result ImpactResult
	for name, fraction := range c {
		if fraction <= 0 {
			continue
		}
		coeff, ok := e.table.Coefficients(name)
		if !ok {
			continue
		}
		result.CO2 += coeff.CO2PerKg * fraction * massKg
		result.Water += coeff.WaterPerKg * fraction * massKg
	}
	return result
}
