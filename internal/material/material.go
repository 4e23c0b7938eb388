// Package material holds the per-fiber environmental and durability
// coefficients used by the scoring engine.
package material

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CostTier is an informational cost category for a material.
type CostTier string

const (
	CostLow    CostTier = "low"
	CostMedium CostTier = "medium"
	CostHigh   CostTier = "high"
)

// Coefficients holds the environmental and durability constants for one
// material. Durability is a dimensionless weight in [0.4, 1.2] where
// values above 1.0 mean above-baseline durability.
type Coefficients struct {
	CO2PerKg   float64  `yaml:"co2_per_kg" mapstructure:"co2_per_kg" json:"co2_per_kg"`
	WaterPerKg float64  `yaml:"water_per_kg" mapstructure:"water_per_kg" json:"water_per_kg"`
	Durability float64  `yaml:"durability" mapstructure:"durability" json:"durability"`
	CostTier   CostTier `yaml:"cost_tier" mapstructure:"cost_tier" json:"cost_tier"`
}

// Table maps canonical material names to their coefficients. A Table is
// built once at startup and treated as read-only afterwards.
type Table struct {
	entries map[string]Coefficients
}

// NewTable builds a Table from the given entries. Keys are canonicalized.
func NewTable(entries map[string]Coefficients) Table {
	m := make(map[string]Coefficients, len(entries))
	for name, c := range entries {
		m[Canonical(name)] = c
	}
	return Table{entries: m}
}

// Default returns the built-in reference table. CO2 and water figures are
// kg CO2e per kg and liters per kg of fiber.
func Default() Table {
	return NewTable(map[string]Coefficients{
		"cotton":             {CO2PerKg: 15.0, WaterPerKg: 2700, Durability: 1.00, CostTier: CostLow},
		"recycled_cotton":    {CO2PerKg: 8.0, WaterPerKg: 500, Durability: 0.90, CostTier: CostMedium},
		"polyester":          {CO2PerKg: 10.0, WaterPerKg: 25, Durability: 0.45, CostTier: CostLow},
		"recycled_polyester": {CO2PerKg: 6.0, WaterPerKg: 20, Durability: 0.50, CostTier: CostMedium},
		"wool":               {CO2PerKg: 25.0, WaterPerKg: 1500, Durability: 0.85, CostTier: CostHigh},
		"linen":              {CO2PerKg: 8.0, WaterPerKg: 650, Durability: 0.80, CostTier: CostMedium},
		"elastane":           {CO2PerKg: 20.0, WaterPerKg: 100, Durability: 0.60, CostTier: CostMedium},
		"nylon":              {CO2PerKg: 15.0, WaterPerKg: 30, Durability: 0.50, CostTier: CostLow},
	})
}

// Coefficients returns the coefficients for a material, matching on the
// canonical name. The second return is false for unknown materials.
func (t Table) Coefficients(name string) (Coefficients, bool) {
	c, ok := t.entries[Canonical(name)]
	return c, ok
}

// Has reports whether the material is in the table.
func (t Table) Has(name string) bool {
	_, ok := t.entries[Canonical(name)]
	return ok
}

// Names returns all material names in the table, sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of materials in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// Merge returns a new Table with overrides applied on top of t. Existing
// entries are replaced, new ones added; t itself is not modified.
func (t Table) Merge(overrides map[string]Coefficients) Table {
	m := make(map[string]Coefficients, len(t.entries)+len(overrides))
	for name, c := range t.entries {
		m[name] = c
	}
	for name, c := range overrides {
		m[Canonical(name)] = c
	}
	return Table{entries: m}
}

// synonyms maps trade and fiber-content label names to canonical table
// keys. Matching runs after lowercasing and space/hyphen squashing.
var synonyms = map[string]string{
	"polyamide":          "nylon",
	"spandex":            "elastane",
	"lycra":              "elastane",
	"rayon":              "viscose",
	"lyocell":            "tencel",
	"organic_cotton":     "cotton",
	"virgin_polyester":   "polyester",
	"merino":             "wool",
	"merino_wool":        "wool",
	"flax":               "linen",
	"recycled_poly":      "recycled_polyester",
	"recycled_pet":       "recycled_polyester",
	"recycled_polyamide": "nylon",
}

// Canonical normalizes a material name: lowercase, spaces and hyphens
// collapsed to underscores, known synonyms resolved. Unknown names pass
// through normalized so they stay printable downstream.
func Canonical(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), "_")
	if canon, ok := synonyms[s]; ok {
		return canon
	}
	return s
}

var titleCaser = cases.Title(language.English)

// Label returns a display name for a canonical material, e.g.
// "recycled_polyester" -> "Recycled Polyester".
func Label(name string) string {
	return titleCaser.String(strings.ReplaceAll(Canonical(name), "_", " "))
}
