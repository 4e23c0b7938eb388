package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wearwise/wearwise/internal/engine"
	"github.com/wearwise/wearwise/internal/material"
)

// ParseComposition converts a catalog percent map ("Cotton": 79) into a
// fractional composition keyed by canonical material names. Percentages
// for the same canonical material (e.g. "Cotton" and "Organic Cotton")
// are summed. Unknown materials are kept under their normalized name so
// the UI can still display them.
func ParseComposition(percents map[string]float64) engine.Composition {
	comp := make(engine.Composition, len(percents))
	for name, pct := range percents {
		if pct < 0 {
			continue
		}
		comp[material.Canonical(name)] += pct / 100
	}
	return comp
}

// compositionRe matches entries like "79% Cotton" or "Cotton 79%" in
// free-text fiber content strings.
var compositionRe = regexp.MustCompile(`(?:(\d+(?:\.\d+)?)\s*%\s*([A-Za-z][A-Za-z \-]*?)|([A-Za-z][A-Za-z \-]*?)\s*(\d+(?:\.\d+)?)\s*%)\s*(?:[,;/]|$)`)

// ParseCompositionText parses a free-text fiber content description such
// as "79% Cotton, 20% Polyester, 1% Elastane" or "Cotton 97%, Elastane
// 3%". Text with no recognizable percent entries yields an empty
// composition; this is not an error, downstream scoring treats it as the
// zero composition.
func ParseCompositionText(text string) engine.Composition {
	comp := engine.Composition{}
	for _, m := range compositionRe.FindAllStringSubmatch(text, -1) {
		var pctStr, name string
		if m[1] != "" {
			pctStr, name = m[1], m[2]
		} else {
			pctStr, name = m[4], m[3]
		}
		pct, err := strconv.ParseFloat(pctStr, 64)
		if err != nil || strings.TrimSpace(name) == "" {
			continue
		}
		comp[material.Canonical(name)] += pct / 100
	}
	return comp
}
