package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wearwise/wearwise/internal/engine"
)

func assertComposition(t *testing.T, want, got engine.Composition) {
	t.Helper()
	assert.Len(t, got, len(want))
	for name, f := range want {
		assert.InDelta(t, f, got[name], 1e-9, "material %s", name)
	}
}

func TestParseComposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   map[string]float64
		want engine.Composition
	}{
		{
			name: "simple percents",
			in:   map[string]float64{"Cotton": 79, "Polyester": 20, "Elastane": 1},
			want: engine.Composition{"cotton": 0.79, "polyester": 0.20, "elastane": 0.01},
		},
		{
			name: "synonyms canonicalize",
			in:   map[string]float64{"Polyamide": 20, "Spandex": 5, "Rayon": 75},
			want: engine.Composition{"nylon": 0.20, "elastane": 0.05, "viscose": 0.75},
		},
		{
			name: "same canonical material sums",
			in:   map[string]float64{"Cotton": 50, "Organic Cotton": 50},
			want: engine.Composition{"cotton": 1.0},
		},
		{
			name: "unknown materials preserved",
			in:   map[string]float64{"Acrylic": 50, "Modal": 50},
			want: engine.Composition{"acrylic": 0.5, "modal": 0.5},
		},
		{
			name: "negative percents dropped",
			in:   map[string]float64{"Cotton": -10, "Wool": 100},
			want: engine.Composition{"wool": 1.0},
		},
		{
			name: "empty",
			in:   map[string]float64{},
			want: engine.Composition{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertComposition(t, tt.want, ParseComposition(tt.in))
		})
	}
}

func TestParseCompositionText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want engine.Composition
	}{
		{
			name: "percent first",
			in:   "79% Cotton, 20% Polyester, 1% Elastane",
			want: engine.Composition{"cotton": 0.79, "polyester": 0.20, "elastane": 0.01},
		},
		{
			name: "percent last",
			in:   "Cotton 97%, Elastane 3%",
			want: engine.Composition{"cotton": 0.97, "elastane": 0.03},
		},
		{
			name: "label prefix",
			in:   "Shell: 100% Polyester",
			want: engine.Composition{"polyester": 1.0},
		},
		{
			name: "multi-word material",
			in:   "80% Recycled Polyester, 20% Elastane",
			want: engine.Composition{"recycled_polyester": 0.80, "elastane": 0.20},
		},
		{
			name: "synonym in text",
			in:   "95% Viscose / 5% Spandex",
			want: engine.Composition{"viscose": 0.95, "elastane": 0.05},
		},
		{
			name: "no percentages yields empty",
			in:   "Soft knitted fabric",
			want: engine.Composition{},
		},
		{
			name: "empty string",
			in:   "",
			want: engine.Composition{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertComposition(t, tt.want, ParseCompositionText(tt.in))
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"t-shirt", "tshirt"},
		{"T Shirt", "tshirt"},
		{"tee", "tshirt"},
		{"pants", "trousers"},
		{"Chinos", "trousers"},
		{"coat", "jacket"},
		{"cardigan", "sweater"},
		{"jeans", "jeans"},
		{"dress", "dress"},
		{"activewear", "activewear"},
		{" Sweater ", "sweater"},
	}

	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, NormalizeCategory(tt.in), "input %q", tt.in)
	}
}
