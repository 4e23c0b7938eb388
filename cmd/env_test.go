package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearwise/wearwise/internal/engine"
)

func TestParseComposition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  engine.Composition
	}{
		{
			name:  "fractions",
			input: "cotton=0.5,polyester=0.5",
			want:  engine.Composition{"cotton": 0.5, "polyester": 0.5},
		},
		{
			name:  "percentages scaled down",
			input: "cotton=98,elastane=2",
			want:  engine.Composition{"cotton": 0.98, "elastane": 0.02},
		},
		{
			name:  "single material",
			input: "wool=1",
			want:  engine.Composition{"wool": 1.0},
		},
		{
			name:  "whitespace tolerated",
			input: " cotton = 0.7 , linen = 0.3 ",
			want:  engine.Composition{"cotton": 0.7, "linen": 0.3},
		},
		{
			name:  "repeated names accumulate",
			input: "cotton=0.3,cotton=0.4",
			want:  engine.Composition{"cotton": 0.7},
		},
		{
			name:  "single percent value",
			input: "wool=100",
			want:  engine.Composition{"wool": 1.0},
		},
		{
			name:  "over-labeled fractions stay as given",
			input: "cotton=1,polyester=0.6",
			want:  engine.Composition{"cotton": 1.0, "polyester": 0.6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseComposition(tt.input)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for name, f := range tt.want {
				assert.InDelta(t, f, got[name], 1e-9, name)
			}
		})
	}
}

func TestParseComposition_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing equals", "cotton"},
		{"bad number", "cotton=lots"},
		{"negative", "cotton=-0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseComposition(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestFormatComposition(t *testing.T) {
	got := formatComposition(engine.Composition{"polyester": 0.35, "cotton": 0.65})
	assert.Equal(t, "cotton 65%, polyester 35%", got)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "search", "score", "recommend", "materials", "lookups"} {
		assert.True(t, names[want], want)
	}
}
