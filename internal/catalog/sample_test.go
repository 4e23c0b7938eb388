package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func TestSampleClient_EmptyQueryReturnsAll(t *testing.T) {
	t.Parallel()

	products, err := NewSampleClient().Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, len(SampleProducts()))
}

func TestSampleClient_FiltersByTitleCategoryMaterial(t *testing.T) {
	t.Parallel()
	client := NewSampleClient()

	tests := []struct {
		query   string
		wantAll func(p Product) bool
	}{
		{
			query: "jeans",
			wantAll: func(p Product) bool {
				return containsFold(p.Title, "jeans") || containsFold(p.Category, "jeans")
			},
		},
		{
			query: "wool",
			wantAll: func(p Product) bool {
				return containsFold(p.Title, "wool") || materialMatches(p.Composition, "wool")
			},
		},
		{
			query: "dress",
			wantAll: func(p Product) bool {
				return containsFold(p.Title, "dress") || containsFold(p.Category, "dress")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			products, err := client.Search(context.Background(), tt.query)
			require.NoError(t, err)
			require.NotEmpty(t, products)
			for _, p := range products {
				assert.True(t, tt.wantAll(p), "product %s should match %q", p.Title, tt.query)
			}
		})
	}
}

func TestSampleClient_NoMatchFallsBackToAll(t *testing.T) {
	t.Parallel()

	products, err := NewSampleClient().Search(context.Background(), "zzzzz")
	require.NoError(t, err)
	assert.Len(t, products, len(SampleProducts()))
}

func TestSampleProducts_CopyIsIsolated(t *testing.T) {
	t.Parallel()

	first := SampleProducts()
	first[0].Composition["Cotton"] = 1

	second := SampleProducts()
	assert.InDelta(t, 100, second[0].Composition["Cotton"], 1e-9)
}
