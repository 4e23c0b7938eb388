// Package catalog provides access to a retailer product catalog and the
// parsing that turns catalog fabric data into scoreable compositions.
package catalog

import (
	"context"
	"strings"
)

// Product is one catalog entry. Composition is the retailer's raw
// fiber-content map, material name to percent (0-100), as served by the
// catalog API.
type Product struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Price       string             `json:"price"`
	Image       string             `json:"image"`
	Link        string             `json:"link"`
	Category    string             `json:"category"`
	Composition map[string]float64 `json:"composition"`
}

// Client searches the retailer catalog.
type Client interface {
	Search(ctx context.Context, query string) ([]Product, error)
}

// categoryAliases maps retailer category tags to the engine's category
// vocabulary. Tags with no alias pass through lowercased; the engine
// treats anything it does not know as multiplier 1.0.
var categoryAliases = map[string]string{
	"t-shirt":  "tshirt",
	"t shirt":  "tshirt",
	"tee":      "tshirt",
	"pants":    "trousers",
	"chinos":   "trousers",
	"slacks":   "trousers",
	"coat":     "jacket",
	"cardigan": "sweater",
	"knitwear": "sweater",
	"denim":    "jeans",
}

// NormalizeCategory maps a retailer category tag to the scoring
// vocabulary (tshirt, sweater, jacket, dress, trousers, jeans, ...).
func NormalizeCategory(category string) string {
	s := strings.ToLower(strings.TrimSpace(category))
	if alias, ok := categoryAliases[s]; ok {
		return alias
	}
	return s
}
