package catalog

import (
	"context"
	"strings"
)

// SampleClient serves a small built-in catalog. It is the default when
// no catalog base URL is configured, and mirrors the demo dataset the
// product team curated from real retailer product pages.
type SampleClient struct{}

// NewSampleClient creates a client over the built-in catalog.
func NewSampleClient() *SampleClient {
	return &SampleClient{}
}

// Search filters the sample catalog by title, category, or material
// name. An empty query, or a query nothing matches, returns the full
// catalog so the storefront never renders an empty first page.
func (c *SampleClient) Search(_ context.Context, query string) ([]Product, error) {
	all := SampleProducts()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	var matched []Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			materialMatches(p.Composition, q) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return all, nil
	}
	return matched, nil
}

func materialMatches(composition map[string]float64, q string) bool {
	for name := range composition {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}

// SampleProducts returns a fresh copy of the built-in catalog.
func SampleProducts() []Product {
	src := sampleProducts
	out := make([]Product, len(src))
	for i, p := range src {
		comp := make(map[string]float64, len(p.Composition))
		for name, pct := range p.Composition {
			comp[name] = pct
		}
		p.Composition = comp
		out[i] = p
	}
	return out
}

var sampleProducts = []Product{
	{
		ID: "0970819001", Title: "Relaxed Fit T-shirt", Price: "$9.99",
		Link: "https://www2.hm.com/en_us/productpage.0970819001.html", Category: "t-shirt",
		Composition: map[string]float64{"Cotton": 100},
	},
	{
		ID: "1074406003", Title: "Slim Fit Cotton Shirt", Price: "$17.99",
		Link: "https://www2.hm.com/en_us/productpage.1074406003.html", Category: "shirt",
		Composition: map[string]float64{"Cotton": 97, "Elastane": 3},
	},
	{
		ID: "0608945065", Title: "Printed Dress", Price: "$24.99",
		Link: "https://www2.hm.com/en_us/productpage.0608945065.html", Category: "dress",
		Composition: map[string]float64{"Viscose": 95, "Elastane": 5},
	},
	{
		ID: "1005941013", Title: "Skinny Jeans", Price: "$29.99",
		Link: "https://www2.hm.com/en_us/productpage.1005941013.html", Category: "jeans",
		Composition: map[string]float64{"Cotton": 79, "Polyester": 20, "Elastane": 1},
	},
	{
		ID: "0685816050", Title: "Fine-knit Sweater", Price: "$19.99",
		Link: "https://www2.hm.com/en_us/productpage.0685816050.html", Category: "sweater",
		Composition: map[string]float64{"Viscose": 80, "Polyester": 20},
	},
	{
		ID: "0714032044", Title: "Sports Leggings", Price: "$14.99",
		Link: "https://www2.hm.com/en_us/productpage.0714032044.html", Category: "activewear",
		Composition: map[string]float64{"Polyester": 73, "Polyamide": 20, "Elastane": 7},
	},
	{
		ID: "0979945001", Title: "Linen-blend Shirt", Price: "$24.99",
		Link: "https://www2.hm.com/en_us/productpage.0979945001.html", Category: "shirt",
		Composition: map[string]float64{"Linen": 55, "Cotton": 45},
	},
	{
		ID: "1032572001", Title: "Hooded Jacket", Price: "$39.99",
		Link: "https://www2.hm.com/en_us/productpage.1032572001.html", Category: "jacket",
		Composition: map[string]float64{"Polyester": 100},
	},
	{
		ID: "0867467038", Title: "Jersey Maxi Dress", Price: "$34.99",
		Link: "https://www2.hm.com/en_us/productpage.0867467038.html", Category: "dress",
		Composition: map[string]float64{"Cotton": 95, "Elastane": 5},
	},
	{
		ID: "1093072002", Title: "Knitted Cardigan", Price: "$29.99",
		Link: "https://www2.hm.com/en_us/productpage.1093072002.html", Category: "sweater",
		Composition: map[string]float64{"Acrylic": 50, "Polyamide": 28, "Polyester": 22},
	},
	{
		ID: "1005494012", Title: "Regular Fit Chinos", Price: "$34.99",
		Link: "https://www2.hm.com/en_us/productpage.1005494012.html", Category: "pants",
		Composition: map[string]float64{"Cotton": 98, "Elastane": 2},
	},
	{
		ID: "0608945132", Title: "Patterned Blouse", Price: "$19.99",
		Link: "https://www2.hm.com/en_us/productpage.0608945132.html", Category: "blouse",
		Composition: map[string]float64{"Polyester": 100},
	},
	{
		ID: "1177667001", Title: "Ribbed Tank Top", Price: "$7.99",
		Link: "https://www2.hm.com/en_us/productpage.1177667001.html", Category: "top",
		Composition: map[string]float64{"Cotton": 57, "Modal": 38, "Elastane": 5},
	},
	{
		ID: "1032522002", Title: "Denim Jacket", Price: "$44.99",
		Link: "https://www2.hm.com/en_us/productpage.1032522002.html", Category: "jacket",
		Composition: map[string]float64{"Cotton": 99, "Elastane": 1},
	},
	{
		ID: "0945789012", Title: "Wool-blend Coat", Price: "$79.99",
		Link: "https://www2.hm.com/en_us/productpage.0945789012.html", Category: "coat",
		Composition: map[string]float64{"Polyester": 55, "Wool": 35, "Acrylic": 10},
	},
	{
		ID: "1074395001", Title: "Pique Polo Shirt", Price: "$14.99",
		Link: "https://www2.hm.com/en_us/productpage.1074395001.html", Category: "shirt",
		Composition: map[string]float64{"Cotton": 100},
	},
}
