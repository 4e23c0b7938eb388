// Package store persists scored lookups so past searches and their
// recommendations can be listed again.
package store

import (
	"context"
	"time"

	"github.com/wearwise/wearwise/internal/engine"
)

// Lookup records one scored composition: what was asked, and what the
// engine answered.
type Lookup struct {
	ID              string              `json:"id"`
	Query           string              `json:"query,omitempty"`
	ProductID       string              `json:"product_id,omitempty"`
	Title           string              `json:"title,omitempty"`
	Category        string              `json:"category"`
	Composition     engine.Composition  `json:"composition"`
	LifespanMonths  float64             `json:"lifespan_months"`
	Impact          engine.ImpactResult `json:"impact"`
	Recommendations int                 `json:"recommendations"`
	CreatedAt       time.Time           `json:"created_at"`
}

// Filter specifies criteria for listing lookups.
type Filter struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// Store defines the lookup-history persistence interface.
type Store interface {
	SaveLookup(ctx context.Context, l *Lookup) error
	GetLookup(ctx context.Context, id string) (*Lookup, error)
	ListLookups(ctx context.Context, filter Filter) ([]Lookup, error)

	Migrate(ctx context.Context) error
	Close() error
}
