// Package search combines the catalog client with the scoring engine:
// it finds products, scores each composition, and records the results.
package search

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wearwise/wearwise/internal/catalog"
	"github.com/wearwise/wearwise/internal/engine"
	"github.com/wearwise/wearwise/internal/metrics"
	"github.com/wearwise/wearwise/internal/store"
)

const defaultConcurrency = 4

// Result is one catalog product scored by the engine.
type Result struct {
	Product         catalog.Product         `json:"product"`
	Category        string                  `json:"category"`
	Composition     engine.Composition      `json:"composition"`
	LifespanMonths  float64                 `json:"lifespan_months"`
	Impact          engine.ImpactResult     `json:"impact"`
	Recommendations []engine.Recommendation `json:"recommendations"`
}

// Service runs catalog searches and scores every product found.
type Service struct {
	client      catalog.Client
	cache       catalog.Cache
	engine      *engine.Engine
	store       store.Store
	concurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithConcurrency sets how many products are scored in parallel.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithStore enables lookup-history recording. Saves are best effort and
// never fail a search.
func WithStore(st store.Store) Option {
	return func(s *Service) { s.store = st }
}

// WithCache enables caching of raw catalog responses.
func WithCache(c catalog.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// NewService creates a search service over the given catalog client and
// engine.
func NewService(client catalog.Client, eng *engine.Engine, opts ...Option) *Service {
	s := &Service{
		client:      client,
		engine:      eng,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search fetches products matching the query and scores each one.
// Results keep the catalog's ordering.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	metrics.SearchesPerformed.Inc()

	products, err := s.fetchProducts(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.score(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.recordLookups(ctx, query, results)
	return results, nil
}

// Score evaluates a single composition without touching the catalog.
func (s *Service) Score(ctx context.Context, comp engine.Composition, category string, massKg float64) Result {
	r := Result{
		Category:    catalog.NormalizeCategory(category),
		Composition: comp,
	}
	r.LifespanMonths = s.engine.PredictLifespanMonths(comp, r.Category)
	r.Impact = s.engine.Impact(comp, massKg)
	r.Recommendations = s.engine.Recommendations(comp, r.Category)
	observeScore(r)

	s.recordLookups(ctx, "", []Result{r})
	return r
}

func (s *Service) fetchProducts(ctx context.Context, query string) ([]catalog.Product, error) {
	key := "search:" + query

	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached []catalog.Product
			if err := json.Unmarshal(raw, &cached); err == nil {
				metrics.CatalogCacheHits.Inc()
				return cached, nil
			}
			zap.L().Warn("discarding unreadable cache entry", zap.String("key", key))
		}
		metrics.CatalogCacheMisses.Inc()
	}

	products, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, key, raw); err != nil {
				zap.L().Warn("cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return products, nil
}

func (s *Service) score(p catalog.Product) Result {
	comp := catalog.ParseComposition(p.Composition)
	category := catalog.NormalizeCategory(p.Category)

	r := Result{
		Product:         p,
		Category:        category,
		Composition:     comp,
		LifespanMonths:  s.engine.PredictLifespanMonths(comp, category),
		Impact:          s.engine.Impact(comp, s.engine.Params().GarmentMassKg),
		Recommendations: s.engine.Recommendations(comp, category),
	}
	observeScore(r)
	return r
}

func observeScore(r Result) {
	metrics.ScoresComputed.Inc()
	for _, rec := range r.Recommendations {
		metrics.RecommendationsGenerated.WithLabelValues(rec.Label).Inc()
	}
}

func (s *Service) recordLookups(ctx context.Context, query string, results []Result) {
	if s.store == nil {
		return
	}
	for _, r := range results {
		l := &store.Lookup{
			Query:           query,
			ProductID:       r.Product.ID,
			Title:           r.Product.Title,
			Category:        r.Category,
			Composition:     r.Composition,
			LifespanMonths:  r.LifespanMonths,
			Impact:          r.Impact,
			Recommendations: len(r.Recommendations),
		}
		if err := s.store.SaveLookup(ctx, l); err != nil {
			zap.L().Warn("lookup save failed", zap.String("product_id", r.Product.ID), zap.Error(err))
		}
	}
}
