package main

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/wearwise/wearwise/internal/catalog"
	"github.com/wearwise/wearwise/internal/engine"
	"github.com/wearwise/wearwise/internal/search"
	"github.com/wearwise/wearwise/internal/store"
)

// env bundles the wired components a command needs.
type env struct {
	engine  *engine.Engine
	service *search.Service
	store   store.Store
}

func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			zap.L().Warn("store close failed", zap.Error(err))
		}
	}
}

// initEnv wires the engine, catalog client, cache, and optionally the
// lookup store from the loaded config.
func initEnv(ctx context.Context, withStore bool) (*env, error) {
	table, err := cfg.MaterialTable()
	if err != nil {
		return nil, err
	}
	eng := engine.New(table, cfg.Scoring)

	var client catalog.Client
	if cfg.Catalog.UseSampleData || cfg.Catalog.BaseURL == "" {
		client = catalog.NewSampleClient()
	} else {
		client = catalog.NewClient(cfg.Catalog.BaseURL,
			catalog.WithRateLimit(cfg.Catalog.RatePerSecond, cfg.Catalog.Burst),
			catalog.WithMaxRetries(cfg.Catalog.MaxRetries),
			catalog.WithHTTPClient(&http.Client{
				Timeout: time.Duration(cfg.Catalog.TimeoutSecs) * time.Second,
			}),
		)
	}

	opts := []search.Option{
		search.WithConcurrency(cfg.Search.Concurrency),
		search.WithCache(catalog.NewCache(cfg.Cache.RedisAddr, time.Duration(cfg.Cache.TTLMins)*time.Minute)),
	}

	e := &env{engine: eng}
	if withStore {
		st, err := newStore(ctx)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close() //nolint:errcheck
			return nil, err
		}
		e.store = st
		opts = append(opts, search.WithStore(st))
	}

	e.service = search.NewService(client, eng, opts...)
	return e, nil
}

func newStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	case "sqlite", "":
		return store.NewSQLite(cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// parseComposition turns "cotton=0.5,polyester=0.5" (or percent values
// like "cotton=50,polyester=50") into a composition map.
func parseComposition(s string) (engine.Composition, error) {
	if strings.TrimSpace(s) == "" {
		return nil, eris.New("composition is empty")
	}

	comp := engine.Composition{}
	maxVal := 0.0
	for _, pair := range strings.Split(s, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, eris.Errorf("invalid composition entry %q, want name=fraction", pair)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "invalid fraction for %s", name)
		}
		if f < 0 {
			return nil, eris.Errorf("negative fraction for %s", name)
		}
		comp[strings.TrimSpace(name)] += f
		if f > maxVal {
			maxVal = f
		}
	}

	// Percent mode needs a value no fraction could plausibly be: a
	// single entry above 1.5 or a sum above 5. Fractional inputs that
	// merely over-label (sum 1.6) stay as given, so impact keeps its
	// proportional over-report.
	if maxVal > 1.5 || comp.Sum() > 5 {
		for name, f := range comp {
			comp[name] = f / 100
		}
	}
	return comp, nil
}

func printResult(r search.Result) {
	if r.Product.ID != "" {
		fmt.Printf("%s  %s\n", r.Product.ID, r.Product.Title)
	}
	if r.Category != "" {
		fmt.Printf("  category:  %s\n", r.Category)
	}
	fmt.Printf("  materials: %s\n", formatComposition(r.Composition))
	fmt.Printf("  lifespan:  %.1f months\n", r.LifespanMonths)
	fmt.Printf("  impact:    %.2f kg CO2e, %.0f L water\n", r.Impact.CO2, r.Impact.Water)
	for i, rec := range r.Recommendations {
		fmt.Printf("  [%d] %s\n", i+1, rec.Label)
		fmt.Printf("      %s\n", formatComposition(rec.Composition))
		fmt.Printf("      lifespan %+.1f months, CO2 %+.2f kg, water %+.0f L\n",
			rec.DeltaLifespanMonths, rec.DeltaCO2, rec.DeltaWater)
	}
}

func formatComposition(c engine.Composition) string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", name, c[name]*100))
	}
	return strings.Join(parts, ", ")
}
