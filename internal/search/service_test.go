package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearwise/wearwise/internal/catalog"
	"github.com/wearwise/wearwise/internal/engine"
	"github.com/wearwise/wearwise/internal/material"
	"github.com/wearwise/wearwise/internal/store"
)

type fakeClient struct {
	mu       sync.Mutex
	calls    int
	products []catalog.Product
	err      error
}

func (f *fakeClient) Search(_ context.Context, _ string) ([]catalog.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = f.calls + 1
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeStore struct {
	mu      sync.Mutex
	saved   []store.Lookup
	saveErr error
}

func (f *fakeStore) SaveLookup(_ context.Context, l *store.Lookup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *l)
	return nil
}

func (f *fakeStore) GetLookup(context.Context, string) (*store.Lookup, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) ListLookups(context.Context, store.Filter) ([]store.Lookup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.Lookup(nil), f.saved...), nil
}

func (f *fakeStore) Migrate(context.Context) error { return nil }
func (f *fakeStore) Close() error                  { return nil }

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(material.Default(), engine.DefaultParams())
}

func TestService_Search_ScoresEveryProduct(t *testing.T) {
	client := &fakeClient{products: []catalog.Product{
		{ID: "1", Title: "Basic tee", Category: "T-shirt", Composition: map[string]float64{"Cotton": 100}},
		{ID: "2", Title: "Track jacket", Category: "Jacket", Composition: map[string]float64{"Polyester": 100}},
	}}
	svc := NewService(client, newTestEngine(t))

	results, err := svc.Search(context.Background(), "tops")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results keep catalog order.
	assert.Equal(t, "1", results[0].Product.ID)
	assert.Equal(t, "2", results[1].Product.ID)

	assert.Equal(t, "tshirt", results[0].Category)
	assert.InDelta(t, 54.0, results[0].LifespanMonths, 1e-9)
	assert.InDelta(t, 0.25*15.0, results[0].Impact.CO2, 1e-9)

	assert.Equal(t, "jacket", results[1].Category)
	assert.InDelta(t, 1.0, results[1].Composition["polyester"], 1e-9)
	assert.NotEmpty(t, results[1].Recommendations)
}

func TestService_Search_ClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("catalog unavailable")}
	svc := NewService(client, newTestEngine(t))

	_, err := svc.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog unavailable")
}

func TestService_Search_UsesCache(t *testing.T) {
	client := &fakeClient{products: []catalog.Product{
		{ID: "1", Title: "Basic tee", Category: "tshirt", Composition: map[string]float64{"Cotton": 100}},
	}}
	cache := catalog.NewMemoryCache(time.Minute)
	svc := NewService(client, newTestEngine(t), WithCache(cache))

	first, err := svc.Search(context.Background(), "tee")
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), "tee")
	require.NoError(t, err)

	assert.Equal(t, 1, client.callCount())
	assert.Equal(t, first, second)
}

func TestService_Search_DistinctQueriesMissCache(t *testing.T) {
	client := &fakeClient{products: []catalog.Product{}}
	cache := catalog.NewMemoryCache(time.Minute)
	svc := NewService(client, newTestEngine(t), WithCache(cache))

	_, err := svc.Search(context.Background(), "shirts")
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), "dresses")
	require.NoError(t, err)

	assert.Equal(t, 2, client.callCount())
}

func TestService_Search_RecordsLookups(t *testing.T) {
	client := &fakeClient{products: []catalog.Product{
		{ID: "1", Title: "Basic tee", Category: "tshirt", Composition: map[string]float64{"Cotton": 100}},
		{ID: "2", Title: "Slim jeans", Category: "jeans", Composition: map[string]float64{"Cotton": 98, "Elastane": 2}},
	}}
	st := &fakeStore{}
	svc := NewService(client, newTestEngine(t), WithStore(st))

	results, err := svc.Search(context.Background(), "basics")
	require.NoError(t, err)
	require.Len(t, results, 2)

	saved, err := st.ListLookups(context.Background(), store.Filter{})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "basics", saved[0].Query)
	assert.Equal(t, "1", saved[0].ProductID)
	assert.InDelta(t, results[0].LifespanMonths, saved[0].LifespanMonths, 1e-9)
	assert.Equal(t, len(results[1].Recommendations), saved[1].Recommendations)
}

func TestService_Search_StoreFailureIsNotFatal(t *testing.T) {
	client := &fakeClient{products: []catalog.Product{
		{ID: "1", Title: "Basic tee", Category: "tshirt", Composition: map[string]float64{"Cotton": 100}},
	}}
	st := &fakeStore{saveErr: errors.New("disk full")}
	svc := NewService(client, newTestEngine(t), WithStore(st))

	results, err := svc.Search(context.Background(), "tee")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestService_Score(t *testing.T) {
	svc := NewService(&fakeClient{}, newTestEngine(t))

	comp := engine.Composition{"cotton": 0.5, "polyester": 0.5}
	r := svc.Score(context.Background(), comp, "T-Shirt", 0.5)

	assert.Equal(t, "tshirt", r.Category)
	assert.InDelta(t, 37.5, r.LifespanMonths, 1e-9)
	assert.InDelta(t, 0.5*(15.0*0.5+10.0*0.5), r.Impact.CO2, 1e-9)
	assert.NotEmpty(t, r.Recommendations)
}

func TestService_Score_RecordsLookup(t *testing.T) {
	st := &fakeStore{}
	svc := NewService(&fakeClient{}, newTestEngine(t), WithStore(st))

	svc.Score(context.Background(), engine.Composition{"wool": 1.0}, "sweater", 0)

	saved, err := st.ListLookups(context.Background(), store.Filter{})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "sweater", saved[0].Category)
	assert.Empty(t, saved[0].ProductID)
}

func TestService_Search_ConcurrencyLimitRespected(t *testing.T) {
	products := make([]catalog.Product, 50)
	for i := range products {
		products[i] = catalog.Product{ID: "p", Category: "tshirt", Composition: map[string]float64{"Cotton": 100}}
	}
	client := &fakeClient{products: products}
	svc := NewService(client, newTestEngine(t), WithConcurrency(2))

	results, err := svc.Search(context.Background(), "bulk")
	require.NoError(t, err)
	assert.Len(t, results, 50)
}
