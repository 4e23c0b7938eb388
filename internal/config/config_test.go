package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "wearwise.db", cfg.Store.DatabaseURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Catalog.UseSampleData)
	assert.Equal(t, 4, cfg.Search.Concurrency)
	assert.Equal(t, 15, cfg.Cache.TTLMins)

	assert.InDelta(t, 0.65, cfg.Scoring.BaselineScore, 1e-9)
	assert.InDelta(t, 0.25, cfg.Scoring.GarmentMassKg, 1e-9)
	assert.InDelta(t, 1.1, cfg.Scoring.CategoryMultipliers["jeans"], 1e-9)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WEARWISE_SERVER_PORT", "9090")
	t.Setenv("WEARWISE_STORE_DRIVER", "postgres")
	t.Setenv("WEARWISE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestMaterialTable_NoOverrides(t *testing.T) {
	cfg := &Config{}

	table, err := cfg.MaterialTable()
	require.NoError(t, err)
	assert.True(t, table.Has("cotton"))
	assert.True(t, table.Has("recycled_polyester"))
}

func TestMaterialTable_WithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.yaml")
	overrides := `materials:
  hemp:
    co2_per_kg: 5.0
    water_per_kg: 300.0
    durability: 0.85
    cost_tier: medium
  cotton:
    co2_per_kg: 12.0
    water_per_kg: 2500.0
    durability: 1.0
    cost_tier: low
`
	require.NoError(t, os.WriteFile(path, []byte(overrides), 0o644))

	cfg := &Config{Materials: MaterialsConfig{Path: path}}
	table, err := cfg.MaterialTable()
	require.NoError(t, err)

	assert.True(t, table.Has("hemp"))
	coeff, ok := table.Coefficients("cotton")
	require.True(t, ok)
	assert.InDelta(t, 12.0, coeff.CO2PerKg, 1e-9)

	// Untouched entries stay intact.
	assert.True(t, table.Has("wool"))
}

func TestMaterialTable_MissingOverridesFile(t *testing.T) {
	cfg := &Config{Materials: MaterialsConfig{Path: "/does/not/exist.yaml"}}

	_, err := cfg.MaterialTable()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load materials")
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "chatty", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
