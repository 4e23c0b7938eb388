package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wearwise/wearwise/internal/engine"
	"github.com/wearwise/wearwise/internal/material"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Catalog   CatalogConfig   `yaml:"catalog" mapstructure:"catalog"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Scoring   engine.Params   `yaml:"scoring" mapstructure:"scoring"`
	Materials MaterialsConfig `yaml:"materials" mapstructure:"materials"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the lookup-history backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// CatalogConfig configures the upstream product catalog.
type CatalogConfig struct {
	BaseURL       string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs   int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	Burst         int     `yaml:"burst" mapstructure:"burst"`
	MaxRetries    int     `yaml:"max_retries" mapstructure:"max_retries"`
	UseSampleData bool    `yaml:"use_sample_data" mapstructure:"use_sample_data"`
}

// CacheConfig configures catalog response caching. An empty RedisAddr
// selects the in-process cache.
type CacheConfig struct {
	RedisAddr string `yaml:"redis_addr" mapstructure:"redis_addr"`
	TTLMins   int    `yaml:"ttl_mins" mapstructure:"ttl_mins"`
}

// MaterialsConfig points at an optional YAML file with material
// coefficient overrides.
type MaterialsConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// SearchConfig configures the search service.
type SearchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("WEARWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "wearwise.db")
	v.SetDefault("store.max_conns", 10)
	v.SetDefault("store.min_conns", 2)
	v.SetDefault("catalog.timeout_secs", 15)
	v.SetDefault("catalog.rate_per_second", 5.0)
	v.SetDefault("catalog.burst", 5)
	v.SetDefault("catalog.max_retries", 3)
	v.SetDefault("catalog.use_sample_data", true)
	v.SetDefault("cache.ttl_mins", 15)
	v.SetDefault("search.concurrency", 4)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	params := engine.DefaultParams()
	v.SetDefault("scoring.baseline_score", params.BaselineScore)
	v.SetDefault("scoring.durability_center", params.DurabilityCenter)
	v.SetDefault("scoring.score_min", params.ScoreMin)
	v.SetDefault("scoring.score_max", params.ScoreMax)
	v.SetDefault("scoring.baseline_months", params.BaselineMonths)
	v.SetDefault("scoring.months_per_point", params.MonthsPerPoint)
	v.SetDefault("scoring.garment_mass_kg", params.GarmentMassKg)
	v.SetDefault("scoring.co2_tradeoff", params.CO2Tradeoff)
	v.SetDefault("scoring.category_multipliers", params.CategoryMultipliers)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// MaterialTable returns the built-in coefficient table merged with any
// overrides file named in the config.
func (c *Config) MaterialTable() (material.Table, error) {
	table := material.Default()
	if c.Materials.Path == "" {
		return table, nil
	}

	overrides, err := material.LoadYAML(c.Materials.Path)
	if err != nil {
		return table, eris.Wrapf(err, "config: load materials %s", c.Materials.Path)
	}
	return table.Merge(overrides), nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
