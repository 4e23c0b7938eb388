package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies
// it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS lookups (
	id              TEXT PRIMARY KEY,
	query           TEXT NOT NULL DEFAULT '',
	product_id      TEXT NOT NULL DEFAULT '',
	title           TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL DEFAULT '',
	composition     JSONB NOT NULL,
	lifespan_months DOUBLE PRECISION NOT NULL,
	co2_kg          DOUBLE PRECISION NOT NULL,
	water_liters    DOUBLE PRECISION NOT NULL,
	recommendations INTEGER NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_lookups_query ON lookups(query);
CREATE INDEX IF NOT EXISTS idx_lookups_category ON lookups(category);
CREATE INDEX IF NOT EXISTS idx_lookups_created_at ON lookups(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveLookup(ctx context.Context, l *Lookup) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	compJSON, err := json.Marshal(l.Composition)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal composition")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO lookups
		 (id, query, product_id, title, category, composition, lifespan_months, co2_kg, water_liters, recommendations, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.Query, l.ProductID, l.Title, l.Category, string(compJSON),
		l.LifespanMonths, l.Impact.CO2, l.Impact.Water, l.Recommendations, l.CreatedAt,
	)
	return eris.Wrap(err, "postgres: insert lookup")
}

func (s *PostgresStore) GetLookup(ctx context.Context, id string) (*Lookup, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, query, product_id, title, category, composition, lifespan_months, co2_kg, water_liters, recommendations, created_at
		 FROM lookups WHERE id = $1`,
		id,
	)

	l, err := scanPostgresLookup(row)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get lookup %s", id)
	}
	return l, nil
}

func (s *PostgresStore) ListLookups(ctx context.Context, filter Filter) ([]Lookup, error) {
	query := `SELECT id, query, product_id, title, category, composition, lifespan_months, co2_kg, water_liters, recommendations, created_at
		 FROM lookups WHERE 1=1`
	var args []any

	if filter.Query != "" {
		args = append(args, filter.Query)
		query += ` AND query = $` + strconv.Itoa(len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list lookups")
	}
	defer rows.Close()

	var lookups []Lookup
	for rows.Next() {
		l, err := scanPostgresLookup(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan lookup")
		}
		lookups = append(lookups, *l)
	}
	return lookups, eris.Wrap(rows.Err(), "postgres: list lookups iterate")
}

func scanPostgresLookup(row pgx.Row) (*Lookup, error) {
	var l Lookup
	var compJSON string

	err := row.Scan(&l.ID, &l.Query, &l.ProductID, &l.Title, &l.Category, &compJSON,
		&l.LifespanMonths, &l.Impact.CO2, &l.Impact.Water, &l.Recommendations, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.New("lookup not found")
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(compJSON), &l.Composition); err != nil {
		return nil, eris.Wrap(err, "unmarshal composition")
	}
	return &l, nil
}
