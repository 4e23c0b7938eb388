package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL
// mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS lookups (
	id              TEXT PRIMARY KEY,
	query           TEXT NOT NULL DEFAULT '',
	product_id      TEXT NOT NULL DEFAULT '',
	title           TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL DEFAULT '',
	composition     TEXT NOT NULL,
	lifespan_months REAL NOT NULL,
	co2_kg          REAL NOT NULL,
	water_liters    REAL NOT NULL,
	recommendations INTEGER NOT NULL DEFAULT 0,
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_lookups_query ON lookups(query);
CREATE INDEX IF NOT EXISTS idx_lookups_category ON lookups(category);
CREATE INDEX IF NOT EXISTS idx_lookups_created_at ON lookups(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveLookup(ctx context.Context, l *Lookup) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	compJSON, err := json.Marshal(l.Composition)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal composition")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO lookups
		 (id, query, product_id, title, category, composition, lifespan_months, co2_kg, water_liters, recommendations, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Query, l.ProductID, l.Title, l.Category, string(compJSON),
		l.LifespanMonths, l.Impact.CO2, l.Impact.Water, l.Recommendations, l.CreatedAt,
	)
	return eris.Wrap(err, "sqlite: insert lookup")
}

func (s *SQLiteStore) GetLookup(ctx context.Context, id string) (*Lookup, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, query, product_id, title, category, composition, lifespan_months, co2_kg, water_liters, recommendations, created_at
		 FROM lookups WHERE id = ?`,
		id,
	)
	return scanLookup(row)
}

func (s *SQLiteStore) ListLookups(ctx context.Context, filter Filter) ([]Lookup, error) {
	query := `SELECT id, query, product_id, title, category, composition, lifespan_months, co2_kg, water_liters, recommendations, created_at
		 FROM lookups WHERE 1=1`
	var args []any

	if filter.Query != "" {
		query += ` AND query = ?`
		args = append(args, filter.Query)
	}
	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list lookups")
	}
	defer rows.Close()

	var lookups []Lookup
	for rows.Next() {
		l, err := scanLookup(rows)
		if err != nil {
			return nil, err
		}
		lookups = append(lookups, *l)
	}
	return lookups, eris.Wrap(rows.Err(), "sqlite: list lookups iterate")
}

// helpers

type scannable interface {
	Scan(dest ...any) error
}

func scanLookup(row scannable) (*Lookup, error) {
	var l Lookup
	var compJSON string

	err := row.Scan(&l.ID, &l.Query, &l.ProductID, &l.Title, &l.Category, &compJSON,
		&l.LifespanMonths, &l.Impact.CO2, &l.Impact.Water, &l.Recommendations, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("lookup not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan lookup")
	}

	if err := json.Unmarshal([]byte(compJSON), &l.Composition); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal composition")
	}
	return &l, nil
}
