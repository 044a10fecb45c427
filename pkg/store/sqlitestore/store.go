// Package sqlitestore implements a SQLite-backed lookup source for
// user-defined colors using the pure-Go modernc.org/sqlite driver.
package sqlitestore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/goliatone/go-colorfield/pkg/store"
)

//go:embed schema.sql
var schemaSQL string

// filterColumns maps the lookup-source filter keys onto table columns. Filter
// keys outside this allow-list are rejected before any SQL is built.
var filterColumns = map[string]string{
	store.FilterName:       "name",
	store.FilterBackground: "bg_class",
	store.FilterText:       "text_class",
}

// Store queries custom colors from a SQLite database.
type Store struct {
	db    *sql.DB
	owned bool
}

var _ store.LookupSource = (*Store)(nil)

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlitestore: database path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitestore: apply schema: %w", err)
	}
	return &Store{db: db, owned: true}, nil
}

// New wraps an existing database handle. The handle stays owned by the
// caller; Close becomes a no-op. The schema must already exist.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlitestore: db handle is required")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying handle when the store opened it.
func (s *Store) Close() error {
	if s == nil || s.db == nil || !s.owned {
		return nil
	}
	return s.db.Close()
}

// Insert adds a custom color record.
func (s *Store) Insert(ctx context.Context, record store.Record) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlitestore: store is not open")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_colors (name, bg_class, text_class) VALUES (?, ?, ?)`,
		record.Name, record.Background, record.Text,
	)
	if err != nil {
		return fmt.Errorf("sqlitestore: insert %q: %w", record.Name, err)
	}
	return nil
}

// All returns every custom color in insertion order.
func (s *Store) All(ctx context.Context) ([]store.Record, error) {
	return s.query(ctx, nil)
}

// Filtered returns the custom colors matching every criteria entry. Unknown
// filter fields are rejected.
func (s *Store) Filtered(ctx context.Context, criteria map[string]any) ([]store.Record, error) {
	return s.query(ctx, criteria)
}

func (s *Store) query(ctx context.Context, criteria map[string]any) ([]store.Record, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlitestore: store is not open")
	}

	query := `SELECT name, bg_class, text_class FROM custom_colors`
	var args []any
	if len(criteria) > 0 {
		keys := make([]string, 0, len(criteria))
		for key := range criteria {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		clauses := make([]string, 0, len(keys))
		for _, key := range keys {
			column, ok := filterColumns[key]
			if !ok {
				return nil, fmt.Errorf("sqlitestore: unknown filter field %q", key)
			}
			clauses = append(clauses, column+" = ?")
			args = append(args, fmt.Sprint(criteria[key]))
		}
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: query colors: %w", err)
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		var record store.Record
		if err := rows.Scan(&record.Name, &record.Background, &record.Text); err != nil {
			return nil, fmt.Errorf("sqlitestore: scan color: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlitestore: iterate colors: %w", err)
	}
	return out, nil
}
