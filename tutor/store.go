package tutor

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nao1215/filesql"
	_ "modernc.org/sqlite"
)

// HRTables are the dataset tables backing the HR lessons. Each maps to a
// delimited file at <dataDir>/<TableName>.csv with the schema inferred from
// the header row and value contents.
var HRTables = []string{"Employees", "Departments", "Jobs"}

// Store is an isolated in-memory relational database scoped to one lesson
// render. It is created fresh on every render, never shared, and closed
// when the render ends.
type Store struct {
	db *sql.DB
}

// NewStore opens an empty in-memory store seeded with the demonstration
// users table.
func NewStore(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	// Every pooled connection gets its own :memory: database, so the pool
	// must stay at a single connection.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.seedDemo(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewHRStore opens a store holding the HR dataset loaded from dataDir plus
// the demonstration table. A missing or malformed backing file fails the
// whole load; nothing is recovered.
func NewHRStore(ctx context.Context, dataDir string) (*Store, error) {
	paths := make([]string, len(HRTables))
	for i, name := range HRTables {
		paths[i] = filepath.Join(dataDir, name+".csv")
	}
	db, err := filesql.OpenContext(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("load HR dataset: %w", err)
	}
	store := &Store{db: db}
	if err := store.seedDemo(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// seedDemo creates the sample users table used throughout the lessons.
func (s *Store) seedDemo(ctx context.Context) error {
	statements := []string{
		"CREATE TABLE IF NOT EXISTS users (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)",
		"INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 25)",
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed demo table: %w", err)
		}
	}
	return nil
}

// Tables returns the names of the user tables in the store in name order.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Snapshot returns the full contents of one table.
func (s *Store) Snapshot(ctx context.Context, table string) (*Snapshot, error) {
	return Run(ctx, s, "SELECT * FROM "+quoteIdent(table))
}

// Close releases the store. The database is in-memory, so closing discards
// all state.
func (s *Store) Close() error {
	return s.db.Close()
}

// quoteIdent quotes a table name for interpolation into a statement.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
