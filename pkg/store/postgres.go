package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// PostgresStore persists each collection as a single JSONB document row.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgres wraps an open database handle.
func NewPostgres(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the collections table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		doc JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure collections schema: %w", err)
	}
	return nil
}

// Get loads a collection document, nil when the collection is absent.
func (s *PostgresStore) Get(ctx context.Context, collection string) ([]byte, error) {
	const query = `SELECT doc FROM collections WHERE name = $1`
	var doc []byte
	if err := s.db.GetContext(ctx, &doc, query, collection); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collection %s: %w", collection, err)
	}
	return doc, nil
}

// Put replaces a collection document.
func (s *PostgresStore) Put(ctx context.Context, collection string, doc []byte) error {
	const query = `INSERT INTO collections (name, doc, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, query, collection, doc, time.Now().UTC()); err != nil {
		return fmt.Errorf("put collection %s: %w", collection, err)
	}
	return nil
}
