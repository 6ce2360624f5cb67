package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS clinic_state (
	name       TEXT PRIMARY KEY,
	document   TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps each document as a row in a two-column state table.
type PostgresStore struct {
	db        *sqlx.DB
	namespace string
}

func NewPostgresStore(ctx context.Context, dsn, namespace string) (*PostgresStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure state table: %w", err)
	}
	return &PostgresStore{db: db, namespace: namespace}, nil
}

func (s *PostgresStore) name(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + ":" + key
}

func (s *PostgresStore) Load(ctx context.Context, key string) (string, bool, error) {
	var doc string
	err := s.db.GetContext(ctx, &doc,
		`SELECT document FROM clinic_state WHERE name = $1`, s.name(key))
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}
	return doc, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clinic_state (name, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET document = $2, updated_at = now()`,
		s.name(key), value)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM clinic_state WHERE name = $1`, s.name(key)); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
