// Package storage is the client-side persistent store: a single key-value
// table playing the role the browser's localStorage plays in the Phase-I
// mockup. The session keeps its two entries here; nothing else is persisted.
package storage

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repository.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository is persistent client key-value storage.
//
// Get returns (nil, nil) when the key is absent; callers treat a missing
// entry the same way the mockup treats a missing localStorage key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
