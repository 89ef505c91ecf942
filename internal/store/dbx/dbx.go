package dbx

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Conn)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// NullIfEmpty maps nil or "" to SQL NULL.
func NullIfEmpty(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

// StringPtr turns a nullable column back into an optional string.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// Acquirer lends out one pooled connection for the duration of fn.
type Acquirer interface {
	WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error
}
