package sqlconfig

import (
	"context"
	"database/sql"
)

// Executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Table readers run against either; table writers always hold a *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Executor = (*sql.DB)(nil)
	_ Executor = (*sql.Tx)(nil)
)
