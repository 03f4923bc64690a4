package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor - общий срез *sql.DB и *sql.Tx: репозиторий работает
// одинаково и в транзакции, и вне её
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
