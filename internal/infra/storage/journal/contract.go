package journal

import (
	"context"
	"database/sql"
)

// DBExecutor is the subset of *sql.DB the repository needs. Declared
// here so tests can substitute a fake.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
