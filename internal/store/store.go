package store

import (
	"context"
	"database/sql"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
)

// Open connects to the database behind the given DSN.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to open database")
	}

	// in-memory databases live per connection
	if strings.Contains(dsn, ":memory:") {
		sqldb.SetMaxOpenConns(1)
	}

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// Setup creates the schema. The unique index on accounts.email is what
// makes concurrent duplicate registrations impossible.
func Setup(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*auth.Account)(nil),
		(*User)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create table")
		}
	}

	return nil
}

// isUniqueViolation matches the constraint error across the sqlite shim
// drivers, which only agree on the message text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed: UNIQUE") ||
		strings.Contains(err.Error(), "duplicate key value")
}

func notFound(what string) *goerrors.Error {
	return goerrors.New(what+" not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound)
}
