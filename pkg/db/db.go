// Package db opens the store used for server-hardware documents: embedded
// SQLite by default, PostgreSQL when the path is a postgres:// URL.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	// registers the "pgx" driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	// registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"

	memoryPath = ":memory:"
)

// SQL bundles the connection pool with a placeholder-aware query builder.
type SQL struct {
	Builder squirrel.StatementBuilderType
	Pool    *sql.DB
	Driver  string
}

// driverFor picks the database/sql driver and placeholder style for dsn.
func driverFor(dsn string) (string, squirrel.PlaceholderFormat) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres, squirrel.Dollar
	}

	return DriverSQLite, squirrel.Question
}

// Open connects to dsn. A postgres:// or postgresql:// URL selects
// PostgreSQL; anything else is a SQLite file path, created when absent.
// ":memory:" limits the pool to one connection so every query sees the same
// in-memory database.
func Open(ctx context.Context, dsn string) (*SQL, error) {
	driver, placeholder := driverFor(dsn)

	pool, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db - Open - sql.Open: %w", err)
	}

	if dsn == memoryPath {
		pool.SetMaxOpenConns(1)
	}

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()

		return nil, fmt.Errorf("db - Open - Ping: %w", err)
	}

	return &SQL{
		Builder: squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		Pool:    pool,
		Driver:  driver,
	}, nil
}

// Close -.
func (s *SQL) Close() error {
	if s.Pool == nil {
		return nil
	}

	return s.Pool.Close()
}
