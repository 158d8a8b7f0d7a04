package db

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies the pending up migrations found under dir in fsys.
// The migrate instance is not closed since that would close s.Pool.
func (s *SQL) Migrate(fsys fs.FS, dir string) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("db - Migrate - iofs.New: %w", err)
	}
	defer src.Close()

	target, err := s.migrationTarget()
	if err != nil {
		return fmt.Errorf("db - Migrate - %s.WithInstance: %w", s.Driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, s.Driver, target)
	if err != nil {
		return fmt.Errorf("db - Migrate - migrate.NewWithInstance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("db - Migrate - m.Up: %w", err)
	}

	return nil
}

func (s *SQL) migrationTarget() (database.Driver, error) {
	if s.Driver == DriverPostgres {
		return migratepgx.WithInstance(s.Pool, &migratepgx.Config{})
	}

	return migratesqlite.WithInstance(s.Pool, &migratesqlite.Config{})
}
