// Package db persists generation history in SQLite. The schema is
// managed by embedded migrations that run on open, so a fresh database
// file is ready to use without any external tooling.
package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open opens (creating if needed) the SQLite database at path, applies
// pending migrations, and returns the handle. WAL mode is enabled so
// reads do not block the write path.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	handle, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "open database %q failed", path)
	}
	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent writers.
	handle.SetMaxOpenConns(1)

	if err := Migrate(handle); err != nil {
		handle.Close()
		return nil, err
	}
	return handle, nil
}

// Migrate applies all pending schema migrations.
func Migrate(handle *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(errors.ErrCodeDatabase, err, "load migrations failed")
	}
	driver, err := migratesqlite.WithInstance(handle, &migratesqlite.Config{})
	if err != nil {
		return errors.Wrap(errors.ErrCodeDatabase, err, "prepare migration driver failed")
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return errors.Wrap(errors.ErrCodeDatabase, err, "prepare migrations failed")
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(errors.ErrCodeDatabase, err, "apply migrations failed")
	}
	return nil
}
