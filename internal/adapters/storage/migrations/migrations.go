// Package migrations embebe los SQL de goose para los stores SQL.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect es a la vez el nombre del dialecto goose y el directorio embebido.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) goose() string {
	if d == SQLite {
		return "sqlite3"
	}
	return string(d)
}

// Up aplica las migraciones pendientes del dialecto.
func Up(db *sql.DB, d Dialect) error {
	goose.SetBaseFS(files)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.goose()); err != nil {
		return fmt.Errorf("goose dialect %s: %w", d, err)
	}
	if err := goose.Up(db, string(d)); err != nil {
		return fmt.Errorf("goose up %s: %w", d, err)
	}
	return nil
}
