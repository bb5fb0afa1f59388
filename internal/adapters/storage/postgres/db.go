package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pet-explorer/internal/adapters/storage/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql) y aplica migraciones.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrations.Up(db, migrations.Postgres); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}

	return db, nil
}
