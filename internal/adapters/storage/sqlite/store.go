// Package sqlite guarda adopciones en un archivo SQLite (driver puro Go, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pet-explorer/internal/adapters/storage/migrations"
	"pet-explorer/internal/domain/adoptions"

	_ "modernc.org/sqlite"
)

// Open crea el directorio si hace falta, abre la base y aplica migraciones.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// busy_timeout espera locks; WAL + synchronous(NORMAL) para escrituras cortas.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := migrations.Up(db, migrations.SQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}
	return db, nil
}

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) Add(ctx context.Context, a adoptions.Adoption) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO adoptions (id, session_id, pet_id, adopted_at)
		VALUES (?,?,?,?)
		ON CONFLICT (session_id, pet_id) DO NOTHING
	`, a.ID, a.SessionID, a.PetID, a.AdoptedAt.UTC().UnixNano())
	if err != nil {
		return false, fmt.Errorf("insert adoption: %w", err)
	}
	return inserted(res)
}

func (r *AdoptionsRepo) Has(ctx context.Context, sessionID, petID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM adoptions WHERE session_id = ? AND pet_id = ?
	`, sessionID, petID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query adoption: %w", err)
	}
	return n > 0, nil
}

func (r *AdoptionsRepo) ListBySession(ctx context.Context, sessionID string) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, pet_id, adopted_at
		FROM adoptions
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list adoptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []adoptions.Adoption
	for rows.Next() {
		var (
			a  adoptions.Adoption
			ns int64
		)
		if err := rows.Scan(&a.ID, &a.SessionID, &a.PetID, &ns); err != nil {
			return nil, err
		}
		a.AdoptedAt = time.Unix(0, ns).UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

// inserted traduce RowsAffected a created; un error del driver no se confunde con "ya existía".
func inserted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("adoption rows affected: %w", err)
	}
	return n > 0, nil
}
