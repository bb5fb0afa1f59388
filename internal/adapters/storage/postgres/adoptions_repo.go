package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-explorer/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

// Add inserta la adopción; el UNIQUE (session_id, pet_id) la vuelve idempotente.
func (r *AdoptionsRepo) Add(ctx context.Context, a adoptions.Adoption) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO adoptions (id, session_id, pet_id, adopted_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (session_id, pet_id) DO NOTHING
	`,
		a.ID,
		a.SessionID,
		a.PetID,
		a.AdoptedAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("insert adoption: %w", err)
	}
	return inserted(res)
}

func (r *AdoptionsRepo) Has(ctx context.Context, sessionID, petID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM adoptions WHERE session_id = $1 AND pet_id = $2
		)
	`, sessionID, petID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query adoption: %w", err)
	}
	return exists, nil
}

func (r *AdoptionsRepo) ListBySession(ctx context.Context, sessionID string) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, pet_id, adopted_at
		FROM adoptions
		WHERE session_id = $1
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list adoptions: %w", err)
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0, 8)
	for rows.Next() {
		var a adoptions.Adoption
		if err := rows.Scan(&a.ID, &a.SessionID, &a.PetID, &a.AdoptedAt); err != nil {
			return nil, err
		}
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
