package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Subh211/weave-backend/internal/domain/repository"
)

// The friend graph, post collection, saved posts, and notification records
// are document-shaped: one JSONB row per user, read and written whole. These
// helpers cover that pattern for all four tables.

func getDoc(ctx context.Context, pool *pgxpool.Pool, table, userID string, dest any) error {
	var raw []byte
	row := pool.QueryRow(ctx, fmt.Sprintf(`SELECT doc FROM %s WHERE user_id = $1`, table), userID)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

func saveDoc(ctx context.Context, pool *pgxpool.Pool, table, userID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (user_id, doc)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, table), userID, raw)
	return err
}
