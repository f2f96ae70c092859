package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore keeps the snapshot in a one-row jsonb table keyed by
// name. EnsureSchema must run once at startup.
func NewPostgresStore(db *pgxpool.Pool) domain.StateStore {
	return &postgresStore{db: db}
}

// EnsureSchema creates the snapshot table if it does not exist.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	query := `CREATE TABLE IF NOT EXISTS app_state (
        name       TEXT PRIMARY KEY,
        data       JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("statestore: ensure schema: %w", err)
	}
	return nil
}

func (s *postgresStore) Load(ctx context.Context) (*domain.AppSnapshot, error) {
	query := `SELECT data FROM app_state WHERE name = $1`
	var data []byte
	err := s.db.QueryRow(ctx, query, domain.StateKey).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("statestore: select: %w", err)
	}

	var snap domain.AppSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Log.Warn("Discarding malformed state row", "name", domain.StateKey, "error", err)
		return nil, nil
	}
	return &snap, nil
}

func (s *postgresStore) Save(ctx context.Context, snap *domain.AppSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("statestore: marshal snapshot: %w", err)
	}

	query := `INSERT INTO app_state (name, data, updated_at) VALUES ($1, $2, now())
              ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := s.db.Exec(ctx, query, domain.StateKey, data); err != nil {
		return fmt.Errorf("statestore: upsert: %w", err)
	}
	return nil
}
