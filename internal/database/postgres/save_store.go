package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the save store needs
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// SaveStore keeps serialized saves in the game_saves table
type SaveStore struct {
	db Querier
}

// NewSaveStore creates a store over an already migrated database
func NewSaveStore(db Querier) *SaveStore {
	return &SaveStore{db: db}
}

// Get returns the stored save and whether the key exists
func (s *SaveStore) Get(ctx context.Context, key string) (string, bool, error) {
	var data string
	err := s.db.QueryRow(ctx, querySelectSave, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s %q: %w", ErrMsgFailedToGetSave, key, err)
	}
	return data, true, nil
}

// Set upserts the save for key
func (s *SaveStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.Exec(ctx, queryUpsertSave, key, value, len(value)); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToSetSave, key, err)
	}
	return nil
}

// Count returns how many saves are stored
func (s *SaveStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, queryCountSaves).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountSave, err)
	}
	return n, nil
}

// Ping checks database connectivity for readiness probes
func (s *SaveStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
