package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/config"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/database"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/database/postgres"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/handler"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/save"
)

// Store is the configured save backend plus what readiness and shutdown need
type Store struct {
	save.Store
	// Ready is nil for local backends
	Ready handler.Pinger
	Close func()
}

// InitializeStore builds the save store selected by STORE_BACKEND.
// The postgres backend connects, applies embedded migrations and is pinged by /readyz.
func InitializeStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var st *Store
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		st = &Store{Store: save.NewMemoryStore(), Close: func() {}}

	case config.StoreBackendFile:
		fs, err := save.NewFileStore(cfg.SaveDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateFileStore, err)
		}
		st = &Store{Store: fs, Close: func() {}}

	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxIdleTime, DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
		}
		ps := postgres.NewSaveStore(pool)
		st = &Store{Store: ps, Ready: ps, Close: pool.Close}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreBackend, cfg.StoreBackend)
	}

	slog.Info(LogMsgStoreInitialized, "backend", cfg.StoreBackend)
	return st, nil
}
