package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CoinBot_Go/internal/config"
	"github.com/osse101/CoinBot_Go/internal/database"
	"github.com/osse101/CoinBot_Go/internal/database/memory"
	"github.com/osse101/CoinBot_Go/internal/database/postgres"
	"github.com/osse101/CoinBot_Go/internal/database/sqlite"
	"github.com/osse101/CoinBot_Go/internal/repository"
)

// OpenLedger opens the configured ledger backend with migrations applied.
// The returned store owns its connections; Close releases them.
func OpenLedger(ctx context.Context, cfg *config.Config) (repository.Ledger, error) {
	var (
		store repository.Ledger
		err   error
	)

	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = memory.New()
	case config.BackendSQLite:
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
	case config.BackendPostgres:
		store, err = openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	slog.Info(LogMsgLedgerOpened, "backend", cfg.StorageBackend)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Ledger, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	repo, err := postgres.Open(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPostgres, err)
	}
	return repo, nil
}
