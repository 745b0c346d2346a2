package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/CoinBot_Go/internal/bootstrap"
	"github.com/osse101/CoinBot_Go/internal/concurrency"
	"github.com/osse101/CoinBot_Go/internal/config"
	"github.com/osse101/CoinBot_Go/internal/cooldown"
	"github.com/osse101/CoinBot_Go/internal/ledger"
	"github.com/osse101/CoinBot_Go/internal/random"
)

// reset zeroes every balance in the configured ledger while the bot is down.
// Claim timestamps and inventories are kept.
func main() {
	confirm := flag.Bool("yes", false, "Confirm wiping every balance")
	flag.Parse()

	if !*confirm {
		fmt.Fprintln(os.Stderr, "refusing to wipe balances without -yes")
		os.Exit(2)
	}

	if err := run(context.Background()); err != nil {
		slog.Error("Balance reset failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logFile, err := bootstrap.SetupLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	store, err := bootstrap.OpenLedger(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := ledger.NewService(store, concurrency.NewLockManager(), cooldown.NewChecker(cooldown.Config{}), random.New(0), nil)
	if err := svc.ResetAllBalances(ctx); err != nil {
		return err
	}

	slog.Info("✅ Balance reset complete", "backend", cfg.StorageBackend)
	return nil
}
