package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CoinBot_Go/internal/admin"
	"github.com/osse101/CoinBot_Go/internal/bootstrap"
	"github.com/osse101/CoinBot_Go/internal/concurrency"
	"github.com/osse101/CoinBot_Go/internal/config"
	"github.com/osse101/CoinBot_Go/internal/cooldown"
	"github.com/osse101/CoinBot_Go/internal/discord"
	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/engine"
	"github.com/osse101/CoinBot_Go/internal/ledger"
	"github.com/osse101/CoinBot_Go/internal/random"
	"github.com/osse101/CoinBot_Go/internal/server"
	"github.com/osse101/CoinBot_Go/internal/shop"
)

func main() {
	if err := run(); err != nil {
		slog.Error("CoinBot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenLedger(ctx, cfg)
	if err != nil {
		return err
	}

	eventBus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		_ = store.Close()
		return err
	}

	catalog := domain.DefaultCatalog()
	rng := random.New(cfg.RandomSeed)
	ledgerSvc := ledger.NewService(
		store,
		concurrency.NewLockManager(),
		cooldown.NewChecker(cooldown.Config{}),
		rng,
		eventBus,
	)
	shopFlow := shop.NewFlow(shop.Config{
		Timeout:    cfg.PurchaseTimeout,
		MaxPending: cfg.MaxPendingSelections,
		Catalog:    catalog,
	}, ledgerSvc, eventBus)
	adminSvc := admin.NewService(ledgerSvc, eventBus, cfg.AdminIDs)
	eng := engine.New(ledgerSvc, shopFlow, adminSvc, rng, engine.WithCatalog(catalog))

	components := bootstrap.ShutdownComponents{Ledger: store}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
	}, store)
	components.Server = srv

	srvErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	if cfg.DiscordToken == "" {
		slog.Warn("DISCORD_TOKEN not set, running the ops server only")
	} else {
		bot, err := discord.New(discord.Config{Token: cfg.DiscordToken}, eng)
		if err != nil {
			bootstrap.GracefulShutdown(context.Background(), components)
			return err
		}
		if err := bot.Start(); err != nil {
			bootstrap.GracefulShutdown(context.Background(), components)
			return err
		}
		components.Bot = bot
	}

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
		err = nil
	case err = <-srvErr:
		slog.Error("Server failed", "error", err)
	}

	bootstrap.GracefulShutdown(context.Background(), components)
	return err
}
