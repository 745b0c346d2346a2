package bootstrap

import (
	"context"
	"io"
	"log/slog"
)

type stoppable interface {
	Stop(ctx context.Context) error
}

type botStopper interface {
	Stop() error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server stoppable
	Bot    botStopper
	Ledger io.Closer
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting probes and scrapes)
// 2. Discord bot (cancel pending purchase selections, wait for in-flight commands)
// 3. Ledger storage (nothing can write after the bot is down)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultShutdownTimeout)
		defer cancel()
	}

	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Bot != nil {
		slog.Info(LogMsgShuttingDownBot)
		if err := components.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotStopFailed, "error", err)
		}
	}

	if components.Ledger != nil {
		slog.Info(LogMsgClosingLedger)
		if err := components.Ledger.Close(); err != nil {
			slog.Error(LogMsgLedgerCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
