package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/CoinBot_Go/internal/config"
	"github.com/osse101/CoinBot_Go/internal/logger"
)

// SetupLogger installs the process logger from cfg. When cfg.LogDir is set the
// output also goes to a fresh session log file there, older session files
// beyond the retention count are removed, and the file is returned for the
// caller to close.
func SetupLogger(cfg *config.Config, stdout io.Writer) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, !cfg.IsProduction())

	var logFile *os.File
	w := stdout
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(stdout, f)
	}

	logger.InitLoggerWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", cfg.LogFormat)
	slog.Info(LogMsgStartingCoinBot,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageBackend)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"purchase_timeout", cfg.PurchaseTimeout,
		"max_pending", cfg.MaxPendingSelections,
		"admins", len(cfg.AdminIDs))

	return logFile, nil
}

// cleanupLogs keeps only the newest LogFileRetentionCount session logs.
// Names embed a sortable timestamp, so lexical order is age order.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= LogFileRetentionCount {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
