package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"habitd/internal/rotation"
	"habitd/internal/storage"
	"habitd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "habitd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	logger, err := buildLogger(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	kv := openKV(cfg, logger)
	defer kv.Close()

	store := storage.NewHabitStore(kv, logger)
	habits := store.Load(context.Background())

	rotator, err := rotation.NewEngine(time.Duration(cfg.QuoteIntervalSec)*time.Second, cfg.RotationBuffer)
	if err != nil {
		return fmt.Errorf("quote rotation: %w", err)
	}
	rotator.Start()

	m := update.NewModelWithRuntime(habits, store, rotator)
	program := tea.NewProgram(m)
	_, runErr := program.Run()

	rotator.Stop()
	if dropped := rotator.Dropped(); dropped > 0 {
		logger.Info("quote ticks dropped by slow ui", zap.Uint64("count", dropped))
	}
	return runErr
}

// buildLogger writes to a file when a log path is set and stays silent
// otherwise; stderr output would tear the terminal UI.
func buildLogger(logPath string) (*zap.Logger, error) {
	if logPath == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{logPath}
	zcfg.ErrorOutputPaths = []string{logPath}
	return zcfg.Build()
}

// openKV opens the SQLite store, falling back to an in-memory no-op
// when the database cannot be opened so the UI still runs.
func openKV(cfg update.RuntimeConfig, logger *zap.Logger) storage.KV {
	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Warn("resolve home dir", zap.Error(err))
			return storage.NoopKV{}
		}
		dbPath = filepath.Join(home, ".habitd", "habitd.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logger.Warn("create data dir", zap.String("path", dbPath), zap.Error(err))
		return storage.NoopKV{}
	}
	kv, err := storage.OpenSQLite(dbPath)
	if err != nil {
		logger.Warn("open database", zap.String("path", dbPath), zap.Error(err))
		return storage.NoopKV{}
	}
	return kv
}
