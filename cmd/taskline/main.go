package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskline/internal/app"
	"taskline/internal/config"
	"taskline/internal/storage"
	"taskline/internal/task"
	"taskline/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file.
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctrl := app.New(store, logger, app.Options{
		Sort:   task.SortCriterion(cfg.DefaultSort),
		Filter: cfg.DefaultFilter,
	})

	if err := ui.Run(ctrl, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.LogPath}
	zc.ErrorOutputPaths = []string{cfg.LogPath}
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}
