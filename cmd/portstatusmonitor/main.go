package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"PortStatusMonitor/internal/app"
	"PortStatusMonitor/internal/config"
	"PortStatusMonitor/internal/logging"
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("update run failed", "error", err)
		os.Exit(1)
	}
}
