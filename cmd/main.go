package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katiamach/climate-service-api/internal/api"
	"github.com/katiamach/climate-service-api/internal/config"
	"github.com/katiamach/climate-service-api/internal/logger"
	"github.com/katiamach/climate-service-api/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(err)
	}

	if err := run(cfg); err != nil {
		logger.Fatal(fmt.Errorf("failed to run climate api: %w", err))
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, err := repository.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Driver, err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error(err)
		}
	}()

	logger.Debug(fmt.Sprintf("Opened %s store", cfg.Driver))

	return api.RunAPI(ctx, cfg, repo)
}
