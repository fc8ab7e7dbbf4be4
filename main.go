package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/dskvich/image-api/pkg/api"
	"github.com/dskvich/image-api/pkg/api/handlers"
	"github.com/dskvich/image-api/pkg/database"
	"github.com/dskvich/image-api/pkg/generator"
	"github.com/dskvich/image-api/pkg/llm/stability"
	"github.com/dskvich/image-api/pkg/logger"
	"github.com/dskvich/image-api/pkg/repository"
	"github.com/dskvich/image-api/pkg/services"
	"github.com/dskvich/image-api/pkg/stock"
)

type Config struct {
	StabilityAPIKey string `env:"STABILITY_API_KEY"`
	Port            string `env:"PORT" envDefault:"8000"`
	PgURL           string `env:"DATABASE_URL"`
	PgHost          string `env:"DB_HOST" envDefault:"localhost:5432"`
	BunDebug        int    `env:"BUNDEBUG" envDefault:"0"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	svcGroup, err := setupServices(ctx)
	if err != nil {
		return err
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return svcGroup.Start(ctx)
}

func setupServices(ctx context.Context) (services.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	// Persistence is advisory; the service runs fine without a database.
	var saver generator.GenerationSaver
	var diagnostics handlers.DatabaseDiagnostics

	db, err := database.NewDB(cfg.PgURL, cfg.PgHost)
	if err != nil {
		slog.Warn("database unavailable, continuing without persistence", logger.Err(err))
	} else {
		repo := repository.NewGenerationRepository(db)
		saver = repo
		diagnostics = repo
	}

	var live generator.LiveImageGenerator
	if cfg.StabilityAPIKey != "" {
		client, err := stability.NewClient(cfg.StabilityAPIKey)
		if err != nil {
			return nil, fmt.Errorf("creating stability client: %w", err)
		}
		live = client
	} else {
		slog.Info("STABILITY_API_KEY not set, running in demo mode")
	}

	generatorService := generator.NewService(live, stock.NewPicsumClient(), saver)

	var svcGroup services.Group

	svc, err := services.NewHTTPServer(cfg.Port, api.NewRouter(generatorService, diagnostics))
	if err != nil {
		return nil, fmt.Errorf("creating http server: %w", err)
	}
	svcGroup = append(svcGroup, svc)

	return svcGroup, nil
}
