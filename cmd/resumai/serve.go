package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Nanford/resumai/internal/advice"
	"github.com/Nanford/resumai/internal/config"
	"github.com/Nanford/resumai/internal/i18n"
	"github.com/Nanford/resumai/internal/llm"
	"github.com/Nanford/resumai/internal/server"
	"github.com/Nanford/resumai/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the advice and conversation endpoints. Configuration comes from the environment; see .env.example.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

// openBackend builds the persistence surface selected by STORE_BACKEND. The
// returned closer is a no-op for the in-memory backend.
func openBackend(ctx context.Context, cfg *config.Config) (store.KV, func(), error) {
	switch cfg.StoreBackend {
	case "bolt":
		b, err := store.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open bolt store: %w", err)
		}
		return b, func() { _ = b.Close() }, nil
	case "postgres":
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return pg, pg.Close, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBackend()

	tr, err := i18n.Load(cfg.Language)
	if err != nil {
		return err
	}

	svc, err := advice.NewService(ctx, advice.ServiceConfig{
		Provider:      llm.Provider(cfg.Provider),
		APIKey:        cfg.APIKey(),
		BaseURL:       cfg.DeepSeekURL,
		StandardModel: cfg.StandardModel,
		ThinkingModel: cfg.ThinkingModel,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create advice service: %w", err)
	}
	defer func() { _ = svc.Close() }()

	srv := server.New(server.Config{
		Port:       cfg.Port,
		Service:    svc,
		Backend:    backend,
		Translator: tr,
		Logger:     logger,
	})
	return srv.Start(ctx)
}
