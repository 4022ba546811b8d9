package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bobbot/osrs-api/internal/api"
	"github.com/bobbot/osrs-api/internal/config"
	"github.com/bobbot/osrs-api/internal/dataset"
	"github.com/bobbot/osrs-api/internal/gateway"
	"github.com/bobbot/osrs-api/internal/logging"
	"github.com/bobbot/osrs-api/internal/osrs"
	"github.com/bobbot/osrs-api/internal/storage"
	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", ".env", "Optional dotenv file")
	port := flag.String("port", "", "Server port (overrides PORT)")
	dbPath := flag.String("db", "", "SQLite database path (overrides DB_PATH)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	store, err := storage.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := seedIfEmpty(store, logger); err != nil {
		return err
	}

	client := osrs.NewClient(osrs.Config{
		HiscoresURL: cfg.HiscoresURL,
		WikiAPIURL:  cfg.WikiAPIURL,
		PricesURL:   cfg.PricesAPIURL,
		UserAgent:   cfg.UserAgent,
		Timeout:     cfg.HTTPTimeout,
	}, logger.Named("osrs"))

	svc := gateway.New(client, client, client, store, gateway.Options{
		WikiPageURL: cfg.WikiPageURL,
		Logger:      logger.Named("gateway"),
	})

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: api.New(svc, api.Options{
			CORSOrigins: cfg.CORSOrigins,
			Logger:      logger.Named("http"),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("OSRS API starting",
			zap.String("addr", "http://localhost:"+cfg.Port),
			zap.String("database", describeDB(cfg.DBPath)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func seedIfEmpty(store *storage.Store, logger *zap.Logger) error {
	empty, err := store.IsEmpty()
	if err != nil {
		return err
	}
	if !empty {
		masters, err := store.ListSlayerMasters()
		if err != nil {
			return err
		}
		logger.Info("using existing dataset", zap.Strings("slayer_masters", masters))
		return nil
	}

	ds, err := dataset.Bundled()
	if err != nil {
		return err
	}
	if err := store.Seed(ds.Quests, ds.Masters); err != nil {
		return err
	}
	logger.Info("seeded bundled dataset",
		zap.Int("quests", len(ds.Quests)),
		zap.Int("slayer_masters", len(ds.Masters)),
	)
	return nil
}

func describeDB(path string) string {
	if path == "" {
		return "in-memory"
	}
	return path
}
