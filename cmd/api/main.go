package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/eventbroker/nats"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/handlers/http/chi"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/handlers/http/chi/v1/media"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/provider/mux"
	"github.com/badalkr2004/lms-microservices-sub000/internal/adapters/repository/postgres"
	"github.com/badalkr2004/lms-microservices-sub000/internal/config"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/asset"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/reconcile"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/service/webhook"

	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//provider
	muxAdapter, err := mux.NewAdapter(cfg.Provider, logger)
	if err != nil {
		logger.Error("failed to init provider adapter", "error", err)
		os.Exit(1)
	}

	//content events
	publisher, err := nats.NewNATSPublisher(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	assetService := asset.NewAssetService(unitOfWork, muxAdapter, publisher, cfg.Upload, logger)
	verifier := webhook.NewHMACVerifier(cfg.Webhook.Secret)
	webhookService := webhook.NewWebhookService(verifier, assetService, cfg.Webhook.Tolerance, logger)
	reconcileService := reconcile.NewReconcileService(unitOfWork, muxAdapter, assetService, cfg.Reconcile, logger)

	//http
	mediaHandler := media.NewMediaHandlerV1(assetService, webhookService, logger)

	router := chi.NewRouter(logger, mediaHandler, muxAdapter, cfg)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//reconciliation sweeps
	sweeps := []struct {
		name  string
		every time.Duration
		run   func(context.Context, time.Time) error
	}{
		{"expire_sessions", cfg.Reconcile.SessionSweepEvery, reconcileService.ExpireSessions},
		{"retry_stuck", cfg.Reconcile.StuckSweepEvery, reconcileService.RetryStuck},
		{"merge_usage", cfg.Reconcile.UsageSweepEvery, reconcileService.MergeUsage},
		{"purge_failed", cfg.Reconcile.PurgeSweepEvery, reconcileService.PurgeFailed},
	}
	for _, sweep := range sweeps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runSweep(ctx, sweep.name, sweep.every, sweep.run, logger)
		}()
	}

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func runSweep(ctx context.Context, name string, every time.Duration, run func(context.Context, time.Time) error, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("sweep initialized", "sweep", name, "interval", every)

	for {
		select {
		case <-ticker.C:
			if err := run(ctx, time.Now()); err != nil {
				logger.Error("sweep failed", "sweep", name, "error", err)
			}
		case <-ctx.Done():
			logger.Info("sweep stopped", "sweep", name)
			return
		}
	}
}
