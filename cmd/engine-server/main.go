// cmd/engine-server/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"onboarding-engine/internal/api"
	"onboarding-engine/internal/common/config"
	"onboarding-engine/internal/common/database"
	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/common/observability"
	"onboarding-engine/internal/company"
	"onboarding-engine/internal/draft"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/session"
	"onboarding-engine/internal/storage"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting engine server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Wire the engine ---
	persisted := storage.NewRedisStore(
		redis.Client,
		cfg.Draft.KeyPrefix,
		time.Duration(cfg.Draft.TTL)*time.Second,
	)

	sessionRepo := session.NewPostgresRepository(pg.DB)
	go invalidateExpiredSessions(ctx, sessionRepo, zapLog)

	sessions := session.NewStore(persisted, log)
	sessions.Init(ctx)

	client := company.NewClient(
		cfg.Upstream.CompanyAPI.BaseURL,
		cfg.Upstream.CompanyAPI.APIKey,
		config.GetDuration(cfg.Upstream.CompanyAPI.Timeout),
		log,
	)
	companySvc := company.NewService(client, log, obs)
	if err := companySvc.Refresh(ctx); err != nil {
		zapLog.Warn("initial profile refresh failed, starting with empty graph", zap.Error(err))
	}

	drafts := draft.NewStore(ctx, persisted, log)

	submit := func(ctx context.Context, d models.PartnerDraft) error {
		return companySvc.SubmitStep(ctx, func(ctx context.Context) error {
			// The submit endpoint is supplied by the deployment; the
			// engine only owns the refresh that follows.
			return nil
		})
	}

	handler := api.NewHandler(companySvc, drafts, sessions, submit, log)
	router := api.NewRouter(handler, log)

	// --- API server ---
	server := &http.Server{
		Addr:         cfg.Server.ListenAddress,
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("API server listening", zap.String("address", cfg.Server.ListenAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}()

	// --- Health/Metrics server ---
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		mux.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, mux); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down API server", zap.Error(err))
	}

	zapLog.Info("Engine server stopped gracefully")
}

// invalidateExpiredSessions sweeps stale sessions once an hour.
func invalidateExpiredSessions(ctx context.Context, repo *session.PostgresRepository, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.InvalidateExpired(ctx); err != nil {
				log.Warn("expired session sweep failed", zap.Error(err))
			}
		}
	}
}
