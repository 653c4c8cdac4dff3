package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ITTVDU45/goetzrental/internal"
	"github.com/ITTVDU45/goetzrental/internal/catalog"
	"github.com/ITTVDU45/goetzrental/internal/configurator"
	"github.com/ITTVDU45/goetzrental/internal/email"
	"github.com/ITTVDU45/goetzrental/internal/handler"
	"github.com/ITTVDU45/goetzrental/internal/jobs"
	"github.com/ITTVDU45/goetzrental/internal/lead"
	"github.com/ITTVDU45/goetzrental/internal/leadstore"
	"github.com/ITTVDU45/goetzrental/internal/metrics"
	"github.com/ITTVDU45/goetzrental/internal/middleware"
	"github.com/ITTVDU45/goetzrental/internal/recommend"
	"github.com/ITTVDU45/goetzrental/internal/worker"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Optional database: without it the configurator still runs, but
	// inquiries are not archived and no notification mail is sent.
	var db *sql.DB
	if cfg.DatabaseUrl != "" {
		db, err = sql.Open("pgx", cfg.DatabaseUrl)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}

		if err := internal.RunMigrations(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("Database ready")
	} else {
		logger.Warn("DATABASE_URL not set, inquiry archive and notifications disabled")
	}

	// Catalog side: client, snapshot loader, recommendation engine
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout, logger)
	loader := catalog.NewLoader(catalogClient, logger)
	engine := recommend.NewEngine(catalogClient, logger)

	// Lead intake
	submitter := lead.NewAdapter(cfg.IntakeURL, cfg.IntakeTimeout, logger)

	// Session registry with idle sweep
	sessions := configurator.NewManager(cfg.SessionTTL, cfg.SessionSweepInterval, logger)
	sessions.Start()
	defer sessions.Stop()

	// Archive + background notification worker (database required)
	var archiver handler.InquiryArchiver
	var jobWorker *worker.Worker
	if db != nil {
		store := leadstore.New(db, logger)
		archiver = leadstore.NewArchiver(store, db, logger)

		if cfg.WorkerEnabled {
			emailService := email.NewSMTPService(email.SMTPConfig{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				Username: cfg.SMTPUsername,
				Password: cfg.SMTPPassword,
				From:     cfg.SMTPFrom,
				FromName: cfg.SMTPFromName,
			}, logger)

			workerCfg := worker.DefaultConfig()
			workerCfg.Concurrency = cfg.WorkerConcurrency
			workerCfg.PollInterval = cfg.WorkerPollInterval
			workerCfg.JobTimeout = cfg.WorkerJobTimeout

			jobWorker, err = worker.New(db, workerCfg, logger)
			if err != nil {
				return fmt.Errorf("worker initialization failed: %w", err)
			}
			jobWorker.Register(jobs.NewLeadNotificationHandler(store, emailService, cfg.LeadNotifyEmail, logger))
			jobWorker.Start(ctx)
			defer jobWorker.Stop()
		}
	}

	// Middleware
	isSecure := cfg.Env != "development"
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow, logger)
	defer rateLimiter.Stop()

	// Handlers
	configuratorHandler := handler.NewConfiguratorHandler(sessions, loader, engine, submitter, archiver, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics (optionally behind basic auth)
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	configuratorHandler.RegisterRoutes(mux, rateLimiter.Handler)

	// Unmatched paths get the same JSON error envelope as the API
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handler.NotFoundResponse(w, r, logger)
	})

	var root http.Handler = mux
	root = metrics.Middleware(root)
	root = loggingMw.Handler(root)
	root = securityMw.Handler(root)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
		return err
	}

	logger.Info("Server stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
