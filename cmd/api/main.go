package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"revenue-distribution-engine/config"
	httpHandler "revenue-distribution-engine/internal/adapter/http/handler"
	"revenue-distribution-engine/internal/adapter/processor"
	pgStorage "revenue-distribution-engine/internal/adapter/storage/postgres"
	redisStorage "revenue-distribution-engine/internal/adapter/storage/redis"
	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/internal/service"
	"revenue-distribution-engine/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Reconciliation sweep: payments stuck in PENDING/PROCESSING past the cutoff
// are failed in batches.
const (
	reconcileInterval = 5 * time.Minute
	reconcileCutoff   = 15 * time.Minute
	reconcileBatch    = 100
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("api", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Revenue Distribution Engine")

	platformID, err := uuid.Parse(cfg.Platform.AccountID)
	if err != nil {
		log.Fatal().Err(err).Msg("platform.account_id must be a UUID")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Seed fee schedule: used until a persisted schedule exists.
	seedSchedule, err := domain.NewFeeSchedule(1, cfg.Fees.Phase, cfg.Fees.DefaultFeePercent, time.Now().UTC())
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid fee configuration")
	}
	distributionFee, err := domain.NewFeePercentage(cfg.Fees.DistributionFeePercent)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid distribution fee configuration")
	}

	// Initialize repositories
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	royaltyRepo := pgStorage.NewRoyaltyRepo(pool)
	sharingRepo := pgStorage.NewRevenueSharingRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	feeRepo := pgStorage.NewFeeScheduleRepo(pool, seedSchedule)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	velocityStore := redisStorage.NewVelocityStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	clients := make([]service.ClientCredential, 0, len(cfg.Clients))
	for _, c := range cfg.Clients {
		clients = append(clients, service.ClientCredential{ID: c.ID, SecretHash: c.SecretHash})
	}
	authSvc := service.NewAuthService(clients, hashSvc, tokenSvc, logger.For(log, "auth"))

	fraudSvc := service.NewRuleFraudService(velocityStore, service.FraudConfig{
		HighAmountMinor:     cfg.Fraud.HighAmountMinor,
		CriticalAmountMinor: cfg.Fraud.CriticalAmountMinor,
		VelocityLimit:       cfg.Fraud.VelocityLimit,
		VelocityWindow:      cfg.Fraud.VelocityWindow,
	}, logger.For(log, "fraud"))

	ledger := processor.NewLedgerProcessor(logger.For(log, "ledger"))
	notifier := service.NewWebhookNotificationService(
		cfg.Notification.Endpoint,
		cfg.Notification.SigningSecret,
		&http.Client{Timeout: cfg.Notification.Timeout},
		true,
		logger.For(log, "notifier"),
	)

	// Initialize business services
	paymentSvc := service.NewPaymentService(
		paymentRepo,
		idempotencyRepo,
		idempotencyCache,
		feeRepo,
		fraudSvc,
		ledger,
		notifier,
		transactor,
		logger.For(log, "payment"),
	)
	royaltySvc := service.NewRoyaltyService(
		royaltyRepo, paymentRepo, paymentSvc, transactor, notifier, platformID,
		distributionFee, logger.For(log, "royalty"),
	)
	sharingSvc := service.NewRevenueSharingService(
		sharingRepo, paymentRepo, paymentSvc, transactor, notifier, platformID,
		distributionFee, logger.For(log, "revenue-sharing"),
	)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:           authSvc,
		PaymentSvc:        paymentSvc,
		RoyaltySvc:        royaltySvc,
		RevenueSharingSvc: sharingSvc,
		TokenSvc:          tokenSvc,
		RateLimitStore:    rateLimitStore,
		HealthCheckers:    []ports.HealthChecker{pgHealth, redisHealth},
		Logger:            log,
	})

	// Background reconciliation of stale payments
	reconcileCtx, stopReconcile := context.WithCancel(ctx)
	defer stopReconcile()
	go runReconciliation(reconcileCtx, paymentSvc, logger.For(log, "reconciler"))

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")
	stopReconcile()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// runReconciliation periodically fails payments stuck in non-terminal states
// past the cutoff, so crashed workers cannot strand money in PROCESSING.
func runReconciliation(ctx context.Context, paymentSvc ports.PaymentService, log zerolog.Logger) {
	ticker := time.NewTicker(reconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			resolved, err := paymentSvc.ReconcileStalePayments(ctx, time.Now().UTC().Add(-reconcileCutoff), reconcileBatch)
			if err != nil {
				log.Error().Err(err).Msg("stale payment reconciliation failed")
				continue
			}
			if resolved > 0 {
				log.Info().Int("resolved", resolved).Msg("stale payments reconciled")
			}
		}
	}
}
