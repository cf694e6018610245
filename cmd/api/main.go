// Command api serves the inbound HTTP surface of the payment
// orchestration engine: merchant-facing payment, refund,
// dispute, payout, customer and account-admin routes, plus inbound
// connector webhook ingestion.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paymentcore/config"
	"paymentcore/internal/accountsvc"
	"paymentcore/internal/adapter/cached"
	httpHandler "paymentcore/internal/adapter/http/handler"
	pgStorage "paymentcore/internal/adapter/storage/postgres"
	redisStorage "paymentcore/internal/adapter/storage/redis"
	"paymentcore/internal/auditsvc"
	"paymentcore/internal/authsvc"
	"paymentcore/internal/bootstrap"
	"paymentcore/internal/connector"
	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/internal/keymanager"
	"paymentcore/internal/paymentsm"
	"paymentcore/internal/routing"
	"paymentcore/internal/tracker"
	"paymentcore/internal/webhook"
	"paymentcore/pkg/cache"
	"paymentcore/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("starting payment orchestration engine")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	localCache, err := cache.New(
		cache.WithLocalTTL(30*time.Second, time.Minute),
		cache.WithRedis(rdb, log),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache")
	}
	go func() {
		if err := localCache.Subscribe(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("cache invalidation subscriber stopped")
		}
	}()

	// Repositories, with merchant/keystore reads cached.
	merchantRepo := cached.NewMerchantRepo(pgStorage.NewMerchantRepo(pool), localCache)
	keyStoreRepo := cached.NewKeyStoreRepo(pgStorage.NewKeyStoreRepo(pool), localCache)
	pgIntentRepo := pgStorage.NewIntentRepo(pool)
	attemptRepo := pgStorage.NewAttemptRepo(pool)
	customerRepo := pgStorage.NewCustomerRepo(pool)
	refundRepo := pgStorage.NewRefundRepo(pool)
	disputeRepo := pgStorage.NewDisputeRepo(pool)
	payoutRepo := pgStorage.NewPayoutRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	routingAlgRepo := pgStorage.NewRoutingAlgorithmRepo(pool)
	trackerRepo := pgStorage.NewTrackerTaskRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	kvStore := redisStorage.NewKVStore(rdb)

	keyMgr, err := keymanager.New(cfg.KeyManager.MasterKey, keyStoreRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize key manager")
	}

	// REDIS_KV merchants read and write intents through the Redis
	// mirror; the worker's drain loop carries them into Postgres.
	intentRepo := redisStorage.NewKVIntentRepo(kvStore, pgIntentRepo, func(ctx context.Context, merchantID string) domain.StorageScheme {
		m, err := merchantRepo.GetMerchantByID(ctx, merchantID)
		if err != nil {
			return domain.StorageSchemePostgresOnly
		}
		return m.StorageScheme
	}, log)

	streamQueue, err := redisStorage.NewStreamQueue(ctx, rdb, cfg.Scheduler.StreamName, cfg.Scheduler.ConsumerGroup)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize process tracker stream")
	}
	trackerProducer := tracker.NewProducer(streamQueue, trackerRepo, log)

	dispatcher, err := bootstrap.BuildDispatcher(cfg, keyMgr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build connector dispatcher")
	}
	routingEvaluator := routing.New()

	paymentSvc := paymentsm.New(
		intentRepo, attemptRepo, merchantRepo, customerRepo,
		refundRepo, disputeRepo, payoutRepo, eventRepo,
		idempotencyRepo, idempotencyCache, routingAlgRepo, routingEvaluator,
		dispatcher, trackerProducer, transactor, log,
	)

	webhookSvc := webhook.New(
		merchantRepo, eventRepo, dispatcher, paymentSvc, paymentSvc,
		keyMgr, nonceStore, trackerProducer, connector.NewHTTPClient(10*time.Second), log,
	)

	accountSvc := accountsvc.New(merchantRepo, customerRepo, keyMgr, log)
	authSvc := authsvc.New(merchantRepo, intentRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiry)
	auditSvc := auditsvc.New(pgStorage.NewAuditRepo(pool), log)

	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		PaymentSvc:     paymentSvc,
		RefundSvc:      paymentSvc,
		DisputeSvc:     paymentSvc,
		PayoutSvc:      paymentSvc,
		CustomerSvc:    accountSvc,
		MerchantSvc:    accountSvc,
		WebhookSvc:     webhookSvc,
		AuditSvc:       auditSvc,
		RateLimiter:    rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
