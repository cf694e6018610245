// Command worker runs the process tracker's consumer side: it drains
// the Redis stream consumer group and executes the
// PSync/RSync/webhook-delivery/payout workflows against the same
// service stack cmd/api dispatches from, plus the drain worker that
// lands REDIS_KV-mirrored entities in Postgres.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paymentcore/config"
	"paymentcore/internal/adapter/cached"
	pgStorage "paymentcore/internal/adapter/storage/postgres"
	redisStorage "paymentcore/internal/adapter/storage/redis"
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

	"github.com/rs/zerolog"
)

// errStillPending drives the consumer's retry policy: the workflow ran
// cleanly but the connector still reports a non-terminal status, so the
// task must redrive after the policy interval.
var errStillPending = errors.New("status still pending at connector")

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Str("consumer", cfg.Scheduler.ConsumerName).Msg("starting process tracker worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()

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
	kvStore := redisStorage.NewKVStore(rdb)

	keyMgr, err := keymanager.New(cfg.KeyManager.MasterKey, keyStoreRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize key manager")
	}

	intentRepo := redisStorage.NewKVIntentRepo(kvStore, pgIntentRepo, storageScheme(merchantRepo, log), log)

	streamQueue, err := redisStorage.NewStreamQueue(ctx, rdb, cfg.Scheduler.StreamName, cfg.Scheduler.ConsumerGroup)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize process tracker stream")
	}
	trackerProducer := tracker.NewProducer(streamQueue, trackerRepo, log)

	dispatcher, err := bootstrap.BuildDispatcher(cfg, keyMgr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build connector dispatcher")
	}

	paymentSvc := paymentsm.New(
		intentRepo, attemptRepo, merchantRepo, customerRepo,
		refundRepo, disputeRepo, payoutRepo, eventRepo,
		idempotencyRepo, idempotencyCache, routingAlgRepo, routing.New(),
		dispatcher, trackerProducer, transactor, log,
	)

	webhookSvc := webhook.New(
		merchantRepo, eventRepo, dispatcher, paymentSvc, paymentSvc,
		keyMgr, nonceStore, trackerProducer, connector.NewHTTPClient(10*time.Second), log,
	)

	drain := tracker.NewDrainWorker(kvStore, cfg.Scheduler.PollInterval, log)
	drain.Register("payment_intent", func(ctx context.Context, id string, payload []byte) error {
		intent := &domain.PaymentIntent{}
		if err := json.Unmarshal(payload, intent); err != nil {
			return fmt.Errorf("unmarshal drained intent %s: %w", id, err)
		}
		return pgIntentRepo.Upsert(ctx, intent)
	})
	go func() {
		if err := drain.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("drain worker stopped")
		}
	}()

	// pt_mapping_<connector> overrides register here before the consumer
	// starts; an empty registry leaves every task type on its default
	// curve.
	policies := tracker.NewPolicyRegistry()

	consumer := tracker.NewConsumer(streamQueue, trackerRepo, policies, cfg.Scheduler.ConsumerName, log)
	defer consumer.Close()

	handler := func(ctx context.Context, task ports.TrackerTask) error {
		merchantID, _ := task.Payload["merchant_id"].(string)
		switch task.TaskType {
		case "payment_sync":
			intent, err := paymentSvc.Sync(ctx, merchantID, task.ReferenceID, false)
			if err != nil {
				return err
			}
			if intent.Status != domain.IntentStatusProcessing {
				return nil
			}
			policy := policies.PolicyFor(task.ConnectorName, task.TaskType)
			if policy.Exhausted(task.RetryCount + 1) {
				return paymentSvc.ForceFailPending(ctx, merchantID, task.ReferenceID,
					"payment status did not resolve within the sync retry budget")
			}
			return errStillPending
		case "refund_sync":
			refund, err := paymentSvc.SyncRefund(ctx, merchantID, task.ReferenceID)
			if err != nil {
				return err
			}
			if refund.Status != domain.RefundStatusPending {
				return nil
			}
			policy := policies.PolicyFor(task.ConnectorName, task.TaskType)
			if policy.Exhausted(task.RetryCount + 1) {
				log.Warn().Str("refund_id", task.ReferenceID).
					Msg("refund sync retries exhausted, leaving refund pending for manual review")
				return nil
			}
			return errStillPending
		case "webhook_delivery":
			return webhookSvc.DeliverOutgoing(ctx, task.ReferenceID)
		case "payout_sync":
			p, err := payoutRepo.Get(ctx, task.ReferenceID)
			if err != nil {
				return err
			}
			if p.Status == domain.PayoutStatusInitiated {
				// dispatch acknowledged; settlement arrives out of band
				// via the connector's payout report
				return payoutRepo.UpdateStatus(ctx, p.ID, domain.PayoutStatusProcessing, nil)
			}
			return nil
		default:
			log.Warn().Str("task_type", task.TaskType).Str("task_id", task.ID).
				Msg("unknown task type, finishing without action")
			return nil
		}
	}

	log.Info().Str("stream", cfg.Scheduler.StreamName).Str("group", cfg.Scheduler.ConsumerGroup).
		Msg("consuming process tracker stream")
	if err := consumer.Consume(ctx, handler); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("consumer stopped unexpectedly")
	}
	log.Info().Msg("worker exited")
}

// storageScheme resolves a merchant's configured scheme through the
// cached merchant repository, defaulting to PostgresOnly when the
// merchant cannot be loaded so a lookup failure never silently diverts
// writes away from the system of record.
func storageScheme(merchants ports.MerchantRepository, log zerolog.Logger) redisStorage.SchemeResolver {
	return func(ctx context.Context, merchantID string) domain.StorageScheme {
		m, err := merchants.GetMerchantByID(ctx, merchantID)
		if err != nil {
			log.Warn().Err(err).Str("merchant_id", merchantID).Msg("storage scheme lookup failed, defaulting to postgres")
			return domain.StorageSchemePostgresOnly
		}
		return m.StorageScheme
	}
}
