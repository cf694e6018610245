// Package paymentsm implements the payment intent/attempt state machine:
// the operation family (Create, Update, Confirm, Capture,
// Cancel, CancelPostCapture, Reject, Sync, Status, SessionTokens,
// PostSessionTokens, Verify), plus the refund/dispute/payout subflows
// that share its connector dispatch and process tracker infrastructure.
package paymentsm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const idempotencyCacheTTL = 24 * time.Hour

// Service implements ports.PaymentService, ports.RefundService,
// ports.DisputeService and ports.PayoutService over one shared set of
// dependencies.
type Service struct {
	intents    ports.PaymentIntentRepository
	attempts   ports.PaymentAttemptRepository
	merchants  ports.MerchantRepository
	customers  ports.CustomerRepository
	refunds    ports.RefundRepository
	disputes   ports.DisputeRepository
	payouts    ports.PayoutRepository
	events     ports.EventRepository
	idempRepo  ports.IdempotencyRepository
	idempCache ports.IdempotencyCache
	routingAlg ports.RoutingAlgorithmRepository
	routingSvc ports.RoutingService
	connectors ports.ConnectorDispatcher
	tracker    ports.TrackerProducer
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// New builds a Service wiring every dependency of the payment, refund,
// dispute and payout state machines.
func New(
	intents ports.PaymentIntentRepository,
	attempts ports.PaymentAttemptRepository,
	merchants ports.MerchantRepository,
	customers ports.CustomerRepository,
	refunds ports.RefundRepository,
	disputes ports.DisputeRepository,
	payouts ports.PayoutRepository,
	events ports.EventRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	routingAlg ports.RoutingAlgorithmRepository,
	routingSvc ports.RoutingService,
	connectors ports.ConnectorDispatcher,
	tracker ports.TrackerProducer,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *Service {
	return &Service{
		intents:    intents,
		attempts:   attempts,
		merchants:  merchants,
		customers:  customers,
		refunds:    refunds,
		disputes:   disputes,
		payouts:    payouts,
		events:     events,
		idempRepo:  idempRepo,
		idempCache: idempCache,
		routingAlg: routingAlg,
		routingSvc: routingSvc,
		connectors: connectors,
		tracker:    tracker,
		transactor: transactor,
		log:        log,
	}
}

var _ ports.PaymentService = (*Service)(nil)
var _ ports.RefundService = (*Service)(nil)
var _ ports.DisputeService = (*Service)(nil)
var _ ports.PayoutService = (*Service)(nil)

func newPaymentID() string { return "pay_" + uuid.NewString() }
func newAttemptID() string { return "att_" + uuid.NewString() }
func newRefundID() string  { return "ref_" + uuid.NewString() }
func newDisputeID() string { return "dis_" + uuid.NewString() }
func newPayoutID() string  { return "pout_" + uuid.NewString() }
func newEventID() string   { return "evt_" + uuid.NewString() }

func newClientSecret(paymentID string) string {
	return paymentID + "_secret_" + uuid.NewString()
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// lookupIdempotentIntent checks the two-tier idempotency substrate
// (Redis-first, Postgres backstop) for a previously computed response.
// A nil, false return with a nil error means this is a genuinely new
// request.
func (s *Service) lookupIdempotentIntent(ctx context.Context, key string) (*domain.PaymentIntent, bool, error) {
	if raw, hit, err := s.idempCache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("idempotency cache lookup failed, falling through to db")
	} else if hit {
		intent, err := unmarshalIntent(raw)
		return intent, true, err
	}

	logEntry, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, apperror.InternalError(fmt.Errorf("idempotency db lookup: %w", err))
	}
	intent, err := unmarshalIntent(logEntry.ResponseJSON)
	return intent, true, err
}

// commitIdempotentIntent writes the idempotency log inside tx and
// returns the marshaled response so the caller can best-effort refresh
// the Redis mirror after commit.
func (s *Service) commitIdempotentIntent(ctx context.Context, tx pgx.Tx, key, paymentID string, intent *domain.PaymentIntent) ([]byte, error) {
	respJSON, err := json.Marshal(intent)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal idempotency response: %w", err))
	}
	if err := s.idempRepo.Create(ctx, tx, &domain.IdempotencyLog{
		Key:          key,
		PaymentID:    paymentID,
		ResponseJSON: respJSON,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}
	return respJSON, nil
}

func (s *Service) cacheIdempotentResponse(ctx context.Context, key string, respJSON []byte) {
	if err := s.idempCache.Set(ctx, key, respJSON, idempotencyCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotent response in redis")
	}
}

func unmarshalIntent(raw []byte) (*domain.PaymentIntent, error) {
	intent := &domain.PaymentIntent{}
	if err := json.Unmarshal(raw, intent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached intent: %w", err))
	}
	return intent, nil
}
