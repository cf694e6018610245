// Package webhook implements ports.WebhookService: inbound connector
// webhook ingestion (signature verification, dedup, re-sync dispatch)
// and outbound merchant event fanout (HMAC-signed HTTP delivery driven
// by the process tracker's webhook_delivery task).
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// signatureHeader is the header name every outgoing delivery carries.
const signatureHeader = "X-Webhook-Signature-v1"

// nonceTTL bounds how long a (connector, object id, event type) key is
// remembered for inbound dedup.
const nonceTTL = 7 * 24 * time.Hour

// HTTPClient is the surface Service needs from an HTTP client,
// narrowed so tests can substitute a fake.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OutgoingPayload is the envelope delivered to a merchant's webhook URL.
type OutgoingPayload struct {
	EventID           string         `json:"event_id"`
	EventType         string         `json:"event_type"`
	PrimaryObjectID   string         `json:"primary_object_id"`
	PrimaryObjectType string         `json:"primary_object_type"`
	CreatedAt         time.Time      `json:"created_at"`
	Data              map[string]any `json:"data,omitempty"`
}

// Service implements ports.WebhookService.
type Service struct {
	merchants  ports.MerchantRepository
	events     ports.EventRepository
	connectors ports.ConnectorDispatcher
	payments   ports.PaymentService
	refunds    ports.RefundService
	keyMgr     ports.KeyManagerService
	nonces     ports.NonceStore
	tracker    ports.TrackerProducer
	httpClient HTTPClient
	log        zerolog.Logger
}

// New builds a Service.
func New(
	merchants ports.MerchantRepository,
	events ports.EventRepository,
	connectors ports.ConnectorDispatcher,
	payments ports.PaymentService,
	refunds ports.RefundService,
	keyMgr ports.KeyManagerService,
	nonces ports.NonceStore,
	tracker ports.TrackerProducer,
	httpClient HTTPClient,
	log zerolog.Logger,
) *Service {
	return &Service{
		merchants: merchants, events: events, connectors: connectors,
		payments: payments, refunds: refunds, keyMgr: keyMgr, nonces: nonces,
		tracker: tracker, httpClient: httpClient, log: log,
	}
}

var _ ports.WebhookService = (*Service)(nil)

// HandleIncoming verifies an inbound connector webhook against the
// owning merchant connector account, deduplicates it per merchant by
// (connector, object id, event type) — no connector-assigned event id is
// used, so a repeat of the same event type for the same object is
// dropped as a duplicate — then re-drives the normal state
// machine via a forced PSync/RSync rather than trusting the webhook
// body directly — the connector call remains the single source of
// truth for attempt/refund status.
func (s *Service) HandleIncoming(ctx context.Context, req ports.InboundWebhookRequest) error {
	merchant, err := s.merchants.GetMerchantByID(ctx, req.MerchantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("merchant")
		}
		return apperror.InternalError(fmt.Errorf("load merchant for webhook: %w", err))
	}
	if !merchant.IsActive {
		return apperror.PreconditionFailed("WH_000", "merchant is not active")
	}

	mcas, err := s.resolveConnectorAccounts(ctx, req.MerchantID, req.ConnectorName)
	if err != nil {
		return err
	}

	var verified bool
	var lastErr error
	for _, mca := range mcas {
		ok, err := s.connectors.VerifyWebhookSource(ctx, &mca, req.Headers, req.Body)
		if err != nil {
			lastErr = err
			continue
		}
		if ok {
			verified = true
			eventType, objectID, err := s.connectors.ParseWebhookEvent(ctx, &mca, req.Headers, req.Body)
			if err != nil {
				return apperror.InternalError(fmt.Errorf("parse webhook event: %w", err))
			}

			dedupKey := fmt.Sprintf("%s:%s:%s", req.ConnectorName, objectID, eventType)
			fresh, err := s.nonces.CheckAndSet(ctx, req.MerchantID, dedupKey, nonceTTL)
			if err != nil {
				return apperror.InternalError(fmt.Errorf("webhook dedup check: %w", err))
			}
			if !fresh {
				s.log.Debug().Str("dedup_key", dedupKey).Msg("webhook: duplicate delivery ignored")
				return nil
			}

			return s.applyIncomingEvent(ctx, req.MerchantID, objectID, eventType)
		}
	}
	if !verified {
		if lastErr != nil {
			return apperror.InternalError(fmt.Errorf("verify webhook source: %w", lastErr))
		}
		return apperror.Validation("webhook signature verification failed")
	}
	return nil
}

// resolveConnectorAccounts scans every profile a merchant owns for a
// connector account matching connectorName: inbound webhooks carry the
// connector name but not the profile.
func (s *Service) resolveConnectorAccounts(ctx context.Context, merchantID, connectorName string) ([]domain.MerchantConnectorAccount, error) {
	profiles, err := s.merchants.ListProfilesByMerchant(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list profiles: %w", err))
	}
	var out []domain.MerchantConnectorAccount
	for _, profile := range profiles {
		accounts, err := s.merchants.GetConnectorAccountsByProfile(ctx, profile.ID)
		if err != nil {
			continue
		}
		for _, a := range accounts {
			if a.ConnectorName == connectorName {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (s *Service) applyIncomingEvent(ctx context.Context, merchantID, objectID string, eventType domain.IncomingWebhookEvent) error {
	switch eventType {
	case domain.IncomingPaymentIntentSuccess, domain.IncomingPaymentIntentFailure, domain.IncomingPaymentActionRequired:
		_, err := s.payments.Sync(ctx, merchantID, objectID, true)
		return err
	case domain.IncomingRefundSuccess, domain.IncomingRefundFailure:
		_, err := s.refunds.SyncRefund(ctx, merchantID, objectID)
		return err
	case domain.IncomingDisputeOpened, domain.IncomingDisputeWon, domain.IncomingDisputeLost:
		s.log.Info().Str("merchant_id", merchantID).Str("object_id", objectID).
			Str("event", string(eventType)).Msg("dispute webhook received, awaiting dashboard reconciliation")
		return nil
	case domain.IncomingMandateActive:
		return nil
	default:
		s.log.Debug().Str("event", string(eventType)).Msg("webhook: unsupported incoming event, ignoring")
		return nil
	}
}

// EnqueueOutgoing persists an already-materialized Event and schedules
// its delivery as a process tracker task.
func (s *Service) EnqueueOutgoing(ctx context.Context, event *domain.Event) error {
	if err := s.events.Create(ctx, event); err != nil {
		return apperror.InternalError(fmt.Errorf("persist outgoing event: %w", err))
	}
	if s.tracker == nil {
		return nil
	}
	task := ports.TrackerTask{
		ID:          "pt_" + event.ID,
		TaskType:    "webhook_delivery",
		ReferenceID: event.ID,
	}
	if err := s.tracker.Enqueue(ctx, task); err != nil {
		return apperror.InternalError(fmt.Errorf("enqueue webhook delivery: %w", err))
	}
	return nil
}

// DeliverOutgoing performs one delivery attempt for eventID: builds the
// signed payload, POSTs it to the merchant's configured webhook URL,
// and marks the event delivered on a 2xx response. A non-2xx or
// transport error is returned so the process tracker's retry curve
// (1m/5m/15m/1h/6h/24h) takes over.
func (s *Service) DeliverOutgoing(ctx context.Context, eventID string) error {
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("event")
		}
		return apperror.InternalError(fmt.Errorf("load event: %w", err))
	}
	if event.DeliveryStatus == domain.EventDeliveryDelivered {
		return nil
	}

	merchant, err := s.merchants.GetMerchantByID(ctx, event.MerchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load merchant: %w", err))
	}
	if merchant.WebhookURL == nil || *merchant.WebhookURL == "" {
		s.log.Debug().Str("event_id", eventID).Msg("webhook: no URL configured, marking delivered")
		return s.events.MarkDelivered(ctx, eventID)
	}

	payload := OutgoingPayload{
		EventID:           event.ID,
		EventType:         string(event.EventType),
		PrimaryObjectID:   event.PrimaryObjectID,
		PrimaryObjectType: event.PrimaryObjectType,
		CreatedAt:         event.CreatedAt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal webhook payload: %w", err))
	}

	secret, err := s.keyMgr.Decrypt(ctx, merchant.ID, merchant.WebhookSecretEnc)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("decrypt webhook secret: %w", err))
	}
	signature := sign(merchant.WebhookSigAlgo, secret, body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, *merchant.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build webhook request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(signatureHeader, signature)

	if err := s.events.IncrementAttempt(ctx, eventID); err != nil {
		s.log.Warn().Err(err).Str("event_id", eventID).Msg("webhook: failed to record delivery attempt")
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return apperror.ConnectorTransient("webhook", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.ConnectorTransient("webhook", fmt.Errorf("merchant endpoint returned HTTP %d", resp.StatusCode))
	}

	if err := s.events.MarkDelivered(ctx, eventID); err != nil {
		return apperror.InternalError(fmt.Errorf("mark event delivered: %w", err))
	}
	s.log.Info().Str("event_id", eventID).Msg("webhook delivered")
	return nil
}

func sign(algo string, secret, body []byte) string {
	if algo == "HMAC-SHA512" {
		m := hmac.New(sha512.New, secret)
		m.Write(body)
		return hex.EncodeToString(m.Sum(nil))
	}
	m := hmac.New(sha256.New, secret)
	m.Write(body)
	return hex.EncodeToString(m.Sum(nil))
}
