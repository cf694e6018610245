package ports

import (
	"context"
	"time"

	"paymentcore/internal/core/domain"
)

// ConnectorAuthorizeRequest is the normalized request handed to the
// connector dispatch layer for an authorize call. Amount is the
// canonical minor-unit integer; Dispatcher applies the connector's
// AmountConvertor before building the wire request.
type ConnectorAuthorizeRequest struct {
	Amount             int64
	Currency           string
	PaymentMethod      *domain.PaymentMethodSnapshot
	VaultToken         *string
	MandateConnectorID *string
	CaptureMethod      domain.CaptureMethod
	ReturnURL          *string
	Metadata           map[string]any
}

// ConnectorResult is the normalized outcome of any connector call,
// common to every flow.
type ConnectorResult struct {
	Status                 domain.AttemptStatus
	ConnectorTransactionID *string
	RedirectionData        map[string]any
	AmountCaptured          *int64
	ErrorCode               *string
	ErrorMessage            *string
	ErrorReason             *string
	UnifiedCode             *string
	UnifiedMessage          *string
	IntegrityCheck          domain.IntegrityCheckResult
	Raw                     map[string]any
}

// ConnectorDispatcher is the polymorphic boundary between the payment
// state machine and external processors. Every method
// resolves credentials, applies AmountConvertor, manages the
// access-token cache and normalizes errors to the 4-field shape;
// Authorize also runs the integrity check before returning.
type ConnectorDispatcher interface {
	Authorize(ctx context.Context, mca *domain.MerchantConnectorAccount, req ConnectorAuthorizeRequest) (*ConnectorResult, error)
	// Capture carries both the amount to capture and the attempt's
	// authorized total, so connectors can report PartialCharged vs
	// Charged without a second lookup.
	Capture(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorTransactionID string, amount, authorizedAmount int64, currency string) (*ConnectorResult, error)
	Void(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorTransactionID string, reason *string) (*ConnectorResult, error)
	Refund(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorTransactionID string, amount int64, currency string, reason *string) (*ConnectorResult, error)
	PSync(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorTransactionID string) (*ConnectorResult, error)
	RSync(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorRefundID string) (*ConnectorResult, error)
	SessionToken(ctx context.Context, mca *domain.MerchantConnectorAccount, amount int64, currency string) (*ConnectorSessionToken, error)
	VerifyWebhookSource(ctx context.Context, mca *domain.MerchantConnectorAccount, headers map[string]string, body []byte) (bool, error)
	ParseWebhookEvent(ctx context.Context, mca *domain.MerchantConnectorAccount, headers map[string]string, body []byte) (domain.IncomingWebhookEvent, string, error)
}

// RoutingDecision names the connector chosen for a dispatch attempt and
// records the algorithm that produced it, for audit purposes.
type RoutingDecision struct {
	MerchantConnectorID string
	ConnectorName       string
	Algorithm           string // single, priority, volume_split, advanced, fallback_default
}

// RoutingService evaluates a profile's configured algorithm against a
// candidate connector list.
type RoutingService interface {
	Evaluate(ctx context.Context, algorithm *domain.RoutingAlgorithm, candidates []domain.MerchantConnectorAccount, routingCtx domain.RoutingContext) (*RoutingDecision, error)
}

// TrackerTask is one durable unit of deferred work (PSync poll, RSync
// poll, webhook delivery) persisted by the process tracker.
type TrackerTask struct {
	ID           string
	TaskType     string // payment_sync, refund_sync, webhook_delivery
	ReferenceID  string // payment_id / refund_id / event_id
	ConnectorName string
	RetryCount   int
	Schedule     time.Time
	Status       string // new, processing, finish, failed
	Payload      map[string]any
}

// TrackerProducer enqueues deferred work, SETNX-locking against
// duplicate scheduling of the same reference.
type TrackerProducer interface {
	Enqueue(ctx context.Context, task TrackerTask) error
}

// TrackerConsumer drains the durable queue and executes the workflow
// bound to each task's TaskType.
type TrackerConsumer interface {
	Consume(ctx context.Context, handler func(context.Context, TrackerTask) error) error
}

// KeyManagerService performs envelope encryption of merchant-owned PII
// and credential blobs.
type KeyManagerService interface {
	Encrypt(ctx context.Context, merchantID string, plaintext []byte) (string, error)
	Decrypt(ctx context.Context, merchantID string, ciphertext string) ([]byte, error)
	CreateDataKey(ctx context.Context, merchantID string) error
}

// CacheService is the process-local cache fronting lookups of
// merchant/profile/connector-account configuration; Redis carries only
// the pub/sub invalidation on write, not the cached values.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
	Subscribe(ctx context.Context) error
}

// IdempotencyCache is the Redis-first tier fronting IdempotencyRepository:
// a hit here never touches Postgres. A miss falls through to the
// repository, which also backstops cache eviction/restart.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore rejects replayed inbound webhook deliveries by recording
// the (merchant, nonce) pair the first time it is seen.
type NonceStore interface {
	CheckAndSet(ctx context.Context, merchantID, nonce string, ttl time.Duration) (bool, error)
}

// RateLimitResult holds the outcome of a rate-limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimiter enforces a fixed-window request budget per key (merchant
// ID, API key, or IP depending on the route).
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// InboundWebhookRequest carries the raw bytes and headers of a connector
// webhook delivery before signature verification.
type InboundWebhookRequest struct {
	MerchantID    string
	ConnectorName string
	Headers       map[string]string
	Body          []byte
}

// WebhookService handles both inbound connector webhook ingestion and
// outbound merchant event fanout.
type WebhookService interface {
	HandleIncoming(ctx context.Context, req InboundWebhookRequest) error
	EnqueueOutgoing(ctx context.Context, event *domain.Event) error
	DeliverOutgoing(ctx context.Context, eventID string) error
}

// AuthContext is the resolved principal for one of the four auth
// variants: API key, publishable-key+client-secret, JWT
// dashboard session, or admin key.
type AuthContext struct {
	MerchantID string
	ProfileID  string
	IsAdmin    bool
	Variant    string
}

// AuthService resolves inbound credentials to an AuthContext.
type AuthService interface {
	AuthenticateAPIKey(ctx context.Context, apiKey string) (*AuthContext, error)
	AuthenticatePublishable(ctx context.Context, publishableKey, clientSecret, paymentID string) (*AuthContext, error)
	AuthenticateJWT(ctx context.Context, token string) (*AuthContext, error)
	AuthenticateAdmin(ctx context.Context, adminKey string) (*AuthContext, error)
}
