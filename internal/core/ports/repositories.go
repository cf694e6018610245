package ports

import (
	"context"
	"time"

	"paymentcore/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// MerchantRepository persists MerchantAccount + Profile + MerchantConnectorAccount.
type MerchantRepository interface {
	CreateMerchant(ctx context.Context, m *domain.MerchantAccount) error
	GetMerchantByID(ctx context.Context, id string) (*domain.MerchantAccount, error)
	GetMerchantByPublishableKey(ctx context.Context, key string) (*domain.MerchantAccount, error)
	GetMerchantByAPIKeyHash(ctx context.Context, hash string) (*domain.MerchantAccount, error)
	GetMerchantByAdminKeyHash(ctx context.Context, hash string) (*domain.MerchantAccount, error)
	UpdateMerchant(ctx context.Context, id string, update MerchantUpdate) error

	CreateProfile(ctx context.Context, p *domain.Profile) error
	GetProfileByID(ctx context.Context, id string) (*domain.Profile, error)
	ListProfilesByMerchant(ctx context.Context, merchantID string) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, p *domain.Profile) error

	CreateConnectorAccount(ctx context.Context, mca *domain.MerchantConnectorAccount) error
	GetConnectorAccountsByProfile(ctx context.Context, profileID string) ([]domain.MerchantConnectorAccount, error)
	GetConnectorAccountByID(ctx context.Context, id string) (*domain.MerchantConnectorAccount, error)
}

// MerchantUpdate names exactly the fields a merchant account mutation changes.
type MerchantUpdate struct {
	UpdatedBy     string
	WebhookURL    *string
	IsActive      *bool
	StorageScheme *domain.StorageScheme
}

// KeyStoreRepository persists per-merchant wrapped data-encryption keys.
type KeyStoreRepository interface {
	Create(ctx context.Context, ks *domain.MerchantKeyStore) error
	Get(ctx context.Context, merchantID string) (*domain.MerchantKeyStore, error)
}

// PaymentIntentRepository persists PaymentIntent rows. Methods accepting
// pgx.Tx participate in the caller's transaction for atomic
// intent+attempt updates.
type PaymentIntentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, intent *domain.PaymentIntent) error
	Get(ctx context.Context, merchantID, paymentID string) (*domain.PaymentIntent, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, merchantID, paymentID string) (*domain.PaymentIntent, error)
	Update(ctx context.Context, tx pgx.Tx, merchantID, paymentID string, update domain.IntentUpdate) error
}

// PaymentAttemptRepository persists PaymentAttempt rows.
type PaymentAttemptRepository interface {
	Create(ctx context.Context, tx pgx.Tx, attempt *domain.PaymentAttempt) error
	Get(ctx context.Context, paymentID, attemptID string) (*domain.PaymentAttempt, error)
	GetActive(ctx context.Context, paymentID string) (*domain.PaymentAttempt, error)
	ListByPayment(ctx context.Context, paymentID string) ([]domain.PaymentAttempt, error)
	Update(ctx context.Context, tx pgx.Tx, attemptID string, update domain.AttemptUpdate) error
}

// CustomerRepository persists Customer, PaymentMethod and Mandate rows.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, merchantID, customerID string) (*domain.Customer, error)

	CreatePaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error
	GetPaymentMethod(ctx context.Context, id string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]domain.PaymentMethod, error)
	DisablePaymentMethod(ctx context.Context, id string) error

	CreateMandate(ctx context.Context, m *domain.Mandate) error
	GetMandate(ctx context.Context, id string) (*domain.Mandate, error)
	GetMandateByConnectorID(ctx context.Context, connectorMandateID string) (*domain.Mandate, error)
	UpdateMandateStatus(ctx context.Context, id string, status domain.MandateStatus) error
}

// RefundRepository persists Refund rows.
type RefundRepository interface {
	Create(ctx context.Context, tx pgx.Tx, r *domain.Refund) error
	Get(ctx context.Context, id string) (*domain.Refund, error)
	ListByAttempt(ctx context.Context, attemptID string) ([]domain.Refund, error)
	SumActiveByAttempt(ctx context.Context, attemptID string) (int64, error)
	Update(ctx context.Context, tx pgx.Tx, id string, update domain.RefundUpdate) error
}

// DisputeRepository persists Dispute rows.
type DisputeRepository interface {
	Create(ctx context.Context, d *domain.Dispute) error
	Get(ctx context.Context, id string) (*domain.Dispute, error)
	GetByConnectorDisputeID(ctx context.Context, connectorDisputeID string) (*domain.Dispute, error)
	ListByMerchant(ctx context.Context, merchantID string) ([]domain.Dispute, error)
	UpdateStatus(ctx context.Context, id string, status domain.DisputeStatus) error
}

// PayoutRepository persists Payout rows.
type PayoutRepository interface {
	Create(ctx context.Context, p *domain.Payout) error
	Get(ctx context.Context, id string) (*domain.Payout, error)
	UpdateStatus(ctx context.Context, id string, status domain.PayoutStatus, connectorPayoutID *string) error
}

// EventRepository persists outgoing Event rows.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	Get(ctx context.Context, id string) (*domain.Event, error)
	MarkDelivered(ctx context.Context, id string) error
	IncrementAttempt(ctx context.Context, id string) error
	ListInitialEventsByObject(ctx context.Context, primaryObjectID string) ([]domain.Event, error)
}

// IdempotencyRepository persists idempotency logs (DB backup tier).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// AuditRepository persists append-only audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

// RoutingAlgorithmRepository persists a Profile's configured connector
// selection strategy.
type RoutingAlgorithmRepository interface {
	Create(ctx context.Context, algorithm *domain.RoutingAlgorithm) error
	Get(ctx context.Context, id string) (*domain.RoutingAlgorithm, error)
	GetActiveForProfile(ctx context.Context, profileID string) (*domain.RoutingAlgorithm, error)
}

// TrackerTaskRepository persists the durable record of every process
// tracker task alongside its Redis Stream entry, so a task's retry
// history and outcome survive a stream/consumer-group rebuild.
type TrackerTaskRepository interface {
	Create(ctx context.Context, task TrackerTask) error
	Get(ctx context.Context, id string) (*TrackerTask, error)
	UpdateStatus(ctx context.Context, id, status string, retryCount int, schedule time.Time) error
}
