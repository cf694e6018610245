package ports

import (
	"context"

	"paymentcore/internal/core/domain"
)

// CreateIntentRequest carries the fields a merchant supplies to open a
// new PaymentIntent (operation family: CreateIntent).
type CreateIntentRequest struct {
	MerchantID       string
	ProfileID        string
	Amount           int64
	Currency         string
	CustomerID       *string
	CaptureMethod    domain.CaptureMethod
	SetupFutureUsage domain.SetupFutureUsage
	Description      *string
	ReturnURL        *string
	Metadata         map[string]any
	BillingAddress   *domain.Address
	ShippingAddress  *domain.Address
	IdempotencyKey   string
}

// ConfirmRequest carries the fields needed to attach a payment method and
// dispatch the first attempt against a connector (operation: Confirm).
type ConfirmRequest struct {
	MerchantID      string
	PaymentID       string
	ClientSecret    string
	PaymentMethodID *string
	PaymentMethod   *domain.PaymentMethodSnapshot
	VaultToken      *string
	OffSession      bool
	MandateID       *string
}

// CaptureRequest carries the amount to capture (full or partial) against
// an authorized attempt (operation: Capture).
type CaptureRequest struct {
	MerchantID string
	PaymentID  string
	Amount     *int64 // nil means capture amount_capturable in full
}

// CancelRequest carries the reason for voiding a not-yet-captured attempt
// (operation: Cancel).
type CancelRequest struct {
	MerchantID string
	PaymentID  string
	Reason     *string
}

// CancelPostCaptureRequest requests a full refund of an already-captured
// attempt through the Cancel surface (operation: CancelPostCapture).
type CancelPostCaptureRequest struct {
	MerchantID string
	PaymentID  string
	Reason     *string
}

// RejectRequest carries the reason for merchant-side rejection of a
// payment awaiting merchant action (operation: Reject).
type RejectRequest struct {
	MerchantID string
	PaymentID  string
	Reason     *string
}

// UpdateIntentRequest carries the mutable pre-confirm intent fields
// (operation: Update).
type UpdateIntentRequest struct {
	MerchantID      string
	PaymentID       string
	Amount          *int64
	Currency        *string
	Description     *string
	Metadata        map[string]any
	BillingAddress  *domain.Address
	ShippingAddress *domain.Address
}

// SessionTokensResult carries per-connector client-side session tokens
// used to initialize wallet SDKs before Confirm (operation:
// SessionTokens / PostSessionTokens).
type SessionTokensResult struct {
	SessionTokens []ConnectorSessionToken
}

// ConnectorSessionToken is one connector's session token payload.
type ConnectorSessionToken struct {
	ConnectorName string
	Token         string
	Extra         map[string]any
}

// VerifyRequest validates a payment method (zero-amount or network-token
// verification) without creating a chargeable intent (operation: Verify).
type VerifyRequest struct {
	MerchantID      string
	CustomerID      string
	PaymentMethodID string
}

// PaymentService implements the payment operation family: each
// method is one operation, internally sequencing Validate -> GetTracker
// -> Domain -> UpdateTracker -> PostUpdateTracker against the connector
// dispatch layer.
type PaymentService interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*domain.PaymentIntent, error)
	UpdateIntent(ctx context.Context, req UpdateIntentRequest) (*domain.PaymentIntent, error)
	Confirm(ctx context.Context, req ConfirmRequest) (*domain.PaymentIntent, error)
	Capture(ctx context.Context, req CaptureRequest) (*domain.PaymentIntent, error)
	Cancel(ctx context.Context, req CancelRequest) (*domain.PaymentIntent, error)
	CancelPostCapture(ctx context.Context, req CancelPostCaptureRequest) (*domain.PaymentIntent, error)
	Reject(ctx context.Context, req RejectRequest) (*domain.PaymentIntent, error)
	Sync(ctx context.Context, merchantID, paymentID string, forceSync bool) (*domain.PaymentIntent, error)
	Status(ctx context.Context, merchantID, paymentID string) (*domain.PaymentIntent, error)
	SessionTokens(ctx context.Context, merchantID, paymentID string) (*SessionTokensResult, error)
	PostSessionTokens(ctx context.Context, merchantID, paymentID string, connectorName string, payload map[string]any) (*domain.PaymentIntent, error)
	Verify(ctx context.Context, req VerifyRequest) error
}

// CreateRefundRequest carries the fields needed to open a Refund against
// a charged attempt.
type CreateRefundRequest struct {
	MerchantID     string
	PaymentID      string
	Amount         *int64 // nil means refund what remains of amount_captured after active refunds
	Reason         *string
	IdempotencyKey string
}

// RefundService implements the refund subflow state machine.
type RefundService interface {
	CreateRefund(ctx context.Context, req CreateRefundRequest) (*domain.Refund, error)
	GetRefund(ctx context.Context, merchantID, refundID string) (*domain.Refund, error)
	SyncRefund(ctx context.Context, merchantID, refundID string) (*domain.Refund, error)
}

// DisputeService implements dispute acceptance and evidence submission.
type DisputeService interface {
	GetDispute(ctx context.Context, merchantID, disputeID string) (*domain.Dispute, error)
	ListDisputes(ctx context.Context, merchantID string) ([]domain.Dispute, error)
	Accept(ctx context.Context, merchantID, disputeID string) (*domain.Dispute, error)
	SubmitEvidence(ctx context.Context, merchantID, disputeID string, evidence map[string]any) (*domain.Dispute, error)
}

// CreatePayoutRequest carries the fields needed to initiate an outbound
// disbursement.
type CreatePayoutRequest struct {
	MerchantID          string
	CustomerID          string
	MerchantConnectorID string
	Amount              int64
	Currency            string
	IdempotencyKey      string
}

// PayoutService implements the payout subflow, sharing the connector
// dispatch layer and process tracker with payments.
type PayoutService interface {
	CreatePayout(ctx context.Context, req CreatePayoutRequest) (*domain.Payout, error)
	GetPayout(ctx context.Context, merchantID, payoutID string) (*domain.Payout, error)
}

// CustomerService manages Customer, PaymentMethod and Mandate resources.
type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, merchantID, customerID string) (*domain.Customer, error)
	ListPaymentMethods(ctx context.Context, merchantID, customerID string) ([]domain.PaymentMethod, error)
	SavePaymentMethod(ctx context.Context, pm *domain.PaymentMethod) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, merchantID, paymentMethodID string) error
	RevokeMandate(ctx context.Context, merchantID, mandateID string) error
}

// AuditService records audit entries for successful API mutations.
// Implementations must never block the request path: recording is
// fire-and-forget, with persistence failures logged rather than
// surfaced.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditEntry)
}

// MerchantService manages MerchantAccount, Profile and
// MerchantConnectorAccount resources (the "account" API surface).
type MerchantService interface {
	GetMerchant(ctx context.Context, merchantID string) (*domain.MerchantAccount, error)
	CreateConnectorAccount(ctx context.Context, mca *domain.MerchantConnectorAccount, rawCredentials map[string]any) (*domain.MerchantConnectorAccount, error)
	UpdateBusinessProfile(ctx context.Context, profileID string, routingAlgorithmID, defaultConnectorID *string) (*domain.Profile, error)
}
