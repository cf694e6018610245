// Package dto holds the wire-level request bodies the HTTP handlers
// bind into ports.*Request values. Keeping these separate from the
// core's request structs lets the wire shape evolve (e.g. adding
// validation tags) independently of the service boundary.
package dto

import "paymentcore/internal/core/domain"

// CreateIntentRequest is the body of POST /payments.
type CreateIntentRequest struct {
	ProfileID        string               `json:"profile_id" binding:"required"`
	Amount           int64                `json:"amount" binding:"required,gt=0"`
	Currency         string               `json:"currency" binding:"required,len=3"`
	CustomerID       *string              `json:"customer_id,omitempty"`
	CaptureMethod    domain.CaptureMethod `json:"capture_method,omitempty"`
	SetupFutureUsage domain.SetupFutureUsage `json:"setup_future_usage,omitempty"`
	Description      *string              `json:"description,omitempty"`
	ReturnURL        *string              `json:"return_url,omitempty"`
	Metadata         map[string]any       `json:"metadata,omitempty"`
	BillingAddress   *domain.Address      `json:"billing,omitempty"`
	ShippingAddress  *domain.Address      `json:"shipping,omitempty"`
}

// UpdateIntentRequest is the body of POST /payments/:id/update.
type UpdateIntentRequest struct {
	Amount          *int64          `json:"amount,omitempty"`
	Currency        *string         `json:"currency,omitempty"`
	Description     *string         `json:"description,omitempty"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
	BillingAddress  *domain.Address `json:"billing,omitempty"`
	ShippingAddress *domain.Address `json:"shipping,omitempty"`
}

// ConfirmRequest is the body of POST /payments/:id/confirm.
type ConfirmRequest struct {
	ClientSecret    string                        `json:"client_secret" binding:"required"`
	PaymentMethodID *string                       `json:"payment_method_id,omitempty"`
	PaymentMethod   *domain.PaymentMethodSnapshot `json:"payment_method,omitempty"`
	VaultToken      *string                       `json:"vault_token,omitempty"`
	OffSession      bool                          `json:"off_session,omitempty"`
	MandateID       *string                       `json:"mandate_id,omitempty"`
}

// CaptureRequest is the body of POST /payments/:id/capture.
type CaptureRequest struct {
	Amount *int64 `json:"amount,omitempty"`
}

// CancelRequest is the body of POST /payments/:id/cancel.
type CancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// RejectRequest is the body of POST /payments/:id/reject.
type RejectRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// PostSessionTokensRequest is the body of POST /payments/:id/session_tokens/:connector.
type PostSessionTokensRequest struct {
	Payload map[string]any `json:"payload,omitempty"`
}

// VerifyRequest is the body of POST /payment_methods/:id/verify.
type VerifyRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

// CreateRefundRequest is the body of POST /refunds.
type CreateRefundRequest struct {
	PaymentID string  `json:"payment_id" binding:"required"`
	Amount    *int64  `json:"amount,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// SubmitEvidenceRequest is the body of POST /disputes/:id/evidence.
type SubmitEvidenceRequest struct {
	Evidence map[string]any `json:"evidence" binding:"required"`
}

// CreatePayoutRequest is the body of POST /payouts.
type CreatePayoutRequest struct {
	CustomerID          string `json:"customer_id" binding:"required"`
	MerchantConnectorID string `json:"merchant_connector_id" binding:"required"`
	Amount              int64  `json:"amount" binding:"required,gt=0"`
	Currency            string `json:"currency" binding:"required,len=3"`
}

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Name     *string        `json:"name,omitempty"`
	Email    *string        `json:"email,omitempty"`
	Phone    *string        `json:"phone,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SavePaymentMethodRequest is the body of POST /customers/:id/payment_methods.
type SavePaymentMethodRequest struct {
	Type        string  `json:"type" binding:"required"`
	Token       string  `json:"token" binding:"required"`
	Last4       *string `json:"last4,omitempty"`
	CardNetwork *string `json:"card_network,omitempty"`
	ExpiryMonth *string `json:"expiry_month,omitempty"`
	ExpiryYear  *string `json:"expiry_year,omitempty"`
}

// CreateConnectorAccountRequest is the body of POST /account/connectors.
type CreateConnectorAccountRequest struct {
	ProfileID      string              `json:"profile_id" binding:"required"`
	ConnectorName  string              `json:"connector_name" binding:"required"`
	ConnectorLabel string              `json:"connector_label" binding:"required"`
	AuthType       domain.AuthType     `json:"auth_type" binding:"required"`
	Credentials    map[string]any      `json:"credentials" binding:"required"`
	UseUCS         bool                `json:"use_ucs,omitempty"`
	TestMode       bool                `json:"test_mode,omitempty"`
}

// UpdateBusinessProfileRequest is the body of PUT /account/profiles/:id.
type UpdateBusinessProfileRequest struct {
	RoutingAlgorithmID *string `json:"routing_algorithm_id,omitempty"`
	DefaultConnectorID *string `json:"default_connector_id,omitempty"`
}
