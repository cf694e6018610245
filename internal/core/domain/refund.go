package domain

import "time"

// RefundStatus is the closed set of Refund lifecycle states.
type RefundStatus string

const (
	RefundStatusPending    RefundStatus = "pending"
	RefundStatusSuccess    RefundStatus = "success"
	RefundStatusFailure    RefundStatus = "failure"
	RefundStatusError      RefundStatus = "error"
)

// Refund is independently tracked, bound to a parent PaymentAttempt and
// to a connector by MerchantConnectorID. Many partial refunds are
// allowed up to amount_captured.
type Refund struct {
	ID                      string       `json:"refund_id"`
	PaymentID               string       `json:"payment_id"`
	AttemptID               string       `json:"attempt_id"`
	MerchantID              string       `json:"merchant_id"`
	MerchantConnectorID     string       `json:"merchant_connector_id"`
	ConnectorTransactionID  *string      `json:"connector_refund_id,omitempty"`
	Amount                  int64        `json:"amount"`
	Currency                string       `json:"currency"`
	Status                  RefundStatus `json:"status"`
	Reason                  *string      `json:"reason,omitempty"`
	ErrorCode               *string      `json:"error_code,omitempty"`
	ErrorMessage             *string     `json:"error_message,omitempty"`
	ConnectorMetadata        map[string]any `json:"connector_metadata,omitempty"`
	CreatedAt                time.Time   `json:"created_at"`
	ModifiedAt               time.Time   `json:"modified_at"`
}

// IsTerminal reports whether the refund has reached a final state.
func (r *Refund) IsTerminal() bool {
	return r.Status == RefundStatusSuccess || r.Status == RefundStatusFailure
}

// RefundUpdate names exactly the fields a mutation is allowed to change.
type RefundUpdate struct {
	UpdatedBy              string
	Status                 *RefundStatus
	ConnectorTransactionID *string
	ErrorCode              *string
	ErrorMessage            *string
	ConnectorMetadata       map[string]any
}

// DisputeStatus is the closed set of Dispute lifecycle states.
type DisputeStatus string

const (
	DisputeStatusOpened           DisputeStatus = "dispute_opened"
	DisputeStatusExpired          DisputeStatus = "dispute_expired"
	DisputeStatusAccepted         DisputeStatus = "dispute_accepted"
	DisputeStatusCancelled        DisputeStatus = "dispute_cancelled"
	DisputeStatusChallenged       DisputeStatus = "dispute_challenged"
	DisputeStatusWon              DisputeStatus = "dispute_won"
	DisputeStatusLost             DisputeStatus = "dispute_lost"
)

// Dispute is a chargeback/dispute raised against a PaymentAttempt.
type Dispute struct {
	ID                      string        `json:"dispute_id"`
	PaymentID               string        `json:"payment_id"`
	AttemptID               string        `json:"attempt_id"`
	MerchantID              string        `json:"merchant_id"`
	MerchantConnectorID     string        `json:"merchant_connector_id"`
	ConnectorDisputeID      string        `json:"connector_dispute_id"`
	Amount                  int64         `json:"amount"`
	Currency                string        `json:"currency"`
	Status                  DisputeStatus `json:"status"`
	Reason                  *string       `json:"reason,omitempty"`
	EvidenceSubmittedAt     *time.Time    `json:"evidence_submitted_at,omitempty"`
	ConnectorMetadata       map[string]any `json:"connector_metadata,omitempty"`
	CreatedAt               time.Time     `json:"created_at"`
	ModifiedAt              time.Time     `json:"modified_at"`
}

// PayoutStatus is the closed set of Payout lifecycle states.
type PayoutStatus string

const (
	PayoutStatusInitiated  PayoutStatus = "initiated"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusSuccess    PayoutStatus = "success"
	PayoutStatusFailed     PayoutStatus = "failed"
	PayoutStatusCancelled  PayoutStatus = "cancelled"
)

// Payout is an outbound disbursement to a customer, tracked in parallel
// to the inbound Payment/Refund flows but sharing the same connector
// dispatch and process tracker infrastructure.
type Payout struct {
	ID                      string       `json:"payout_id"`
	MerchantID              string       `json:"merchant_id"`
	CustomerID              string       `json:"customer_id"`
	MerchantConnectorID     string       `json:"merchant_connector_id"`
	ConnectorPayoutID       *string      `json:"connector_payout_id,omitempty"`
	Amount                  int64        `json:"amount"`
	Currency                string       `json:"currency"`
	Status                  PayoutStatus `json:"status"`
	ErrorCode               *string      `json:"error_code,omitempty"`
	ErrorMessage            *string      `json:"error_message,omitempty"`
	ConnectorMetadata       map[string]any `json:"connector_metadata,omitempty"`
	CreatedAt               time.Time    `json:"created_at"`
	ModifiedAt              time.Time    `json:"modified_at"`
}
