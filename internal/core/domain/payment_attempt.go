package domain

import "time"

// AttemptStatus is the closed set of PaymentAttempt lifecycle states.
type AttemptStatus string

const (
	AttemptStatusStarted                       AttemptStatus = "started"
	AttemptStatusAuthenticationPending          AttemptStatus = "authentication_pending"
	AttemptStatusAuthenticationSuccessful       AttemptStatus = "authentication_successful"
	AttemptStatusAuthorized                     AttemptStatus = "authorized"
	AttemptStatusAuthorizationFailed            AttemptStatus = "authorization_failed"
	AttemptStatusCharged                        AttemptStatus = "charged"
	AttemptStatusVoided                         AttemptStatus = "voided"
	AttemptStatusVoidFailed                     AttemptStatus = "void_failed"
	AttemptStatusCaptureInitiated               AttemptStatus = "capture_initiated"
	AttemptStatusCaptureFailed                  AttemptStatus = "capture_failed"
	AttemptStatusPartialCharged                 AttemptStatus = "partial_charged"
	AttemptStatusPartialChargedAndCapturable    AttemptStatus = "partial_charged_and_capturable"
	AttemptStatusPending                        AttemptStatus = "pending"
	AttemptStatusFailure                        AttemptStatus = "failure"
	AttemptStatusPaymentMethodAwaited           AttemptStatus = "payment_method_awaited"
	AttemptStatusConfirmationAwaited            AttemptStatus = "confirmation_awaited"
	AttemptStatusDeviceDataCollectionPending    AttemptStatus = "device_data_collection_pending"
	AttemptStatusAutoRefunded                   AttemptStatus = "auto_refunded"
	AttemptStatusUnresolved                     AttemptStatus = "unresolved"
)

// IsTerminal reports whether the attempt's non-sync fields are frozen.
func (s AttemptStatus) IsTerminal() bool {
	switch s {
	case AttemptStatusCharged, AttemptStatusFailure, AttemptStatusVoided, AttemptStatusAutoRefunded:
		return true
	default:
		return false
	}
}

// IsRefundEligible reports whether Refund may target an attempt in this
// status, per the operation eligibility table.
func (s AttemptStatus) IsRefundEligible() bool {
	switch s {
	case AttemptStatusCharged, AttemptStatusPartialCharged, AttemptStatusPartialChargedAndCapturable:
		return true
	default:
		return false
	}
}

// AuthenticationType describes whether 3DS-style customer authentication
// is requested for the attempt.
type AuthenticationType string

const (
	AuthenticationTypeThreeDS    AuthenticationType = "three_ds"
	AuthenticationTypeNoThreeDS  AuthenticationType = "no_three_ds"
)

// IntegrityCheckResult records the outcome of the post-dispatch integrity
// comparison.
type IntegrityCheckResult string

const (
	IntegrityCheckUnknown IntegrityCheckResult = ""
	IntegrityCheckPassed  IntegrityCheckResult = "passed"
	IntegrityCheckFailed  IntegrityCheckResult = "failed"
)

// PaymentMethodSnapshot is the minimal, non-PII-bearing record of which
// instrument an attempt used. Raw card/bank data never lives here —
// the vault token (PaymentMethod.Token) is the only durable reference.
type PaymentMethodSnapshot struct {
	Type        string  `json:"type"` // card, bank, wallet
	Subtype     *string `json:"subtype,omitempty"`
	Last4       *string `json:"last4,omitempty"`
	CardNetwork *string `json:"card_network,omitempty"`
	BINCountry  *string `json:"bin_country,omitempty"`
}

// PaymentAttempt is a single try against one connector within an intent.
type PaymentAttempt struct {
	AttemptID              string                 `json:"attempt_id"`
	PaymentID               string                `json:"payment_id"`
	MerchantID               string                `json:"merchant_id"`
	ConnectorID              string                `json:"connector_id"` // MerchantConnectorAccount.ID
	ConnectorName            string                `json:"connector_name"`
	ConnectorTransactionID   *string               `json:"connector_transaction_id,omitempty"`
	Status                   AttemptStatus         `json:"status"`
	Amount                   int64                 `json:"amount"`
	AmountCaptured           int64                 `json:"amount_captured"`
	CaptureSequence          int                   `json:"capture_sequence"` // supplemented: numbers successive partial captures
	Currency                 string                `json:"currency"`
	AuthenticationType       AuthenticationType    `json:"authentication_type"`
	CaptureMethod            CaptureMethod         `json:"capture_method"`
	PaymentMethod            *PaymentMethodSnapshot `json:"payment_method,omitempty"`
	PaymentMethodID          *string               `json:"payment_method_id,omitempty"`
	MandateID                *string               `json:"mandate_id,omitempty"`
	PreprocessingStepID      *string               `json:"preprocessing_step_id,omitempty"`
	RedirectionData          map[string]any        `json:"redirection_data,omitempty"`
	ErrorCode                *string               `json:"error_code,omitempty"`
	ErrorMessage             *string               `json:"error_message,omitempty"`
	ErrorReason              *string               `json:"error_reason,omitempty"`
	UnifiedCode              *string               `json:"unified_code,omitempty"`
	UnifiedMessage           *string               `json:"unified_message,omitempty"`
	IntegrityCheck           IntegrityCheckResult  `json:"integrity_check"`
	ConnectorMetadata        map[string]any        `json:"connector_metadata,omitempty"`
	CreatedAt                time.Time             `json:"created_at"`
	ModifiedAt               time.Time             `json:"modified_at"`
}

// IsActive reports whether the attempt can still be the intent's active
// attempt, i.e. its status is not Failure.
func (a *PaymentAttempt) IsActive() bool {
	return a.Status != AttemptStatusFailure
}

// AttemptUpdate names exactly the fields a mutation is allowed to change.
type AttemptUpdate struct {
	UpdatedBy               string
	Status                  *AttemptStatus
	ConnectorTransactionID  *string
	AmountCaptured          *int64
	CaptureSequence         *int
	ErrorCode               *string
	ErrorMessage             *string
	ErrorReason              *string
	UnifiedCode              *string
	UnifiedMessage           *string
	RedirectionData          map[string]any
	IntegrityCheck           *IntegrityCheckResult
	PreprocessingStepID      *string
	MandateID                *string
	ConnectorMetadata        map[string]any
}
