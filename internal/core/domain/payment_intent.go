package domain

import "time"

// IntentStatus is the closed set of PaymentIntent lifecycle states.
type IntentStatus string

const (
	IntentStatusRequiresPaymentMethod           IntentStatus = "requires_payment_method"
	IntentStatusRequiresConfirmation            IntentStatus = "requires_confirmation"
	IntentStatusRequiresCustomerAction          IntentStatus = "requires_customer_action"
	IntentStatusRequiresMerchantAction          IntentStatus = "requires_merchant_action"
	IntentStatusRequiresCapture                 IntentStatus = "requires_capture"
	IntentStatusProcessing                      IntentStatus = "processing"
	IntentStatusSucceeded                       IntentStatus = "succeeded"
	IntentStatusFailed                          IntentStatus = "failed"
	IntentStatusCancelled                       IntentStatus = "cancelled"
	IntentStatusPartiallyCaptured                IntentStatus = "partially_captured"
	IntentStatusPartiallyCapturedAndCapturable  IntentStatus = "partially_captured_and_capturable"
)

// IsTerminal reports whether the intent cannot transition further through
// the normal operation set (Cancel/Capture/Confirm reject it; Reject
// rejects Succeeded and Failed but still accepts Cancelled).
func (s IntentStatus) IsTerminal() bool {
	switch s {
	case IntentStatusSucceeded, IntentStatusFailed, IntentStatusCancelled:
		return true
	default:
		return false
	}
}

// CaptureMethod controls whether a successful authorization auto-captures.
type CaptureMethod string

const (
	CaptureMethodAutomatic CaptureMethod = "automatic"
	CaptureMethodManual    CaptureMethod = "manual"
)

// SetupFutureUsage signals whether the payment method should be saved for
// later off-session (merchant-initiated) use.
type SetupFutureUsage string

const (
	SetupFutureUsageNone       SetupFutureUsage = ""
	SetupFutureUsageOnSession  SetupFutureUsage = "on_session"
	SetupFutureUsageOffSession SetupFutureUsage = "off_session"
)

// Address holds billing/shipping details. Street/name/phone fields carry
// PII; the intent repository stores the struct as plain JSON in a jsonb
// column, and the Key Manager does not encrypt it.
type Address struct {
	Line1      *string `json:"line1,omitempty"`
	Line2      *string `json:"line2,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Zip        *string `json:"zip,omitempty"`
	CountryISO *string `json:"country,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// PaymentIntent is the merchant-visible "order". Amount is the intent's
// currency minor unit (integer) — e.g. cents for USD.
type PaymentIntent struct {
	PaymentID          string           `json:"payment_id"`
	MerchantID         string           `json:"merchant_id"`
	ProfileID          string           `json:"profile_id"`
	CustomerID         *string          `json:"customer_id,omitempty"`
	Amount             int64            `json:"amount"`
	AmountCapturable   int64            `json:"amount_capturable"`
	AmountCaptured     int64            `json:"amount_captured"`
	Currency           string           `json:"currency"`
	Status             IntentStatus     `json:"status"`
	CaptureMethod      CaptureMethod    `json:"capture_method"`
	SetupFutureUsage   SetupFutureUsage `json:"setup_future_usage"`
	ActiveAttemptID    *string          `json:"active_attempt_id,omitempty"`
	ClientSecret       string           `json:"client_secret"`
	BillingAddress     *Address         `json:"billing,omitempty"`
	ShippingAddress    *Address         `json:"shipping,omitempty"`
	Description        *string          `json:"description,omitempty"`
	ReturnURL          *string          `json:"return_url,omitempty"`
	Metadata           map[string]any   `json:"metadata,omitempty"`
	MandateID          *string          `json:"mandate_id,omitempty"`
	ErrorCode          *string          `json:"error_code,omitempty"`
	ErrorMessage       *string          `json:"error_message,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	ModifiedAt         time.Time        `json:"modified_at"`
}

// IsCaptureEligible reports whether Capture is an allowed operation given
// the operation eligibility table.
func (p *PaymentIntent) IsCaptureEligible() bool {
	return p.Status == IntentStatusRequiresCapture || p.Status == IntentStatusPartiallyCapturedAndCapturable
}

// IntentUpdate names exactly the fields a mutation is allowed to change:
// the persisted diff contains only the fields named here.
type IntentUpdate struct {
	UpdatedBy        string
	Status           *IntentStatus
	ActiveAttemptID  *string
	AmountCapturable *int64
	AmountCaptured   *int64
	MandateID        *string
	ErrorCode        *string
	ErrorMessage     *string

	// Pre-confirm mutation fields (operation: Update). Only settable
	// while the intent is still eligible for Update.
	Amount          *int64
	Currency        *string
	Description     *string
	Metadata        map[string]any
	BillingAddress  *Address
	ShippingAddress *Address
}

// Apply folds the update's named fields into intent, the in-memory
// equivalent of the column-by-column SQL diff the postgres adapter
// builds. The Redis KV mirror uses it to rewrite the stored snapshot
// without touching any unnamed field.
func (u IntentUpdate) Apply(intent *PaymentIntent, now time.Time) {
	if u.Status != nil {
		intent.Status = *u.Status
	}
	if u.ActiveAttemptID != nil {
		intent.ActiveAttemptID = u.ActiveAttemptID
	}
	if u.AmountCapturable != nil {
		intent.AmountCapturable = *u.AmountCapturable
	}
	if u.AmountCaptured != nil {
		intent.AmountCaptured = *u.AmountCaptured
	}
	if u.MandateID != nil {
		intent.MandateID = u.MandateID
	}
	if u.ErrorCode != nil {
		intent.ErrorCode = u.ErrorCode
	}
	if u.ErrorMessage != nil {
		intent.ErrorMessage = u.ErrorMessage
	}
	if u.Amount != nil {
		intent.Amount = *u.Amount
	}
	if u.Currency != nil {
		intent.Currency = *u.Currency
	}
	if u.Description != nil {
		intent.Description = u.Description
	}
	if u.Metadata != nil {
		intent.Metadata = u.Metadata
	}
	if u.BillingAddress != nil {
		intent.BillingAddress = u.BillingAddress
	}
	if u.ShippingAddress != nil {
		intent.ShippingAddress = u.ShippingAddress
	}
	intent.ModifiedAt = now
}
