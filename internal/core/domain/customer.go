package domain

import "time"

// Customer is an optional durable identity a merchant can attach
// payment methods and mandates to.
type Customer struct {
	ID          string    `json:"id"`
	MerchantID  string    `json:"merchant_id"`
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// PaymentMethod is a tokenized reusable instrument stored in an external
// vault and referenced by an opaque token — raw card/bank data never
// lives in this engine's storage.
type PaymentMethod struct {
	ID             string     `json:"id"`
	MerchantID     string     `json:"merchant_id"`
	CustomerID     string     `json:"customer_id"`
	Type           string     `json:"type"` // card, bank, wallet
	Token          string     `json:"-"`    // vault token, never exposed in API responses
	Last4          *string    `json:"last4,omitempty"`
	CardNetwork    *string    `json:"card_network,omitempty"`
	ExpiryMonth    *string    `json:"expiry_month,omitempty"`
	ExpiryYear     *string    `json:"expiry_year,omitempty"`
	Disabled       bool       `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
}

// MandateStatus is the lifecycle of a stored-credential consent record.
type MandateStatus string

const (
	MandateStatusActive    MandateStatus = "active"
	MandateStatusInactive  MandateStatus = "inactive"
	MandateStatusPending   MandateStatus = "pending"
	MandateStatusRevoked   MandateStatus = "revoked"
)

// Mandate represents consent to charge a PaymentMethod without
// re-authentication (CIT established, MIT charged later).
type Mandate struct {
	ID                  string        `json:"id"`
	MerchantID          string        `json:"merchant_id"`
	CustomerID          string        `json:"customer_id"`
	PaymentMethodID     string        `json:"payment_method_id"`
	ConnectorMandateID  string        `json:"connector_mandate_id"`
	ConnectorID         string        `json:"connector_id"`
	Status              MandateStatus `json:"status"`
	MandateType          string       `json:"mandate_type"` // single_use, multi_use
	MaxAmount            *int64       `json:"max_amount,omitempty"`
	Currency             *string      `json:"currency,omitempty"`
	OriginalPaymentID     string      `json:"original_payment_id"`
	CreatedAt            time.Time    `json:"created_at"`
	ModifiedAt           time.Time    `json:"modified_at"`
}

// IsUsable reports whether a mandate can back a merchant-initiated charge.
func (m *Mandate) IsUsable() bool {
	return m.Status == MandateStatusActive
}
