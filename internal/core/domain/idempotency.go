package domain

import "time"

// IdempotencyLog records the response returned for a (merchant, payment_id)
// pair so replays of PaymentCreate never create a second intent.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "merchant_id:payment_id"
	PaymentID    string    `json:"payment_id"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey constructs the standard key format for payment creation.
func BuildIdempotencyKey(merchantID, paymentID string) string {
	return merchantID + ":" + paymentID
}

// BuildRefundIdempotencyKey constructs the key for refund idempotency.
func BuildRefundIdempotencyKey(merchantID, originalReferenceID string) string {
	return merchantID + ":refund:" + originalReferenceID
}
