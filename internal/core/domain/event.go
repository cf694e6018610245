package domain

import "time"

// EventType is the closed set of outgoing (merchant-bound) webhook
// events. Incoming connector webhook events use the separate
// IncomingWebhookEvent enum below.
type EventType string

const (
	EventPaymentSucceeded EventType = "payment_succeeded"
	EventPaymentFailed    EventType = "payment_failed"
	EventPaymentProcessing EventType = "payment_processing"
	EventActionRequired   EventType = "action_required"
	EventRefundSucceeded  EventType = "refund_succeeded"
	EventRefundFailed     EventType = "refund_failed"
	EventDisputeOpened    EventType = "dispute_opened"
	EventDisputeWon       EventType = "dispute_won"
	EventDisputeLost      EventType = "dispute_lost"
	EventMandateActive    EventType = "mandate_active"
	EventMandateRevoked   EventType = "mandate_revoked"
	EventPayoutSucceeded  EventType = "payout_succeeded"
	EventPayoutFailed     EventType = "payout_failed"
)

// EventDeliveryStatus tracks whether an outgoing Event's webhook fired.
type EventDeliveryStatus string

const (
	EventDeliveryPending   EventDeliveryStatus = "pending"
	EventDeliveryDelivered EventDeliveryStatus = "delivered"
	EventDeliveryFailed    EventDeliveryStatus = "failed"
)

// Event is the durable record of a terminal-state change that must be
// fanned out to the merchant as a webhook.
type Event struct {
	ID              string              `json:"event_id"`
	MerchantID      string              `json:"merchant_id"`
	ProfileID       string              `json:"profile_id"`
	EventType       EventType           `json:"event_type"`
	PrimaryObjectID string              `json:"primary_object_id"` // payment_id / refund_id / dispute_id
	PrimaryObjectType string            `json:"primary_object_type"`
	PayloadEnc      string              `json:"-"` // envelope-encrypted JSON view sent to the merchant
	DeliveryStatus  EventDeliveryStatus `json:"delivery_status"`
	DeliveryAttempts int                `json:"delivery_attempts"`
	InitialAttemptID string             `json:"initial_attempt_id"` // orders delivery within one causal chain
	CreatedAt       time.Time           `json:"created_at"`
	ModifiedAt      time.Time           `json:"modified_at"`
}

// IncomingWebhookEvent is the closed enum an inbound connector webhook
// maps to before being applied through the normal state machine.
type IncomingWebhookEvent string

const (
	IncomingPaymentIntentSuccess IncomingWebhookEvent = "payment_intent_success"
	IncomingPaymentIntentFailure IncomingWebhookEvent = "payment_intent_failure"
	IncomingPaymentActionRequired IncomingWebhookEvent = "payment_action_required"
	IncomingRefundSuccess        IncomingWebhookEvent = "refund_success"
	IncomingRefundFailure        IncomingWebhookEvent = "refund_failure"
	IncomingDisputeOpened        IncomingWebhookEvent = "dispute_opened"
	IncomingDisputeWon           IncomingWebhookEvent = "dispute_won"
	IncomingDisputeLost          IncomingWebhookEvent = "dispute_lost"
	IncomingMandateActive        IncomingWebhookEvent = "mandate_active"
	IncomingEventNotSupported    IncomingWebhookEvent = "event_not_supported"
)
