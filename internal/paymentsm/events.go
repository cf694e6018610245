package paymentsm

import (
	"context"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
)

// emitEvent materializes the durable Event row for a notifiable
// status change and enqueues its delivery as a process
// tracker task, so an outbound HTTP failure never blocks the operation
// that produced it.
func (s *Service) emitEvent(ctx context.Context, merchantID, profileID, primaryObjectID, primaryObjectType string, eventType domain.EventType) {
	event := &domain.Event{
		ID:                newEventID(),
		MerchantID:        merchantID,
		ProfileID:         profileID,
		EventType:         eventType,
		PrimaryObjectID:   primaryObjectID,
		PrimaryObjectType: primaryObjectType,
		DeliveryStatus:    domain.EventDeliveryPending,
		InitialAttemptID:  primaryObjectID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		s.log.Error().Err(err).Str("payment_id", primaryObjectID).Str("event_type", string(eventType)).
			Msg("failed to persist outgoing event, webhook will not fire")
		return
	}

	if s.tracker == nil {
		return
	}
	task := ports.TrackerTask{
		ID:            "pt_" + event.ID,
		TaskType:      "webhook_delivery",
		ReferenceID:   event.ID,
		ConnectorName: "",
	}
	if err := s.tracker.Enqueue(ctx, task); err != nil {
		s.log.Error().Err(err).Str("event_id", event.ID).Msg("failed to enqueue webhook delivery task")
	}
}

// scheduleSync enqueues a payment_sync/refund_sync/payout_sync process
// tracker task for a reference that came back Pending from the
// connector. merchantID rides along in Payload so the worker can
// re-scope the eventual Sync/SyncRefund call without a second lookup
// table.
func (s *Service) scheduleSync(ctx context.Context, taskType, merchantID, referenceID, connectorName string) {
	if s.tracker == nil {
		return
	}
	task := ports.TrackerTask{
		ID:            fmt.Sprintf("pt_%s_%s", taskType, referenceID),
		TaskType:      taskType,
		ReferenceID:   referenceID,
		ConnectorName: connectorName,
		Payload:       map[string]any{"merchant_id": merchantID},
	}
	if err := s.tracker.Enqueue(ctx, task); err != nil {
		s.log.Error().Err(err).Str("reference_id", referenceID).Str("task_type", taskType).
			Msg("failed to enqueue sync task")
	}
}
