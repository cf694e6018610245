package paymentsm

import (
	"context"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
)

// Capture implements the Capture operation, including multiple-capture
// accumulation: each call advances CaptureSequence and the intent
// stays PartiallyCapturedAndCapturable until the remaining capturable
// amount reaches zero.
func (s *Service) Capture(ctx context.Context, req ports.CaptureRequest) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if !eligibleForCapture(intent.Status) {
		return nil, apperror.InvalidStatusForOperation("Capture", string(intent.Status))
	}
	if intent.ActiveAttemptID == nil {
		return nil, apperror.InternalError(fmt.Errorf("payment %s has no active attempt", intent.PaymentID))
	}

	attempt, err := s.attempts.Get(ctx, intent.PaymentID, *intent.ActiveAttemptID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get active attempt: %w", err))
	}

	captureAmount := intent.AmountCapturable
	if req.Amount != nil {
		captureAmount = *req.Amount
	}
	if captureAmount <= 0 || captureAmount > intent.AmountCapturable {
		return nil, apperror.PreconditionFailed("CAP_001", "amount_to_capture greater than capturable amount")
	}

	mca, err := s.merchants.GetConnectorAccountByID(ctx, attempt.ConnectorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load connector account: %w", err))
	}

	connectorTxnID := derefString(attempt.ConnectorTransactionID)
	result, err := s.connectors.Capture(ctx, mca, connectorTxnID, captureAmount, attempt.Amount, intent.Currency)
	if err != nil {
		return nil, apperror.ConnectorTransient(mca.ConnectorName, err)
	}

	totalCaptured := attempt.AmountCaptured + captureAmount
	remaining := intent.Amount - totalCaptured
	newIntentStatus := deriveIntentStatus(result.Status, intent.CaptureMethod, remaining)
	nextSequence := attempt.CaptureSequence + 1

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	attemptUpdate := attemptUpdateFromResult(result, &totalCaptured)
	attemptUpdate.CaptureSequence = &nextSequence
	if err := s.attempts.Update(ctx, tx, attempt.AttemptID, attemptUpdate); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment attempt: %w", err))
	}

	intentUpdate := domain.IntentUpdate{
		UpdatedBy:        "capture",
		Status:           &newIntentStatus,
		AmountCapturable: &remaining,
		AmountCaptured:   &totalCaptured,
	}
	if err := s.intents.Update(ctx, tx, intent.MerchantID, intent.PaymentID, intentUpdate); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if eventType, ok := eventTypeForIntent(newIntentStatus); ok {
		s.emitEvent(ctx, intent.MerchantID, intent.ProfileID, intent.PaymentID, "payment", eventType)
	}

	intent.Status = newIntentStatus
	intent.AmountCapturable = remaining
	intent.AmountCaptured = totalCaptured
	s.log.Info().Str("payment_id", intent.PaymentID).Int64("capture_amount", captureAmount).
		Int("capture_sequence", nextSequence).Msg("capture dispatched")
	return intent, nil
}

// Cancel implements the Cancel operation: voids a not-yet-captured
// authorization.
func (s *Service) Cancel(ctx context.Context, req ports.CancelRequest) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if !eligibleForCancel(intent.Status) {
		return nil, apperror.InvalidStatusForOperation("Cancel", string(intent.Status))
	}
	if intent.ActiveAttemptID == nil {
		return s.finalizeCancelWithoutAttempt(ctx, intent)
	}

	attempt, err := s.attempts.Get(ctx, intent.PaymentID, *intent.ActiveAttemptID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get active attempt: %w", err))
	}
	mca, err := s.merchants.GetConnectorAccountByID(ctx, attempt.ConnectorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load connector account: %w", err))
	}

	result, err := s.connectors.Void(ctx, mca, derefString(attempt.ConnectorTransactionID), req.Reason)
	if err != nil {
		return nil, apperror.ConnectorTransient(mca.ConnectorName, err)
	}

	newIntentStatus := deriveIntentStatus(result.Status, intent.CaptureMethod, 0)

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.attempts.Update(ctx, tx, attempt.AttemptID, attemptUpdateFromResult(result, nil)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment attempt: %w", err))
	}
	zero := int64(0)
	if err := s.intents.Update(ctx, tx, intent.MerchantID, intent.PaymentID, domain.IntentUpdate{
		UpdatedBy:        "cancel",
		Status:           &newIntentStatus,
		AmountCapturable: &zero,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	intent.Status = newIntentStatus
	intent.AmountCapturable = 0
	return intent, nil
}

func (s *Service) finalizeCancelWithoutAttempt(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	cancelled := domain.IntentStatusCancelled
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck
	if err := s.intents.Update(ctx, tx, intent.MerchantID, intent.PaymentID, domain.IntentUpdate{
		UpdatedBy: "cancel",
		Status:    &cancelled,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	intent.Status = cancelled
	return intent, nil
}

// CancelPostCapture implements the CancelPostCapture operation: a full
// refund of an already-captured attempt routed through the Cancel
// surface.
func (s *Service) CancelPostCapture(ctx context.Context, req ports.CancelPostCaptureRequest) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if !eligibleForCancelPostCapture(intent.Status) {
		return nil, apperror.InvalidStatusForOperation("CancelPostCapture", string(intent.Status))
	}

	if _, err := s.CreateRefund(ctx, ports.CreateRefundRequest{
		MerchantID:     intent.MerchantID,
		PaymentID:      intent.PaymentID,
		Reason:         req.Reason,
		IdempotencyKey: "cancel_post_capture:" + intent.PaymentID,
	}); err != nil {
		return nil, err
	}
	return s.intents.Get(ctx, req.MerchantID, req.PaymentID)
}

// Reject implements the Reject operation: merchant-side rejection of a
// payment still awaiting merchant action.
func (s *Service) Reject(ctx context.Context, req ports.RejectRequest) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if !eligibleForReject(intent.Status) {
		return nil, apperror.InvalidStatusForOperation("Reject", string(intent.Status))
	}

	failed := domain.IntentStatusFailed
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck
	if err := s.intents.Update(ctx, tx, intent.MerchantID, intent.PaymentID, domain.IntentUpdate{
		UpdatedBy:    "merchant_reject",
		Status:       &failed,
		ErrorMessage: req.Reason,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	intent.Status = failed
	s.emitEvent(ctx, intent.MerchantID, intent.ProfileID, intent.PaymentID, "payment", domain.EventPaymentFailed)
	return intent, nil
}
