package paymentsm

import (
	"context"
	"encoding/json"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
)

// refundStatusFromAttempt maps the AttemptStatus a connector
// Refund/RSync call normalizes to (ConnectorResult reuses the attempt
// status vocabulary across flows) onto the Refund entity's own status
// enum.
func refundStatusFromAttempt(status domain.AttemptStatus) domain.RefundStatus {
	switch status {
	case domain.AttemptStatusCharged:
		return domain.RefundStatusSuccess
	case domain.AttemptStatusFailure, domain.AttemptStatusAuthorizationFailed:
		return domain.RefundStatusFailure
	default:
		return domain.RefundStatusPending
	}
}

// CreateRefund implements the Refund subflow's creation operation: partial
// or full refunds against a Charged/PartialCharged(AndCapturable)
// attempt, up to amount_captured minus already-active refunds.
func (s *Service) CreateRefund(ctx context.Context, req ports.CreateRefundRequest) (*domain.Refund, error) {
	intent, err := s.intents.Get(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if intent.ActiveAttemptID == nil {
		return nil, apperror.PreconditionFailed("REFUND_000", "payment has no attempt to refund")
	}
	attempt, err := s.attempts.Get(ctx, intent.PaymentID, *intent.ActiveAttemptID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get active attempt: %w", err))
	}
	if !eligibleForRefund(attempt.Status) {
		return nil, apperror.InvalidStatusForOperation("Refund", string(attempt.Status))
	}

	if req.IdempotencyKey != "" {
		if existing, hit, err := s.lookupIdempotentRefund(ctx, req.IdempotencyKey); err != nil {
			return nil, err
		} else if hit {
			return existing, nil
		}
	}

	alreadyRefunded, err := s.refunds.SumActiveByAttempt(ctx, attempt.AttemptID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum active refunds: %w", err))
	}

	refundAmount := attempt.AmountCaptured - alreadyRefunded
	if req.Amount != nil {
		refundAmount = *req.Amount
	}
	if refundAmount <= 0 || alreadyRefunded+refundAmount > attempt.AmountCaptured {
		return nil, apperror.PreconditionFailed("REFUND_001", "RefundAmountExceedsPaymentAmount")
	}

	mca, err := s.merchants.GetConnectorAccountByID(ctx, attempt.ConnectorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load connector account: %w", err))
	}

	result, err := s.connectors.Refund(ctx, mca, derefString(attempt.ConnectorTransactionID), refundAmount, intent.Currency, req.Reason)
	if err != nil {
		return nil, apperror.ConnectorTransient(mca.ConnectorName, err)
	}

	refund := &domain.Refund{
		ID:                     newRefundID(),
		PaymentID:              intent.PaymentID,
		AttemptID:              attempt.AttemptID,
		MerchantID:             intent.MerchantID,
		MerchantConnectorID:    mca.ID,
		ConnectorTransactionID: result.ConnectorTransactionID,
		Amount:                 refundAmount,
		Currency:               intent.Currency,
		Status:                 refundStatusFromAttempt(result.Status),
		Reason:                 req.Reason,
		ErrorCode:              result.ErrorCode,
		ErrorMessage:           result.ErrorMessage,
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.refunds.Create(ctx, tx, refund); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create refund: %w", err))
	}

	totalRefunded := alreadyRefunded + refundAmount
	if refund.Status == domain.RefundStatusSuccess && totalRefunded >= attempt.AmountCaptured {
		autoRefunded := domain.AttemptStatusAutoRefunded
		if err := s.attempts.Update(ctx, tx, attempt.AttemptID, domain.AttemptUpdate{
			UpdatedBy: "refund_full",
			Status:    &autoRefunded,
		}); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("mark attempt auto-refunded: %w", err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if req.IdempotencyKey != "" {
		s.commitIdempotentRefund(ctx, req.IdempotencyKey, refund)
	}

	if refund.Status == domain.RefundStatusPending {
		s.scheduleSync(ctx, "refund_sync", intent.MerchantID, refund.ID, mca.ConnectorName)
	}
	switch refund.Status {
	case domain.RefundStatusSuccess:
		s.emitEvent(ctx, intent.MerchantID, intent.ProfileID, refund.ID, "refund", domain.EventRefundSucceeded)
	case domain.RefundStatusFailure:
		s.emitEvent(ctx, intent.MerchantID, intent.ProfileID, refund.ID, "refund", domain.EventRefundFailed)
	}

	s.log.Info().Str("payment_id", intent.PaymentID).Str("refund_id", refund.ID).
		Int64("amount", refundAmount).Str("status", string(refund.Status)).Msg("refund dispatched")
	return refund, nil
}

// GetRefund implements the read-only refund lookup.
func (s *Service) GetRefund(ctx context.Context, merchantID, refundID string) (*domain.Refund, error) {
	refund, err := s.refunds.Get(ctx, refundID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("refund")
		}
		return nil, apperror.InternalError(fmt.Errorf("get refund: %w", err))
	}
	if refund.MerchantID != merchantID {
		return nil, apperror.NotFound("refund")
	}
	return refund, nil
}

// SyncRefund implements the RSync workflow (PSync mirrored for refunds):
// reload, call the connector's RSync flow, apply the standard
// post-update. A no-op against an already terminal refund.
func (s *Service) SyncRefund(ctx context.Context, merchantID, refundID string) (*domain.Refund, error) {
	refund, err := s.refunds.Get(ctx, refundID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("refund")
		}
		return nil, apperror.InternalError(fmt.Errorf("get refund: %w", err))
	}
	if refund.MerchantID != merchantID {
		return nil, apperror.NotFound("refund")
	}
	if refund.IsTerminal() {
		return refund, nil
	}

	mca, err := s.merchants.GetConnectorAccountByID(ctx, refund.MerchantConnectorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load connector account: %w", err))
	}

	result, err := s.connectors.RSync(ctx, mca, derefString(refund.ConnectorTransactionID))
	if err != nil {
		s.log.Warn().Err(err).Str("refund_id", refundID).Str("connector", mca.ConnectorName).
			Msg("rsync connector call failed, returning last known status")
		s.scheduleSync(ctx, "refund_sync", refund.MerchantID, refundID, mca.ConnectorName)
		return refund, nil
	}

	newStatus := refundStatusFromAttempt(result.Status)
	if newStatus == refund.Status {
		return refund, nil
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	update := domain.RefundUpdate{
		UpdatedBy:              "rsync",
		Status:                 &newStatus,
		ConnectorTransactionID: result.ConnectorTransactionID,
		ErrorCode:              result.ErrorCode,
		ErrorMessage:           result.ErrorMessage,
	}
	if err := s.refunds.Update(ctx, tx, refund.ID, update); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update refund: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if newStatus == domain.RefundStatusPending {
		s.scheduleSync(ctx, "refund_sync", refund.MerchantID, refundID, mca.ConnectorName)
	}
	switch newStatus {
	case domain.RefundStatusSuccess:
		s.emitEvent(ctx, refund.MerchantID, "", refund.ID, "refund", domain.EventRefundSucceeded)
	case domain.RefundStatusFailure:
		s.emitEvent(ctx, refund.MerchantID, "", refund.ID, "refund", domain.EventRefundFailed)
	}

	refund.Status = newStatus
	return refund, nil
}

// lookupIdempotentRefund checks only the Redis idempotency cache for the
// refund-creation path. Unlike lookupIdempotentIntent it has no Postgres
// fallback: a cache miss or cache error is treated as a new request.
func (s *Service) lookupIdempotentRefund(ctx context.Context, key string) (*domain.Refund, bool, error) {
	raw, hit, err := s.idempCache.Get(ctx, "refund:"+key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("refund idempotency cache lookup failed, falling through")
		return nil, false, nil
	}
	if !hit {
		return nil, false, nil
	}
	refund := &domain.Refund{}
	if err := json.Unmarshal(raw, refund); err != nil {
		return nil, false, apperror.InternalError(err)
	}
	return refund, true, nil
}

func (s *Service) commitIdempotentRefund(ctx context.Context, key string, refund *domain.Refund) {
	payload, err := json.Marshal(refund)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to marshal refund for idempotency cache")
		return
	}
	s.cacheIdempotentResponse(ctx, "refund:"+key, payload)
}
