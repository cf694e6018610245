package paymentsm

import (
	"context"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
)

// Sync implements the Sync operation and the PSync process tracker
// workflow: reload intent+attempt, call the connector's
// PSync flow, apply the standard post-update. Running it twice against
// an already-terminal attempt is a no-op, satisfying the scheduler's
// idempotency requirement.
func (s *Service) Sync(ctx context.Context, merchantID, paymentID string, forceSync bool) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, merchantID, paymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if intent.ActiveAttemptID == nil {
		return intent, nil
	}
	attempt, err := s.attempts.Get(ctx, paymentID, *intent.ActiveAttemptID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get active attempt: %w", err))
	}
	if attempt.Status.IsTerminal() && !forceSync {
		return intent, nil
	}

	mca, err := s.merchants.GetConnectorAccountByID(ctx, attempt.ConnectorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load connector account: %w", err))
	}

	result, err := s.connectors.PSync(ctx, mca, derefString(attempt.ConnectorTransactionID))
	if err != nil {
		// An unreachable connector on force_sync returns the
		// last-known status rather than a fresh error, but a
		// background poll is still (re)scheduled.
		s.log.Warn().Err(err).Str("payment_id", paymentID).Str("connector", mca.ConnectorName).
			Msg("psync connector call failed, returning last known status")
		s.scheduleSync(ctx, "payment_sync", merchantID, paymentID, mca.ConnectorName)
		return intent, nil
	}

	if result.Status == attempt.Status {
		return intent, nil
	}

	capturable := intent.Amount - attempt.AmountCaptured
	if result.AmountCaptured != nil {
		capturable = intent.Amount - *result.AmountCaptured
	}
	newIntentStatus := deriveIntentStatus(result.Status, intent.CaptureMethod, capturable)

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.attempts.Update(ctx, tx, attempt.AttemptID, attemptUpdateFromResult(result, result.AmountCaptured)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment attempt: %w", err))
	}
	intentUpdate := domain.IntentUpdate{
		UpdatedBy:        "psync",
		Status:           &newIntentStatus,
		AmountCapturable: &capturable,
	}
	if result.AmountCaptured != nil {
		intentUpdate.AmountCaptured = result.AmountCaptured
	}
	if result.ErrorCode != nil {
		intentUpdate.ErrorCode = result.ErrorCode
		intentUpdate.ErrorMessage = result.ErrorMessage
	}
	if err := s.intents.Update(ctx, tx, intent.MerchantID, intent.PaymentID, intentUpdate); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if isRetriableResult(result) {
		s.scheduleSync(ctx, "payment_sync", merchantID, paymentID, mca.ConnectorName)
	}
	if eventType, ok := eventTypeForIntent(newIntentStatus); ok {
		s.emitEvent(ctx, intent.MerchantID, intent.ProfileID, intent.PaymentID, "payment", eventType)
	}

	intent.Status = newIntentStatus
	intent.AmountCapturable = capturable
	return intent, nil
}

// ForceFailPending terminally fails an attempt that stayed Pending past
// its sync retry budget:
// the attempt moves to Failure with a timeout reason, the intent to
// Failed, and the failure webhook fires. A no-op against an attempt
// that resolved in the meantime, so the worker can call it blindly.
func (s *Service) ForceFailPending(ctx context.Context, merchantID, paymentID, reason string) error {
	intent, err := s.intents.Get(ctx, merchantID, paymentID)
	if err != nil {
		if isNotFound(err) {
			return apperror.NotFound("payment")
		}
		return apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if intent.ActiveAttemptID == nil {
		return nil
	}
	attempt, err := s.attempts.Get(ctx, paymentID, *intent.ActiveAttemptID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get active attempt: %w", err))
	}
	if attempt.Status.IsTerminal() {
		return nil
	}

	failedAttempt := domain.AttemptStatusFailure
	failedIntent := domain.IntentStatusFailed
	code := "SYNC_TIMEOUT"

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.attempts.Update(ctx, tx, attempt.AttemptID, domain.AttemptUpdate{
		UpdatedBy:    "psync_timeout",
		Status:       &failedAttempt,
		ErrorCode:    &code,
		ErrorMessage: &reason,
	}); err != nil {
		return apperror.InternalError(fmt.Errorf("update payment attempt: %w", err))
	}
	if err := s.intents.Update(ctx, tx, merchantID, paymentID, domain.IntentUpdate{
		UpdatedBy:    "psync_timeout",
		Status:       &failedIntent,
		ErrorCode:    &code,
		ErrorMessage: &reason,
	}); err != nil {
		return apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.emitEvent(ctx, intent.MerchantID, intent.ProfileID, paymentID, "payment", domain.EventPaymentFailed)
	s.log.Warn().Str("payment_id", paymentID).Str("attempt_id", attempt.AttemptID).
		Str("reason", reason).Msg("pending attempt force-failed after sync retries exhausted")
	return nil
}

// Status implements the read-only Status operation: a PSync without a
// forced connector round-trip.
func (s *Service) Status(ctx context.Context, merchantID, paymentID string) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, merchantID, paymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	return intent, nil
}

// SessionTokens implements the SessionTokens operation: fetches each
// configured connector's client-side session token ahead of Confirm, so
// wallet SDKs (Apple/Google Pay style) can initialize before the
// payment method is known.
func (s *Service) SessionTokens(ctx context.Context, merchantID, paymentID string) (*ports.SessionTokensResult, error) {
	intent, err := s.intents.Get(ctx, merchantID, paymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}

	candidates, err := s.merchants.GetConnectorAccountsByProfile(ctx, intent.ProfileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load connector candidates: %w", err))
	}

	var tokens []ports.ConnectorSessionToken
	for i := range candidates {
		mca := &candidates[i]
		if mca.Disabled {
			continue
		}
		tok, err := s.connectors.SessionToken(ctx, mca, intent.Amount, intent.Currency)
		if err != nil {
			s.log.Warn().Err(err).Str("connector", mca.ConnectorName).Msg("session token fetch failed, skipping connector")
			continue
		}
		tokens = append(tokens, *tok)
	}
	return &ports.SessionTokensResult{SessionTokens: tokens}, nil
}

// PostSessionTokens implements PostSessionTokens: the client reports
// back which connector's session it actually initialized, letting the
// engine pin Confirm's eventual routing decision to that connector via
// metadata rather than re-running the full algorithm.
func (s *Service) PostSessionTokens(ctx context.Context, merchantID, paymentID string, connectorName string, payload map[string]any) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, merchantID, paymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	metadata := intent.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["session_connector"] = connectorName
	for k, v := range payload {
		metadata[k] = v
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck
	if err := s.intents.Update(ctx, tx, merchantID, paymentID, domain.IntentUpdate{
		UpdatedBy: "post_session_tokens",
		Metadata:  metadata,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	intent.Metadata = metadata
	return intent, nil
}

// Verify implements the Verify operation (setup-mandate): a zero-amount
// or network-token verification that establishes a usable payment
// method without creating a chargeable intent.
func (s *Service) Verify(ctx context.Context, req ports.VerifyRequest) error {
	pm, err := s.customers.GetPaymentMethod(ctx, req.PaymentMethodID)
	if err != nil {
		if isNotFound(err) {
			return apperror.NotFound("payment method")
		}
		return apperror.InternalError(fmt.Errorf("get payment method: %w", err))
	}
	if pm.CustomerID != req.CustomerID {
		return apperror.NotFound("payment method")
	}
	if pm.Disabled {
		return apperror.PreconditionFailed("PM_001", "payment method is disabled")
	}
	return nil
}
