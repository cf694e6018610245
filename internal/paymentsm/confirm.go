package paymentsm

import (
	"context"
	"fmt"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
)

// Confirm implements the Confirm operation: attaches a payment method
// (or mandate reference) and dispatches the first attempt against a
// routed connector.
func (s *Service) Confirm(ctx context.Context, req ports.ConfirmRequest) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if req.ClientSecret != "" && req.ClientSecret != intent.ClientSecret {
		return nil, apperror.ClientSecretMismatch()
	}
	if !eligibleForConfirm(intent.Status) {
		return nil, apperror.InvalidStatusForOperation("Confirm", string(intent.Status))
	}

	var mandateConnectorID *string
	var pmSnapshot *domain.PaymentMethodSnapshot
	if req.MandateID != nil {
		mandate, err := s.customers.GetMandate(ctx, *req.MandateID)
		if err != nil {
			if isNotFound(err) {
				return nil, apperror.NotFound("mandate")
			}
			return nil, apperror.InternalError(fmt.Errorf("get mandate: %w", err))
		}
		if !mandate.IsUsable() {
			return nil, apperror.MandateNotUsable()
		}
		mandateConnectorID = &mandate.ConnectorMandateID
	} else {
		pmSnapshot = req.PaymentMethod
	}

	candidates, err := s.merchants.GetConnectorAccountsByProfile(ctx, intent.ProfileID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load connector candidates: %w", err))
	}
	if len(candidates) == 0 {
		return nil, apperror.PreconditionFailed("ROUTE_000", "profile has no configured connector accounts")
	}

	algorithm, err := s.routingAlg.GetActiveForProfile(ctx, intent.ProfileID)
	if err != nil && !isNotFound(err) {
		return nil, apperror.InternalError(fmt.Errorf("load routing algorithm: %w", err))
	}

	decision, err := s.routingSvc.Evaluate(ctx, algorithm, candidates, domain.RoutingContext{
		Amount:        intent.Amount,
		Currency:      intent.Currency,
		CaptureMethod: intent.CaptureMethod,
		PaymentMethod: pmSnapshot,
		Metadata:      intent.Metadata,
	})
	if err != nil {
		return nil, err
	}

	mca, err := s.merchants.GetConnectorAccountByID(ctx, decision.MerchantConnectorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load chosen connector account: %w", err))
	}

	attemptID := newAttemptID()
	now := time.Now().UTC()
	attempt := &domain.PaymentAttempt{
		AttemptID:           attemptID,
		PaymentID:           intent.PaymentID,
		MerchantID:          intent.MerchantID,
		ConnectorID:         mca.ID,
		ConnectorName:       mca.ConnectorName,
		Status:              domain.AttemptStatusStarted,
		Amount:              intent.Amount,
		Currency:            intent.Currency,
		AuthenticationType:  domain.AuthenticationTypeNoThreeDS,
		CaptureMethod:       intent.CaptureMethod,
		PaymentMethod:       pmSnapshot,
		PaymentMethodID:     req.PaymentMethodID,
		MandateID:           req.MandateID,
		CreatedAt:           now,
		ModifiedAt:          now,
	}

	result, err := s.connectors.Authorize(ctx, mca, ports.ConnectorAuthorizeRequest{
		Amount:             intent.Amount,
		Currency:           intent.Currency,
		PaymentMethod:      pmSnapshot,
		VaultToken:         req.VaultToken,
		MandateConnectorID: mandateConnectorID,
		CaptureMethod:      intent.CaptureMethod,
		ReturnURL:          intent.ReturnURL,
		Metadata:           intent.Metadata,
	})
	if err != nil {
		return nil, apperror.ConnectorTransient(mca.ConnectorName, err)
	}

	attempt.Status = result.Status
	attempt.ConnectorTransactionID = result.ConnectorTransactionID
	attempt.RedirectionData = result.RedirectionData
	attempt.ErrorCode = result.ErrorCode
	attempt.ErrorMessage = result.ErrorMessage
	attempt.ErrorReason = result.ErrorReason
	attempt.UnifiedCode = result.UnifiedCode
	attempt.UnifiedMessage = result.UnifiedMessage
	attempt.IntegrityCheck = result.IntegrityCheck
	if result.AmountCaptured != nil {
		attempt.AmountCaptured = *result.AmountCaptured
	}

	capturable := intent.Amount - attempt.AmountCaptured
	newIntentStatus := deriveIntentStatus(attempt.Status, intent.CaptureMethod, capturable)

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.attempts.Create(ctx, tx, attempt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment attempt: %w", err))
	}

	intentUpdate := domain.IntentUpdate{
		UpdatedBy:        "connector_dispatch",
		Status:           &newIntentStatus,
		ActiveAttemptID:  &attemptID,
		AmountCapturable: &capturable,
	}
	if attempt.AmountCaptured > 0 {
		captured := attempt.AmountCaptured
		intentUpdate.AmountCaptured = &captured
	}
	if mandateConnectorID != nil {
		intentUpdate.MandateID = req.MandateID
	}
	if attempt.ErrorCode != nil {
		intentUpdate.ErrorCode = attempt.ErrorCode
		intentUpdate.ErrorMessage = attempt.ErrorMessage
	}
	if err := s.intents.Update(ctx, tx, intent.MerchantID, intent.PaymentID, intentUpdate); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}

	if req.OffSession && intent.SetupFutureUsage == domain.SetupFutureUsageOffSession && mandateConnectorID == nil {
		if connMandateID, ok := result.Raw["mandate_reference"].(string); ok && connMandateID != "" && req.PaymentMethodID != nil {
			mandate := &domain.Mandate{
				ID:                 "man_" + attemptID,
				MerchantID:         intent.MerchantID,
				CustomerID:         derefString(intent.CustomerID),
				PaymentMethodID:    *req.PaymentMethodID,
				ConnectorMandateID: connMandateID,
				ConnectorID:        mca.ID,
				Status:             domain.MandateStatusActive,
				MandateType:        "multi_use",
				OriginalPaymentID:  intent.PaymentID,
				CreatedAt:          now,
				ModifiedAt:         now,
			}
			if err := s.customers.CreateMandate(ctx, mandate); err != nil {
				s.log.Warn().Err(err).Str("payment_id", intent.PaymentID).Msg("failed to persist mandate from confirm response")
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if isRetriableResult(result) {
		s.scheduleSync(ctx, "payment_sync", intent.MerchantID, intent.PaymentID, mca.ConnectorName)
	}
	if eventType, ok := eventTypeForIntent(newIntentStatus); ok {
		s.emitEvent(ctx, intent.MerchantID, intent.ProfileID, intent.PaymentID, "payment", eventType)
	}

	intent.Status = newIntentStatus
	intent.ActiveAttemptID = &attemptID
	intent.AmountCapturable = capturable
	intent.AmountCaptured = attempt.AmountCaptured

	s.log.Info().Str("payment_id", intent.PaymentID).Str("attempt_id", attemptID).
		Str("connector", mca.ConnectorName).Str("status", string(newIntentStatus)).Msg("confirm dispatched")

	if newIntentStatus == domain.IntentStatusRequiresCapture && intent.CaptureMethod == domain.CaptureMethodAutomatic {
		return s.Capture(ctx, ports.CaptureRequest{MerchantID: intent.MerchantID, PaymentID: intent.PaymentID})
	}
	return intent, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
