package paymentsm

import (
	"context"
	"fmt"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
)

// CreateIntent implements the operation family's Create/CreateIntent
// capability: Validate (idempotency) -> GetTracker (none yet) ->
// Domain (defaults) -> UpdateTracker (insert).
func (s *Service) CreateIntent(ctx context.Context, req ports.CreateIntentRequest) (*domain.PaymentIntent, error) {
	if req.Amount <= 0 {
		return nil, apperror.InvalidAmount()
	}
	if req.Currency == "" {
		return nil, apperror.Validation("currency is required")
	}

	idempKey := domain.BuildIdempotencyKey(req.MerchantID, req.IdempotencyKey)
	if cached, hit, err := s.lookupIdempotentIntent(ctx, idempKey); err != nil {
		return nil, err
	} else if hit {
		return cached, nil
	}

	paymentID := newPaymentID()
	now := time.Now().UTC()
	intent := &domain.PaymentIntent{
		PaymentID:        paymentID,
		MerchantID:       req.MerchantID,
		ProfileID:        req.ProfileID,
		CustomerID:       req.CustomerID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Status:           domain.IntentStatusRequiresPaymentMethod,
		CaptureMethod:    defaultCaptureMethod(req.CaptureMethod),
		SetupFutureUsage: req.SetupFutureUsage,
		ClientSecret:     newClientSecret(paymentID),
		BillingAddress:   req.BillingAddress,
		ShippingAddress:  req.ShippingAddress,
		Description:      req.Description,
		ReturnURL:        req.ReturnURL,
		Metadata:         req.Metadata,
		CreatedAt:        now,
		ModifiedAt:       now,
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.intents.Create(ctx, tx, intent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment intent: %w", err))
	}

	respJSON, err := s.commitIdempotentIntent(ctx, tx, idempKey, paymentID, intent)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.cacheIdempotentResponse(ctx, idempKey, respJSON)

	s.log.Info().Str("payment_id", paymentID).Str("merchant_id", req.MerchantID).Int64("amount", req.Amount).
		Msg("payment intent created")
	return intent, nil
}

// UpdateIntent implements the pre-confirm Update operation: only fields
// named in domain.IntentUpdate are ever written.
func (s *Service) UpdateIntent(ctx context.Context, req ports.UpdateIntentRequest) (*domain.PaymentIntent, error) {
	intent, err := s.intents.Get(ctx, req.MerchantID, req.PaymentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if !eligibleForUpdate(intent.Status) {
		return nil, apperror.InvalidStatusForOperation("Update", string(intent.Status))
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, apperror.InvalidAmount()
	}

	update := domain.IntentUpdate{
		UpdatedBy:       "merchant_update",
		Amount:          req.Amount,
		Currency:        req.Currency,
		Description:     req.Description,
		Metadata:        req.Metadata,
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.intents.Update(ctx, tx, req.MerchantID, req.PaymentID, update); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return s.intents.Get(ctx, req.MerchantID, req.PaymentID)
}

func defaultCaptureMethod(m domain.CaptureMethod) domain.CaptureMethod {
	if m == "" {
		return domain.CaptureMethodAutomatic
	}
	return m
}
