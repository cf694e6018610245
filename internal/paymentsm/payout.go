package paymentsm

import (
	"context"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
)

// CreatePayout implements the payout subflow's creation operation: an
// outbound disbursement sharing the connector dispatch layer and
// process tracker with payments, but initiated async since payout
// connectors commonly settle out of band.
func (s *Service) CreatePayout(ctx context.Context, req ports.CreatePayoutRequest) (*domain.Payout, error) {
	mca, err := s.merchants.GetConnectorAccountByID(ctx, req.MerchantConnectorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load connector account: %w", err))
	}
	if mca.MerchantID != req.MerchantID {
		return nil, apperror.NotFound("merchant connector account")
	}
	if mca.Disabled {
		return nil, apperror.PreconditionFailed("PAYOUT_000", "connector account is disabled")
	}

	payout := &domain.Payout{
		ID:                  newPayoutID(),
		MerchantID:          req.MerchantID,
		CustomerID:          req.CustomerID,
		MerchantConnectorID: req.MerchantConnectorID,
		Amount:              req.Amount,
		Currency:            req.Currency,
		Status:              domain.PayoutStatusInitiated,
	}
	if err := s.payouts.Create(ctx, payout); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payout: %w", err))
	}

	s.scheduleSync(ctx, "payout_sync", req.MerchantID, payout.ID, mca.ConnectorName)
	s.log.Info().Str("payout_id", payout.ID).Str("connector", mca.ConnectorName).
		Int64("amount", req.Amount).Msg("payout initiated")
	return payout, nil
}

// GetPayout implements the read-only payout lookup.
func (s *Service) GetPayout(ctx context.Context, merchantID, payoutID string) (*domain.Payout, error) {
	p, err := s.payouts.Get(ctx, payoutID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("payout")
		}
		return nil, apperror.InternalError(fmt.Errorf("get payout: %w", err))
	}
	if p.MerchantID != merchantID {
		return nil, apperror.NotFound("payout")
	}
	return p, nil
}
