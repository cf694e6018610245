package paymentsm

import (
	"context"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/pkg/apperror"
)

// GetDispute implements the read-only dispute lookup.
func (s *Service) GetDispute(ctx context.Context, merchantID, disputeID string) (*domain.Dispute, error) {
	d, err := s.disputes.Get(ctx, disputeID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("dispute")
		}
		return nil, apperror.InternalError(fmt.Errorf("get dispute: %w", err))
	}
	if d.MerchantID != merchantID {
		return nil, apperror.NotFound("dispute")
	}
	return d, nil
}

// ListDisputes implements the dashboard-facing dispute listing.
func (s *Service) ListDisputes(ctx context.Context, merchantID string) ([]domain.Dispute, error) {
	disputes, err := s.disputes.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list disputes: %w", err))
	}
	return disputes, nil
}

// Accept implements merchant-side dispute acceptance: the merchant
// concedes the chargeback rather than contesting it with evidence.
func (s *Service) Accept(ctx context.Context, merchantID, disputeID string) (*domain.Dispute, error) {
	d, err := s.GetDispute(ctx, merchantID, disputeID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.DisputeStatusOpened && d.Status != domain.DisputeStatusChallenged {
		return nil, apperror.InvalidStatusForOperation("DisputeAccept", string(d.Status))
	}
	if err := s.disputes.UpdateStatus(ctx, disputeID, domain.DisputeStatusAccepted); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update dispute status: %w", err))
	}
	d.Status = domain.DisputeStatusAccepted
	return d, nil
}

// SubmitEvidence implements dispute evidence submission: the merchant
// contests the chargeback. The evidence payload itself is opaque to the
// core (connector-specific fields) and is set as ConnectorMetadata on
// the returned dispute; only the status change to Challenged is
// persisted, not the evidence.
func (s *Service) SubmitEvidence(ctx context.Context, merchantID, disputeID string, evidence map[string]any) (*domain.Dispute, error) {
	d, err := s.GetDispute(ctx, merchantID, disputeID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.DisputeStatusOpened {
		return nil, apperror.InvalidStatusForOperation("DisputeSubmitEvidence", string(d.Status))
	}
	if err := s.disputes.UpdateStatus(ctx, disputeID, domain.DisputeStatusChallenged); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update dispute status: %w", err))
	}
	d.Status = domain.DisputeStatusChallenged
	d.ConnectorMetadata = evidence
	return d, nil
}
