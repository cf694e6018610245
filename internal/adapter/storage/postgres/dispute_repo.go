package postgres

import (
	"context"
	"errors"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// DisputeRepo implements ports.DisputeRepository.
type DisputeRepo struct {
	pool Pool
}

// NewDisputeRepo creates a new DisputeRepo.
func NewDisputeRepo(pool Pool) *DisputeRepo {
	return &DisputeRepo{pool: pool}
}

var _ ports.DisputeRepository = (*DisputeRepo)(nil)

const disputeColumns = `id, payment_id, attempt_id, merchant_id, merchant_connector_id, connector_dispute_id,
	amount, currency, status, reason, evidence_submitted_at, connector_metadata, created_at, modified_at`

func (r *DisputeRepo) Create(ctx context.Context, d *domain.Dispute) error {
	meta, err := toJSON(d.ConnectorMetadata)
	if err != nil {
		return fmt.Errorf("marshal dispute connector metadata: %w", err)
	}
	query := `INSERT INTO disputes (` + disputeColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`
	_, err = r.pool.Exec(ctx, query,
		d.ID, d.PaymentID, d.AttemptID, d.MerchantID, d.MerchantConnectorID, d.ConnectorDisputeID,
		d.Amount, d.Currency, d.Status, d.Reason, d.EvidenceSubmittedAt, meta, d.CreatedAt, d.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dispute: %w", err)
	}
	return nil
}

func (r *DisputeRepo) Get(ctx context.Context, id string) (*domain.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE id = $1`
	return scanDispute(r.pool.QueryRow(ctx, query, id))
}

func (r *DisputeRepo) GetByConnectorDisputeID(ctx context.Context, connectorDisputeID string) (*domain.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE connector_dispute_id = $1`
	return scanDispute(r.pool.QueryRow(ctx, query, connectorDisputeID))
}

func (r *DisputeRepo) ListByMerchant(ctx context.Context, merchantID string) ([]domain.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE merchant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list disputes: %w", err)
	}
	defer rows.Close()

	var out []domain.Dispute
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *DisputeRepo) UpdateStatus(ctx context.Context, id string, status domain.DisputeStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE disputes SET status = $1, modified_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update dispute status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dispute not found: %s", id)
	}
	return nil
}

func scanDispute(row rowScanner) (*domain.Dispute, error) {
	d := &domain.Dispute{}
	var meta []byte
	err := row.Scan(
		&d.ID, &d.PaymentID, &d.AttemptID, &d.MerchantID, &d.MerchantConnectorID, &d.ConnectorDisputeID,
		&d.Amount, &d.Currency, &d.Status, &d.Reason, &d.EvidenceSubmittedAt, &meta, &d.CreatedAt, &d.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan dispute: %w", err)
	}
	if err := fromJSON(meta, &d.ConnectorMetadata); err != nil {
		return nil, fmt.Errorf("unmarshal dispute connector metadata: %w", err)
	}
	return d, nil
}
