package postgres

import (
	"context"
	"errors"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// PayoutRepo implements ports.PayoutRepository.
type PayoutRepo struct {
	pool Pool
}

// NewPayoutRepo creates a new PayoutRepo.
func NewPayoutRepo(pool Pool) *PayoutRepo {
	return &PayoutRepo{pool: pool}
}

var _ ports.PayoutRepository = (*PayoutRepo)(nil)

const payoutColumns = `id, merchant_id, customer_id, merchant_connector_id, connector_payout_id,
	amount, currency, status, error_code, error_message, connector_metadata, created_at, modified_at`

func (r *PayoutRepo) Create(ctx context.Context, p *domain.Payout) error {
	meta, err := toJSON(p.ConnectorMetadata)
	if err != nil {
		return fmt.Errorf("marshal payout connector metadata: %w", err)
	}
	query := `INSERT INTO payouts (` + payoutColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err = r.pool.Exec(ctx, query,
		p.ID, p.MerchantID, p.CustomerID, p.MerchantConnectorID, p.ConnectorPayoutID,
		p.Amount, p.Currency, p.Status, p.ErrorCode, p.ErrorMessage, meta, p.CreatedAt, p.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout: %w", err)
	}
	return nil
}

func (r *PayoutRepo) Get(ctx context.Context, id string) (*domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`
	p := &domain.Payout{}
	var meta []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.MerchantID, &p.CustomerID, &p.MerchantConnectorID, &p.ConnectorPayoutID,
		&p.Amount, &p.Currency, &p.Status, &p.ErrorCode, &p.ErrorMessage, &meta, &p.CreatedAt, &p.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("get payout: %w", err)
	}
	if err := fromJSON(meta, &p.ConnectorMetadata); err != nil {
		return nil, fmt.Errorf("unmarshal payout connector metadata: %w", err)
	}
	return p, nil
}

func (r *PayoutRepo) UpdateStatus(ctx context.Context, id string, status domain.PayoutStatus, connectorPayoutID *string) error {
	query := `UPDATE payouts SET status = $1, connector_payout_id = COALESCE($2, connector_payout_id), modified_at = NOW() WHERE id = $3`
	tag, err := r.pool.Exec(ctx, query, status, connectorPayoutID, id)
	if err != nil {
		return fmt.Errorf("update payout status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payout not found: %s", id)
	}
	return nil
}
