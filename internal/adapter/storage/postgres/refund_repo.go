package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// RefundRepo implements ports.RefundRepository.
type RefundRepo struct {
	pool Pool
}

// NewRefundRepo creates a new RefundRepo.
func NewRefundRepo(pool Pool) *RefundRepo {
	return &RefundRepo{pool: pool}
}

var _ ports.RefundRepository = (*RefundRepo)(nil)

const refundColumns = `id, payment_id, attempt_id, merchant_id, merchant_connector_id, connector_transaction_id,
	amount, currency, status, reason, error_code, error_message, connector_metadata, created_at, modified_at`

func (r *RefundRepo) Create(ctx context.Context, tx pgx.Tx, ref *domain.Refund) error {
	meta, err := toJSON(ref.ConnectorMetadata)
	if err != nil {
		return fmt.Errorf("marshal refund connector metadata: %w", err)
	}
	query := `INSERT INTO refunds (` + refundColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`
	_, err = sqlExecer(tx, r.pool).Exec(ctx, query,
		ref.ID, ref.PaymentID, ref.AttemptID, ref.MerchantID, ref.MerchantConnectorID, ref.ConnectorTransactionID,
		ref.Amount, ref.Currency, ref.Status, ref.Reason, ref.ErrorCode, ref.ErrorMessage, meta,
		ref.CreatedAt, ref.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refund: %w", err)
	}
	return nil
}

func (r *RefundRepo) Get(ctx context.Context, id string) (*domain.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE id = $1`
	return scanRefund(r.pool.QueryRow(ctx, query, id))
}

func (r *RefundRepo) ListByAttempt(ctx context.Context, attemptID string) ([]domain.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE attempt_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, attemptID)
	if err != nil {
		return nil, fmt.Errorf("list refunds: %w", err)
	}
	defer rows.Close()

	var out []domain.Refund
	for rows.Next() {
		ref, err := scanRefundRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ref)
	}
	return out, rows.Err()
}

// SumActiveByAttempt totals the amount of refunds not yet known to have
// failed, the figure the state machine compares against amount_captured
// before allowing another partial refund.
func (r *RefundRepo) SumActiveByAttempt(ctx context.Context, attemptID string) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM refunds WHERE attempt_id = $1 AND status != $2`
	var sum int64
	err := r.pool.QueryRow(ctx, query, attemptID, domain.RefundStatusFailure).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum active refunds: %w", err)
	}
	return sum, nil
}

func scanRefund(row pgx.Row) (*domain.Refund, error) {
	return scanRefundRows(row)
}

func scanRefundRows(row rowScanner) (*domain.Refund, error) {
	ref := &domain.Refund{}
	var meta []byte
	err := row.Scan(
		&ref.ID, &ref.PaymentID, &ref.AttemptID, &ref.MerchantID, &ref.MerchantConnectorID, &ref.ConnectorTransactionID,
		&ref.Amount, &ref.Currency, &ref.Status, &ref.Reason, &ref.ErrorCode, &ref.ErrorMessage, &meta,
		&ref.CreatedAt, &ref.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan refund: %w", err)
	}
	if err := fromJSON(meta, &ref.ConnectorMetadata); err != nil {
		return nil, fmt.Errorf("unmarshal refund connector metadata: %w", err)
	}
	return ref, nil
}

func (r *RefundRepo) Update(ctx context.Context, tx pgx.Tx, id string, update domain.RefundUpdate) error {
	sets := []string{"modified_at = NOW()"}
	args := []any{}
	argn := 1

	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argn))
		args = append(args, val)
		argn++
	}

	if update.Status != nil {
		add("status", *update.Status)
	}
	if update.ConnectorTransactionID != nil {
		add("connector_transaction_id", *update.ConnectorTransactionID)
	}
	if update.ErrorCode != nil {
		add("error_code", *update.ErrorCode)
	}
	if update.ErrorMessage != nil {
		add("error_message", *update.ErrorMessage)
	}
	if update.ConnectorMetadata != nil {
		b, err := toJSON(update.ConnectorMetadata)
		if err != nil {
			return fmt.Errorf("marshal refund connector metadata: %w", err)
		}
		add("connector_metadata", b)
	}

	query := fmt.Sprintf("UPDATE refunds SET %s WHERE id = $%d", strings.Join(sets, ", "), argn)
	args = append(args, id)

	tag, err := sqlExecer(tx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update refund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refund not found: %s", id)
	}
	return nil
}
