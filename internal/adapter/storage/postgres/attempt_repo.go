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

// AttemptRepo implements ports.PaymentAttemptRepository.
type AttemptRepo struct {
	pool Pool
}

// NewAttemptRepo creates a new AttemptRepo.
func NewAttemptRepo(pool Pool) *AttemptRepo {
	return &AttemptRepo{pool: pool}
}

var _ ports.PaymentAttemptRepository = (*AttemptRepo)(nil)

const attemptColumns = `attempt_id, payment_id, merchant_id, connector_id, connector_name, connector_transaction_id,
	status, amount, amount_captured, capture_sequence, currency, authentication_type, capture_method,
	payment_method, payment_method_id, mandate_id, preprocessing_step_id, redirection_data,
	error_code, error_message, error_reason, unified_code, unified_message, integrity_check,
	connector_metadata, created_at, modified_at`

func (r *AttemptRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.PaymentAttempt) error {
	pm, err := toJSON(a.PaymentMethod)
	if err != nil {
		return fmt.Errorf("marshal payment method snapshot: %w", err)
	}
	redirect, err := toJSON(a.RedirectionData)
	if err != nil {
		return fmt.Errorf("marshal redirection data: %w", err)
	}
	meta, err := toJSON(a.ConnectorMetadata)
	if err != nil {
		return fmt.Errorf("marshal connector metadata: %w", err)
	}

	query := `INSERT INTO payment_attempts (` + attemptColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)`
	_, err = sqlExecer(tx, r.pool).Exec(ctx, query,
		a.AttemptID, a.PaymentID, a.MerchantID, a.ConnectorID, a.ConnectorName, a.ConnectorTransactionID,
		a.Status, a.Amount, a.AmountCaptured, a.CaptureSequence, a.Currency, a.AuthenticationType, a.CaptureMethod,
		pm, a.PaymentMethodID, a.MandateID, a.PreprocessingStepID, redirect,
		a.ErrorCode, a.ErrorMessage, a.ErrorReason, a.UnifiedCode, a.UnifiedMessage, a.IntegrityCheck,
		meta, a.CreatedAt, a.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment attempt: %w", err)
	}
	return nil
}

func (r *AttemptRepo) Get(ctx context.Context, paymentID, attemptID string) (*domain.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + ` FROM payment_attempts WHERE payment_id = $1 AND attempt_id = $2`
	return scanAttempt(r.pool.QueryRow(ctx, query, paymentID, attemptID))
}

// GetActive returns the most recently created non-terminal-failure
// attempt for a payment, i.e. the candidate the state machine should
// keep operating on.
func (r *AttemptRepo) GetActive(ctx context.Context, paymentID string) (*domain.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + ` FROM payment_attempts
		WHERE payment_id = $1 AND status != 'failure' ORDER BY created_at DESC LIMIT 1`
	return scanAttempt(r.pool.QueryRow(ctx, query, paymentID))
}

func (r *AttemptRepo) ListByPayment(ctx context.Context, paymentID string) ([]domain.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + ` FROM payment_attempts WHERE payment_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list payment attempts: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentAttempt
	for rows.Next() {
		a, err := scanAttemptRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row pgx.Row) (*domain.PaymentAttempt, error) {
	return scanAttemptRows(row)
}

func scanAttemptRows(row rowScanner) (*domain.PaymentAttempt, error) {
	a := &domain.PaymentAttempt{}
	var pm, redirect, meta []byte
	err := row.Scan(
		&a.AttemptID, &a.PaymentID, &a.MerchantID, &a.ConnectorID, &a.ConnectorName, &a.ConnectorTransactionID,
		&a.Status, &a.Amount, &a.AmountCaptured, &a.CaptureSequence, &a.Currency, &a.AuthenticationType, &a.CaptureMethod,
		&pm, &a.PaymentMethodID, &a.MandateID, &a.PreprocessingStepID, &redirect,
		&a.ErrorCode, &a.ErrorMessage, &a.ErrorReason, &a.UnifiedCode, &a.UnifiedMessage, &a.IntegrityCheck,
		&meta, &a.CreatedAt, &a.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan payment attempt: %w", err)
	}
	if len(pm) > 0 {
		a.PaymentMethod = &domain.PaymentMethodSnapshot{}
		if err := fromJSON(pm, a.PaymentMethod); err != nil {
			return nil, fmt.Errorf("unmarshal payment method snapshot: %w", err)
		}
	}
	if err := fromJSON(redirect, &a.RedirectionData); err != nil {
		return nil, fmt.Errorf("unmarshal redirection data: %w", err)
	}
	if err := fromJSON(meta, &a.ConnectorMetadata); err != nil {
		return nil, fmt.Errorf("unmarshal connector metadata: %w", err)
	}
	return a, nil
}

// Update applies only the fields named in update, per the diff-only
// mutation invariant.
func (r *AttemptRepo) Update(ctx context.Context, tx pgx.Tx, attemptID string, update domain.AttemptUpdate) error {
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
	if update.AmountCaptured != nil {
		add("amount_captured", *update.AmountCaptured)
	}
	if update.CaptureSequence != nil {
		add("capture_sequence", *update.CaptureSequence)
	}
	if update.ErrorCode != nil {
		add("error_code", *update.ErrorCode)
	}
	if update.ErrorMessage != nil {
		add("error_message", *update.ErrorMessage)
	}
	if update.ErrorReason != nil {
		add("error_reason", *update.ErrorReason)
	}
	if update.UnifiedCode != nil {
		add("unified_code", *update.UnifiedCode)
	}
	if update.UnifiedMessage != nil {
		add("unified_message", *update.UnifiedMessage)
	}
	if update.RedirectionData != nil {
		b, err := toJSON(update.RedirectionData)
		if err != nil {
			return fmt.Errorf("marshal redirection data: %w", err)
		}
		add("redirection_data", b)
	}
	if update.IntegrityCheck != nil {
		add("integrity_check", *update.IntegrityCheck)
	}
	if update.PreprocessingStepID != nil {
		add("preprocessing_step_id", *update.PreprocessingStepID)
	}
	if update.MandateID != nil {
		add("mandate_id", *update.MandateID)
	}
	if update.ConnectorMetadata != nil {
		b, err := toJSON(update.ConnectorMetadata)
		if err != nil {
			return fmt.Errorf("marshal connector metadata: %w", err)
		}
		add("connector_metadata", b)
	}

	query := fmt.Sprintf("UPDATE payment_attempts SET %s WHERE attempt_id = $%d", strings.Join(sets, ", "), argn)
	args = append(args, attemptID)

	tag, err := sqlExecer(tx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment attempt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment attempt not found: %s", attemptID)
	}
	return nil
}
