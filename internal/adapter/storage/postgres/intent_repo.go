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

// IntentRepo implements ports.PaymentIntentRepository.
type IntentRepo struct {
	pool Pool
}

// NewIntentRepo creates a new IntentRepo.
func NewIntentRepo(pool Pool) *IntentRepo {
	return &IntentRepo{pool: pool}
}

var _ ports.PaymentIntentRepository = (*IntentRepo)(nil)

const intentColumns = `payment_id, merchant_id, profile_id, customer_id, amount, amount_capturable, amount_captured,
	currency, status, capture_method, setup_future_usage, active_attempt_id, client_secret,
	billing_address, shipping_address, description, return_url, metadata, mandate_id,
	error_code, error_message, created_at, modified_at`

func (r *IntentRepo) Create(ctx context.Context, tx pgx.Tx, intent *domain.PaymentIntent) error {
	billing, err := toJSON(intent.BillingAddress)
	if err != nil {
		return fmt.Errorf("marshal billing address: %w", err)
	}
	shipping, err := toJSON(intent.ShippingAddress)
	if err != nil {
		return fmt.Errorf("marshal shipping address: %w", err)
	}
	metadata, err := toJSON(intent.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `INSERT INTO payment_intents (` + intentColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)`
	_, err = sqlExecer(tx, r.pool).Exec(ctx, query,
		intent.PaymentID, intent.MerchantID, intent.ProfileID, intent.CustomerID, intent.Amount,
		intent.AmountCapturable, intent.AmountCaptured, intent.Currency, intent.Status, intent.CaptureMethod,
		intent.SetupFutureUsage, intent.ActiveAttemptID, intent.ClientSecret, billing,
		shipping, intent.Description, intent.ReturnURL, metadata, intent.MandateID,
		intent.ErrorCode, intent.ErrorMessage, intent.CreatedAt, intent.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment intent: %w", err)
	}
	return nil
}

// Upsert writes a full intent snapshot, replacing the stored row when
// it already exists. The drain worker uses it to land REDIS_KV-mirrored
// intents in Postgres out of band.
func (r *IntentRepo) Upsert(ctx context.Context, intent *domain.PaymentIntent) error {
	billing, err := toJSON(intent.BillingAddress)
	if err != nil {
		return fmt.Errorf("marshal billing address: %w", err)
	}
	shipping, err := toJSON(intent.ShippingAddress)
	if err != nil {
		return fmt.Errorf("marshal shipping address: %w", err)
	}
	metadata, err := toJSON(intent.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `INSERT INTO payment_intents (` + intentColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		ON CONFLICT (payment_id) DO UPDATE SET
			amount = EXCLUDED.amount, amount_capturable = EXCLUDED.amount_capturable,
			amount_captured = EXCLUDED.amount_captured, currency = EXCLUDED.currency,
			status = EXCLUDED.status, capture_method = EXCLUDED.capture_method,
			setup_future_usage = EXCLUDED.setup_future_usage, active_attempt_id = EXCLUDED.active_attempt_id,
			billing_address = EXCLUDED.billing_address, shipping_address = EXCLUDED.shipping_address,
			description = EXCLUDED.description, return_url = EXCLUDED.return_url,
			metadata = EXCLUDED.metadata, mandate_id = EXCLUDED.mandate_id,
			error_code = EXCLUDED.error_code, error_message = EXCLUDED.error_message,
			modified_at = EXCLUDED.modified_at`
	_, err = r.pool.Exec(ctx, query,
		intent.PaymentID, intent.MerchantID, intent.ProfileID, intent.CustomerID, intent.Amount,
		intent.AmountCapturable, intent.AmountCaptured, intent.Currency, intent.Status, intent.CaptureMethod,
		intent.SetupFutureUsage, intent.ActiveAttemptID, intent.ClientSecret, billing,
		shipping, intent.Description, intent.ReturnURL, metadata, intent.MandateID,
		intent.ErrorCode, intent.ErrorMessage, intent.CreatedAt, intent.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert payment intent: %w", err)
	}
	return nil
}

func (r *IntentRepo) Get(ctx context.Context, merchantID, paymentID string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE merchant_id = $1 AND payment_id = $2`
	return scanIntent(r.pool.QueryRow(ctx, query, merchantID, paymentID))
}

// GetForUpdate locks the intent row within tx, the pgx equivalent of a
// pessimistic SELECT ... FOR UPDATE, so concurrent operations on the
// same payment serialize at the database.
func (r *IntentRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, merchantID, paymentID string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE merchant_id = $1 AND payment_id = $2 FOR UPDATE`
	return scanIntent(tx.QueryRow(ctx, query, merchantID, paymentID))
}

func scanIntent(row pgx.Row) (*domain.PaymentIntent, error) {
	intent := &domain.PaymentIntent{}
	var billing, shipping, metadata []byte
	err := row.Scan(
		&intent.PaymentID, &intent.MerchantID, &intent.ProfileID, &intent.CustomerID, &intent.Amount,
		&intent.AmountCapturable, &intent.AmountCaptured, &intent.Currency, &intent.Status, &intent.CaptureMethod,
		&intent.SetupFutureUsage, &intent.ActiveAttemptID, &intent.ClientSecret, &billing,
		&shipping, &intent.Description, &intent.ReturnURL, &metadata, &intent.MandateID,
		&intent.ErrorCode, &intent.ErrorMessage, &intent.CreatedAt, &intent.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan payment intent: %w", err)
	}
	if len(billing) > 0 {
		intent.BillingAddress = &domain.Address{}
		if err := fromJSON(billing, intent.BillingAddress); err != nil {
			return nil, fmt.Errorf("unmarshal billing address: %w", err)
		}
	}
	if len(shipping) > 0 {
		intent.ShippingAddress = &domain.Address{}
		if err := fromJSON(shipping, intent.ShippingAddress); err != nil {
			return nil, fmt.Errorf("unmarshal shipping address: %w", err)
		}
	}
	if err := fromJSON(metadata, &intent.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	return intent, nil
}

// Update applies only the fields named in update, per the diff-only
// mutation invariant: the statement names a column only when its
// pointer is non-nil.
func (r *IntentRepo) Update(ctx context.Context, tx pgx.Tx, merchantID, paymentID string, update domain.IntentUpdate) error {
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
	if update.ActiveAttemptID != nil {
		add("active_attempt_id", *update.ActiveAttemptID)
	}
	if update.AmountCapturable != nil {
		add("amount_capturable", *update.AmountCapturable)
	}
	if update.AmountCaptured != nil {
		add("amount_captured", *update.AmountCaptured)
	}
	if update.MandateID != nil {
		add("mandate_id", *update.MandateID)
	}
	if update.ErrorCode != nil {
		add("error_code", *update.ErrorCode)
	}
	if update.ErrorMessage != nil {
		add("error_message", *update.ErrorMessage)
	}
	if update.Amount != nil {
		add("amount", *update.Amount)
	}
	if update.Currency != nil {
		add("currency", *update.Currency)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Metadata != nil {
		metadata, err := toJSON(update.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		add("metadata", metadata)
	}
	if update.BillingAddress != nil {
		billing, err := toJSON(update.BillingAddress)
		if err != nil {
			return fmt.Errorf("marshal billing address: %w", err)
		}
		add("billing_address", billing)
	}
	if update.ShippingAddress != nil {
		shipping, err := toJSON(update.ShippingAddress)
		if err != nil {
			return fmt.Errorf("marshal shipping address: %w", err)
		}
		add("shipping_address", shipping)
	}

	query := fmt.Sprintf("UPDATE payment_intents SET %s WHERE merchant_id = $%d AND payment_id = $%d",
		strings.Join(sets, ", "), argn, argn+1)
	args = append(args, merchantID, paymentID)

	tag, err := sqlExecer(tx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment intent not found: %s", paymentID)
	}
	return nil
}
