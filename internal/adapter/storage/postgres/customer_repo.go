package postgres

import (
	"context"
	"errors"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// CustomerRepo implements ports.CustomerRepository, covering Customer,
// PaymentMethod and Mandate rows.
type CustomerRepo struct {
	pool Pool
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(pool Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

var _ ports.CustomerRepository = (*CustomerRepo)(nil)

func (r *CustomerRepo) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	meta, err := toJSON(c.Metadata)
	if err != nil {
		return fmt.Errorf("marshal customer metadata: %w", err)
	}
	query := `INSERT INTO customers (id, merchant_id, name, email, phone, metadata, created_at, modified_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err = r.pool.Exec(ctx, query, c.ID, c.MerchantID, c.Name, c.Email, c.Phone, meta, c.CreatedAt, c.ModifiedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetCustomer(ctx context.Context, merchantID, customerID string) (*domain.Customer, error) {
	query := `SELECT id, merchant_id, name, email, phone, metadata, created_at, modified_at
		FROM customers WHERE merchant_id = $1 AND id = $2`
	c := &domain.Customer{}
	var meta []byte
	err := r.pool.QueryRow(ctx, query, merchantID, customerID).Scan(
		&c.ID, &c.MerchantID, &c.Name, &c.Email, &c.Phone, &meta, &c.CreatedAt, &c.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if err := fromJSON(meta, &c.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal customer metadata: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) CreatePaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error {
	query := `INSERT INTO payment_methods
		(id, merchant_id, customer_id, type, token, last4, card_network, expiry_month, expiry_year, disabled, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.pool.Exec(ctx, query,
		pm.ID, pm.MerchantID, pm.CustomerID, pm.Type, pm.Token, pm.Last4, pm.CardNetwork,
		pm.ExpiryMonth, pm.ExpiryYear, pm.Disabled, pm.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetPaymentMethod(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	query := `SELECT id, merchant_id, customer_id, type, token, last4, card_network, expiry_month, expiry_year, disabled, created_at
		FROM payment_methods WHERE id = $1`
	return scanPaymentMethod(r.pool.QueryRow(ctx, query, id))
}

func (r *CustomerRepo) ListPaymentMethods(ctx context.Context, customerID string) ([]domain.PaymentMethod, error) {
	query := `SELECT id, merchant_id, customer_id, type, token, last4, card_network, expiry_month, expiry_year, disabled, created_at
		FROM payment_methods WHERE customer_id = $1 AND disabled = false ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentMethod
	for rows.Next() {
		pm := domain.PaymentMethod{}
		if err := rows.Scan(
			&pm.ID, &pm.MerchantID, &pm.CustomerID, &pm.Type, &pm.Token, &pm.Last4, &pm.CardNetwork,
			&pm.ExpiryMonth, &pm.ExpiryYear, &pm.Disabled, &pm.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		out = append(out, pm)
	}
	return out, rows.Err()
}

func (r *CustomerRepo) DisablePaymentMethod(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE payment_methods SET disabled = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("disable payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment method not found: %s", id)
	}
	return nil
}

func scanPaymentMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	pm := &domain.PaymentMethod{}
	err := row.Scan(
		&pm.ID, &pm.MerchantID, &pm.CustomerID, &pm.Type, &pm.Token, &pm.Last4, &pm.CardNetwork,
		&pm.ExpiryMonth, &pm.ExpiryYear, &pm.Disabled, &pm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan payment method: %w", err)
	}
	return pm, nil
}

const mandateColumns = `id, merchant_id, customer_id, payment_method_id, connector_mandate_id, connector_id,
	status, mandate_type, max_amount, currency, original_payment_id, created_at, modified_at`

func (r *CustomerRepo) CreateMandate(ctx context.Context, m *domain.Mandate) error {
	query := `INSERT INTO mandates (` + mandateColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.MerchantID, m.CustomerID, m.PaymentMethodID, m.ConnectorMandateID, m.ConnectorID,
		m.Status, m.MandateType, m.MaxAmount, m.Currency, m.OriginalPaymentID, m.CreatedAt, m.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mandate: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetMandate(ctx context.Context, id string) (*domain.Mandate, error) {
	query := `SELECT ` + mandateColumns + ` FROM mandates WHERE id = $1`
	return scanMandate(r.pool.QueryRow(ctx, query, id))
}

func (r *CustomerRepo) GetMandateByConnectorID(ctx context.Context, connectorMandateID string) (*domain.Mandate, error) {
	query := `SELECT ` + mandateColumns + ` FROM mandates WHERE connector_mandate_id = $1`
	return scanMandate(r.pool.QueryRow(ctx, query, connectorMandateID))
}

func (r *CustomerRepo) UpdateMandateStatus(ctx context.Context, id string, status domain.MandateStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE mandates SET status = $1, modified_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update mandate status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mandate not found: %s", id)
	}
	return nil
}

func scanMandate(row pgx.Row) (*domain.Mandate, error) {
	m := &domain.Mandate{}
	err := row.Scan(
		&m.ID, &m.MerchantID, &m.CustomerID, &m.PaymentMethodID, &m.ConnectorMandateID, &m.ConnectorID,
		&m.Status, &m.MandateType, &m.MaxAmount, &m.Currency, &m.OriginalPaymentID, &m.CreatedAt, &m.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan mandate: %w", err)
	}
	return m, nil
}
