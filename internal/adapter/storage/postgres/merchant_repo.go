package postgres

import (
	"context"
	"errors"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

var _ ports.MerchantRepository = (*MerchantRepo)(nil)

func (r *MerchantRepo) CreateMerchant(ctx context.Context, m *domain.MerchantAccount) error {
	query := `INSERT INTO merchant_accounts
		(id, tenant_id, name, publishable_key, api_key_hash, admin_key_hash, storage_scheme,
		 webhook_url, webhook_secret_enc, webhook_signature_algorithm, is_active, created_at, modified_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.TenantID, m.Name, m.PublishableKey, m.APIKeyHash, m.AdminKeyHash, m.StorageScheme,
		m.WebhookURL, m.WebhookSecretEnc, m.WebhookSigAlgo, m.IsActive, m.CreatedAt, m.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant account: %w", err)
	}
	return nil
}

func (r *MerchantRepo) GetMerchantByID(ctx context.Context, id string) (*domain.MerchantAccount, error) {
	query := `SELECT id, tenant_id, name, publishable_key, api_key_hash, admin_key_hash, storage_scheme,
		webhook_url, webhook_secret_enc, webhook_signature_algorithm, is_active, created_at, modified_at
		FROM merchant_accounts WHERE id = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, id))
}

func (r *MerchantRepo) GetMerchantByPublishableKey(ctx context.Context, key string) (*domain.MerchantAccount, error) {
	query := `SELECT id, tenant_id, name, publishable_key, api_key_hash, admin_key_hash, storage_scheme,
		webhook_url, webhook_secret_enc, webhook_signature_algorithm, is_active, created_at, modified_at
		FROM merchant_accounts WHERE publishable_key = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, key))
}

func (r *MerchantRepo) GetMerchantByAPIKeyHash(ctx context.Context, hash string) (*domain.MerchantAccount, error) {
	query := `SELECT id, tenant_id, name, publishable_key, api_key_hash, admin_key_hash, storage_scheme,
		webhook_url, webhook_secret_enc, webhook_signature_algorithm, is_active, created_at, modified_at
		FROM merchant_accounts WHERE api_key_hash = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, hash))
}

func (r *MerchantRepo) GetMerchantByAdminKeyHash(ctx context.Context, hash string) (*domain.MerchantAccount, error) {
	query := `SELECT id, tenant_id, name, publishable_key, api_key_hash, admin_key_hash, storage_scheme,
		webhook_url, webhook_secret_enc, webhook_signature_algorithm, is_active, created_at, modified_at
		FROM merchant_accounts WHERE admin_key_hash = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, hash))
}

func (r *MerchantRepo) scanMerchant(row pgx.Row) (*domain.MerchantAccount, error) {
	m := &domain.MerchantAccount{}
	err := row.Scan(
		&m.ID, &m.TenantID, &m.Name, &m.PublishableKey, &m.APIKeyHash, &m.AdminKeyHash, &m.StorageScheme,
		&m.WebhookURL, &m.WebhookSecretEnc, &m.WebhookSigAlgo, &m.IsActive, &m.CreatedAt, &m.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan merchant account: %w", err)
	}
	return m, nil
}

func (r *MerchantRepo) UpdateMerchant(ctx context.Context, id string, update ports.MerchantUpdate) error {
	query := `UPDATE merchant_accounts SET
		webhook_url = COALESCE($1, webhook_url),
		is_active = COALESCE($2, is_active),
		storage_scheme = COALESCE($3, storage_scheme),
		modified_at = NOW()
		WHERE id = $4`
	tag, err := r.pool.Exec(ctx, query, update.WebhookURL, update.IsActive, update.StorageScheme, id)
	if err != nil {
		return fmt.Errorf("update merchant account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant account not found: %s", id)
	}
	return nil
}

func (r *MerchantRepo) CreateProfile(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, merchant_id, name, routing_algorithm_id, default_connector_id, return_url, created_at, modified_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.pool.Exec(ctx, query, p.ID, p.MerchantID, p.Name, p.RoutingAlgorithmID, p.DefaultConnectorID, p.ReturnURL, p.CreatedAt, p.ModifiedAt)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *MerchantRepo) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, merchant_id, name, routing_algorithm_id, default_connector_id, return_url, created_at, modified_at
		FROM profiles WHERE id = $1`
	p := &domain.Profile{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.MerchantID, &p.Name, &p.RoutingAlgorithmID, &p.DefaultConnectorID, &p.ReturnURL, &p.CreatedAt, &p.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (r *MerchantRepo) ListProfilesByMerchant(ctx context.Context, merchantID string) ([]domain.Profile, error) {
	query := `SELECT id, merchant_id, name, routing_algorithm_id, default_connector_id, return_url, created_at, modified_at
		FROM profiles WHERE merchant_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.MerchantID, &p.Name, &p.RoutingAlgorithmID, &p.DefaultConnectorID, &p.ReturnURL, &p.CreatedAt, &p.ModifiedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *MerchantRepo) UpdateProfile(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET routing_algorithm_id = $1, default_connector_id = $2, return_url = $3, modified_at = $4
		WHERE id = $5`
	tag, err := r.pool.Exec(ctx, query, p.RoutingAlgorithmID, p.DefaultConnectorID, p.ReturnURL, p.ModifiedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", p.ID)
	}
	return nil
}

func (r *MerchantRepo) CreateConnectorAccount(ctx context.Context, mca *domain.MerchantConnectorAccount) error {
	query := `INSERT INTO merchant_connector_accounts
		(id, profile_id, merchant_id, connector_name, connector_label, auth_type, credentials_enc, use_ucs, disabled, test_mode, created_at, modified_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err := r.pool.Exec(ctx, query,
		mca.ID, mca.ProfileID, mca.MerchantID, mca.ConnectorName, mca.ConnectorLabel, mca.AuthType,
		mca.CredentialsEnc, mca.UseUCS, mca.Disabled, mca.TestMode, mca.CreatedAt, mca.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant connector account: %w", err)
	}
	return nil
}

func (r *MerchantRepo) GetConnectorAccountsByProfile(ctx context.Context, profileID string) ([]domain.MerchantConnectorAccount, error) {
	query := `SELECT id, profile_id, merchant_id, connector_name, connector_label, auth_type, credentials_enc, use_ucs, disabled, test_mode, created_at, modified_at
		FROM merchant_connector_accounts WHERE profile_id = $1 AND disabled = false`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("list merchant connector accounts: %w", err)
	}
	defer rows.Close()

	var out []domain.MerchantConnectorAccount
	for rows.Next() {
		var mca domain.MerchantConnectorAccount
		if err := rows.Scan(
			&mca.ID, &mca.ProfileID, &mca.MerchantID, &mca.ConnectorName, &mca.ConnectorLabel, &mca.AuthType,
			&mca.CredentialsEnc, &mca.UseUCS, &mca.Disabled, &mca.TestMode, &mca.CreatedAt, &mca.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("scan merchant connector account: %w", err)
		}
		out = append(out, mca)
	}
	return out, rows.Err()
}

func (r *MerchantRepo) GetConnectorAccountByID(ctx context.Context, id string) (*domain.MerchantConnectorAccount, error) {
	query := `SELECT id, profile_id, merchant_id, connector_name, connector_label, auth_type, credentials_enc, use_ucs, disabled, test_mode, created_at, modified_at
		FROM merchant_connector_accounts WHERE id = $1`
	mca := &domain.MerchantConnectorAccount{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&mca.ID, &mca.ProfileID, &mca.MerchantID, &mca.ConnectorName, &mca.ConnectorLabel, &mca.AuthType,
		&mca.CredentialsEnc, &mca.UseUCS, &mca.Disabled, &mca.TestMode, &mca.CreatedAt, &mca.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("get merchant connector account: %w", err)
	}
	return mca, nil
}
