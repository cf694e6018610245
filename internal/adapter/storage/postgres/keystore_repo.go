package postgres

import (
	"context"
	"errors"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// KeyStoreRepo implements ports.KeyStoreRepository.
type KeyStoreRepo struct {
	pool Pool
}

// NewKeyStoreRepo creates a new KeyStoreRepo.
func NewKeyStoreRepo(pool Pool) *KeyStoreRepo {
	return &KeyStoreRepo{pool: pool}
}

var _ ports.KeyStoreRepository = (*KeyStoreRepo)(nil)

func (r *KeyStoreRepo) Create(ctx context.Context, ks *domain.MerchantKeyStore) error {
	query := `INSERT INTO merchant_key_stores (merchant_id, wrapped_key, created_at) VALUES ($1,$2,$3)`
	_, err := r.pool.Exec(ctx, query, ks.MerchantID, ks.WrappedKey, ks.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert merchant key store: %w", err)
	}
	return nil
}

func (r *KeyStoreRepo) Get(ctx context.Context, merchantID string) (*domain.MerchantKeyStore, error) {
	query := `SELECT merchant_id, wrapped_key, created_at FROM merchant_key_stores WHERE merchant_id = $1`
	ks := &domain.MerchantKeyStore{}
	err := r.pool.QueryRow(ctx, query, merchantID).Scan(&ks.MerchantID, &ks.WrappedKey, &ks.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("get merchant key store: %w", err)
	}
	return ks, nil
}
