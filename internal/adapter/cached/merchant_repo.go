// Package cached decorates the Postgres merchant/keystore repositories
// with the process-local + pub/sub-invalidated pkg/cache.Cache, for the
// read paths on the hot request prefix: profile_id,
// <profile_name>_<merchant_id>, merchant_key_store_<id>, and
// connector-account lookups. Caches are populated on miss and evicted
// (not refreshed) on write, matching the invalidate-on-write posture
// elsewhere in the storage layer.
//
// Entries are gob-encoded rather than JSON: several domain fields carry
// `json:"-"` so they never leak into logs or API responses, but a
// cache round trip is an internal process boundary, not a wire format,
// and must preserve every field (including CredentialsEnc/WrappedKey)
// or every cache hit would silently serve a half-populated row.
package cached

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
)

const defaultTTL = 10 * time.Minute

// Store is the subset of *cache.Cache this package needs, narrowed to
// an interface so tests can substitute a fake.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// MerchantRepo wraps a ports.MerchantRepository, caching profile and
// connector-account reads.
type MerchantRepo struct {
	ports.MerchantRepository
	cache Store
}

// NewMerchantRepo decorates inner with cache-aside reads for
// GetProfileByID, GetConnectorAccountByID and GetMerchantByID.
func NewMerchantRepo(inner ports.MerchantRepository, c Store) *MerchantRepo {
	return &MerchantRepo{MerchantRepository: inner, cache: c}
}

var _ ports.MerchantRepository = (*MerchantRepo)(nil)

func profileKey(id string) string          { return "profile_id_" + id }
func connectorAccountKey(id string) string { return "mca_id_" + id }
func merchantKey(id string) string         { return "merchant_id_" + id }

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("cache encode: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// GetProfileByID reads through the cache under key "profile_id_<id>".
func (r *MerchantRepo) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	key := profileKey(id)
	if raw, ok := r.cache.Get(ctx, key); ok {
		var p domain.Profile
		if err := decode(raw, &p); err == nil {
			return &p, nil
		}
	}
	p, err := r.MerchantRepository.GetProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw, err := encode(p); err == nil {
		_ = r.cache.Set(ctx, key, raw, defaultTTL)
	}
	return p, nil
}

// UpdateProfile writes through first and evicts the profile's cache
// entry afterwards, so a concurrent reader cannot re-populate the cache
// with the pre-write row after the eviction.
func (r *MerchantRepo) UpdateProfile(ctx context.Context, p *domain.Profile) error {
	if err := r.MerchantRepository.UpdateProfile(ctx, p); err != nil {
		return err
	}
	return r.cache.Invalidate(ctx, profileKey(p.ID))
}

// GetConnectorAccountByID reads through the cache under key "mca_id_<id>".
func (r *MerchantRepo) GetConnectorAccountByID(ctx context.Context, id string) (*domain.MerchantConnectorAccount, error) {
	key := connectorAccountKey(id)
	if raw, ok := r.cache.Get(ctx, key); ok {
		var mca domain.MerchantConnectorAccount
		if err := decode(raw, &mca); err == nil {
			return &mca, nil
		}
	}
	mca, err := r.MerchantRepository.GetConnectorAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw, err := encode(mca); err == nil {
		_ = r.cache.Set(ctx, key, raw, defaultTTL)
	}
	return mca, nil
}

// GetMerchantByID reads through the cache under key "merchant_id_<id>".
func (r *MerchantRepo) GetMerchantByID(ctx context.Context, id string) (*domain.MerchantAccount, error) {
	key := merchantKey(id)
	if raw, ok := r.cache.Get(ctx, key); ok {
		var m domain.MerchantAccount
		if err := decode(raw, &m); err == nil {
			return &m, nil
		}
	}
	m, err := r.MerchantRepository.GetMerchantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw, err := encode(m); err == nil {
		_ = r.cache.Set(ctx, key, raw, defaultTTL)
	}
	return m, nil
}

// UpdateMerchant writes through first and then evicts the merchant's
// cache entry.
func (r *MerchantRepo) UpdateMerchant(ctx context.Context, id string, update ports.MerchantUpdate) error {
	if err := r.MerchantRepository.UpdateMerchant(ctx, id, update); err != nil {
		return err
	}
	return r.cache.Invalidate(ctx, merchantKey(id))
}

// KeyStoreRepo wraps a ports.KeyStoreRepository, caching reads under the
// "merchant_key_store_<id>" key.
type KeyStoreRepo struct {
	ports.KeyStoreRepository
	cache Store
}

// NewKeyStoreRepo decorates inner with a cache-aside Get.
func NewKeyStoreRepo(inner ports.KeyStoreRepository, c Store) *KeyStoreRepo {
	return &KeyStoreRepo{KeyStoreRepository: inner, cache: c}
}

var _ ports.KeyStoreRepository = (*KeyStoreRepo)(nil)

func keyStoreKey(merchantID string) string { return "merchant_key_store_" + merchantID }

func (r *KeyStoreRepo) Get(ctx context.Context, merchantID string) (*domain.MerchantKeyStore, error) {
	key := keyStoreKey(merchantID)
	if raw, ok := r.cache.Get(ctx, key); ok {
		var ks domain.MerchantKeyStore
		if err := decode(raw, &ks); err == nil {
			return &ks, nil
		}
	}
	ks, err := r.KeyStoreRepository.Get(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if raw, err := encode(ks); err == nil {
		_ = r.cache.Set(ctx, key, raw, defaultTTL)
	}
	return ks, nil
}

// Create persists a fresh key store row and evicts any cached entry for
// the merchant; the next Get re-populates the cache from the new row.
func (r *KeyStoreRepo) Create(ctx context.Context, ks *domain.MerchantKeyStore) error {
	if err := r.KeyStoreRepository.Create(ctx, ks); err != nil {
		return err
	}
	return r.cache.Invalidate(ctx, keyStoreKey(ks.MerchantID))
}
