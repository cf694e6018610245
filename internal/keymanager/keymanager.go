// Package keymanager implements envelope encryption of merchant-owned
// data: a random per-merchant data-encryption key is generated once,
// wrapped under a key derived from the tenant master key via HKDF, and
// persisted in MerchantKeyStore. Every Encrypt/Decrypt call unwraps the
// data key and performs AES-256-GCM directly against it, so the master
// key itself never touches merchant plaintext.
package keymanager

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"

	"golang.org/x/crypto/hkdf"
)

const dataKeySize = 32

// Service implements ports.KeyManagerService.
type Service struct {
	masterKey []byte
	store     ports.KeyStoreRepository
}

// New builds a Service from a 64-character hex-encoded master key.
func New(hexMasterKey string, store ports.KeyStoreRepository) (*Service, error) {
	key, err := hex.DecodeString(hexMasterKey)
	if err != nil {
		return nil, fmt.Errorf("decoding master key: %w", err)
	}
	if len(key) != dataKeySize {
		return nil, fmt.Errorf("master key must be %d bytes, got %d", dataKeySize, len(key))
	}
	return &Service{masterKey: key, store: store}, nil
}

var _ ports.KeyManagerService = (*Service)(nil)

// CreateDataKey generates a fresh random data-encryption key for a
// merchant, wraps it under a key derived from the master key via HKDF
// keyed on the merchant ID, and persists the wrapped form.
func (s *Service) CreateDataKey(ctx context.Context, merchantID string) error {
	dataKey := make([]byte, dataKeySize)
	if _, err := io.ReadFull(rand.Reader, dataKey); err != nil {
		return apperror.InternalError(fmt.Errorf("generating data key: %w", err))
	}

	wrapped, err := s.wrap(merchantID, dataKey)
	if err != nil {
		return apperror.EncryptionFailure(err)
	}

	if err := s.store.Create(ctx, &domain.MerchantKeyStore{
		MerchantID: merchantID,
		WrappedKey: wrapped,
	}); err != nil {
		return apperror.InternalError(fmt.Errorf("persisting key store: %w", err))
	}
	return nil
}

// Encrypt envelope-encrypts plaintext under the merchant's data key and
// returns a hex-encoded nonce-prefixed ciphertext.
func (s *Service) Encrypt(ctx context.Context, merchantID string, plaintext []byte) (string, error) {
	dataKey, err := s.dataKey(ctx, merchantID)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(dataKey)
	if err != nil {
		return "", apperror.EncryptionFailure(err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", apperror.EncryptionFailure(fmt.Errorf("generating nonce: %w", err))
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt.
func (s *Service) Decrypt(ctx context.Context, merchantID string, ciphertextHex string) ([]byte, error) {
	dataKey, err := s.dataKey(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, apperror.EncryptionFailure(fmt.Errorf("decoding ciphertext: %w", err))
	}

	gcm, err := newGCM(dataKey)
	if err != nil {
		return nil, apperror.EncryptionFailure(err)
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, apperror.EncryptionFailure(fmt.Errorf("ciphertext too short"))
	}
	nonce, body := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, apperror.EncryptionFailure(fmt.Errorf("decrypting: %w", err))
	}
	return plaintext, nil
}

func (s *Service) dataKey(ctx context.Context, merchantID string) ([]byte, error) {
	ks, err := s.store.Get(ctx, merchantID)
	if err != nil {
		return nil, apperror.NotFound("merchant key store")
	}
	dataKey, err := s.unwrap(merchantID, ks.WrappedKey)
	if err != nil {
		return nil, apperror.EncryptionFailure(err)
	}
	return dataKey, nil
}

// wrapKey derives a per-merchant wrapping key from the master key via
// HKDF, using the merchant ID as salt so the same master key never
// produces the same wrapping key for two merchants.
func (s *Service) wrapKey(merchantID string) ([]byte, error) {
	reader := hkdf.New(sha256.New, s.masterKey, []byte(merchantID), []byte("paymentcore/merchant-data-key"))
	wrapKey := make([]byte, dataKeySize)
	if _, err := io.ReadFull(reader, wrapKey); err != nil {
		return nil, fmt.Errorf("deriving wrap key: %w", err)
	}
	return wrapKey, nil
}

func (s *Service) wrap(merchantID string, dataKey []byte) ([]byte, error) {
	wrapKey, err := s.wrapKey(merchantID)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(wrapKey)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating wrap nonce: %w", err)
	}
	return gcm.Seal(nonce, nonce, dataKey, nil), nil
}

func (s *Service) unwrap(merchantID string, wrapped []byte) ([]byte, error) {
	wrapKey, err := s.wrapKey(merchantID)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(wrapKey)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(wrapped) < nonceSize {
		return nil, fmt.Errorf("wrapped key too short")
	}
	nonce, body := wrapped[:nonceSize], wrapped[nonceSize:]
	return gcm.Open(nil, nonce, body, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
