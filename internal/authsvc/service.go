// Package authsvc implements ports.AuthService, resolving each of the
// four credential variants — API key, publishable
// key + client secret, dashboard JWT, and admin key — to a common
// ports.AuthContext the HTTP layer's middleware attaches to the
// request.
package authsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
)

// Service implements ports.AuthService.
type Service struct {
	merchants ports.MerchantRepository
	intents   ports.PaymentIntentRepository
	jwtSecret []byte
	jwtIssuer string
	jwtExpiry time.Duration
}

// New builds a Service.
func New(merchants ports.MerchantRepository, intents ports.PaymentIntentRepository, jwtSecret, jwtIssuer string, jwtExpiry time.Duration) *Service {
	return &Service{merchants: merchants, intents: intents, jwtSecret: []byte(jwtSecret), jwtIssuer: jwtIssuer, jwtExpiry: jwtExpiry}
}

var _ ports.AuthService = (*Service)(nil)

// hashKey derives the deterministic lookup digest stored alongside a
// merchant's API/admin key. Unlike a password hash this must be
// reproducible from the presented credential alone, since the key
// itself is high-entropy random data rather than user-chosen input.
func hashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// AuthenticateAPIKey resolves the merchant-scoped secret API key, looked
// up by its SHA-256 hash, to an active merchant.
func (s *Service) AuthenticateAPIKey(ctx context.Context, apiKey string) (*ports.AuthContext, error) {
	merchant, err := s.merchants.GetMerchantByAPIKeyHash(ctx, hashKey(apiKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.InvalidAPIKey()
		}
		return nil, apperror.InternalError(fmt.Errorf("lookup api key: %w", err))
	}
	if !merchant.IsActive {
		return nil, apperror.InvalidAPIKey()
	}
	return &ports.AuthContext{MerchantID: merchant.ID, Variant: "api_key"}, nil
}

// AuthenticatePublishable resolves the client-side publishable key +
// per-payment client_secret pair used by wallet/checkout SDKs to act on
// one specific PaymentIntent without merchant-level credentials
// credentials.
func (s *Service) AuthenticatePublishable(ctx context.Context, publishableKey, clientSecret, paymentID string) (*ports.AuthContext, error) {
	merchant, err := s.merchants.GetMerchantByPublishableKey(ctx, publishableKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.InvalidAPIKey()
		}
		return nil, apperror.InternalError(fmt.Errorf("lookup publishable key: %w", err))
	}
	if !merchant.IsActive {
		return nil, apperror.InvalidAPIKey()
	}

	intent, err := s.intents.Get(ctx, merchant.ID, paymentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("payment")
		}
		return nil, apperror.InternalError(fmt.Errorf("lookup payment for client secret check: %w", err))
	}
	if intent.ClientSecret != clientSecret {
		return nil, apperror.ClientSecretMismatch()
	}
	return &ports.AuthContext{MerchantID: merchant.ID, ProfileID: intent.ProfileID, Variant: "publishable_key"}, nil
}

// AuthenticateJWT resolves a dashboard session bearer token.
func (s *Service) AuthenticateJWT(ctx context.Context, tokenString string) (*ports.AuthContext, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.InvalidToken()
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.InvalidToken()
	}
	merchantID, _ := claims["sub"].(string)
	if merchantID == "" {
		return nil, apperror.InvalidToken()
	}

	merchant, err := s.merchants.GetMerchantByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.InvalidToken()
		}
		return nil, apperror.InternalError(fmt.Errorf("lookup merchant for jwt: %w", err))
	}
	if !merchant.IsActive {
		return nil, apperror.InvalidToken()
	}
	return &ports.AuthContext{MerchantID: merchant.ID, Variant: "jwt"}, nil
}

// AuthenticateAdmin resolves the merchant-scoped elevated key used for
// dispute/administrative actions.
func (s *Service) AuthenticateAdmin(ctx context.Context, adminKey string) (*ports.AuthContext, error) {
	merchant, err := s.merchants.GetMerchantByAdminKeyHash(ctx, hashKey(adminKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.InvalidAPIKey()
		}
		return nil, apperror.InternalError(fmt.Errorf("lookup admin key: %w", err))
	}
	if !merchant.IsActive {
		return nil, apperror.InvalidAPIKey()
	}
	return &ports.AuthContext{MerchantID: merchant.ID, IsAdmin: true, Variant: "admin_key"}, nil
}

// IssueJWT mints an HS256-signed dashboard session token for merchantID
// that expires after the configured JWT expiry.
func (s *Service) IssueJWT(merchantID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.jwtExpiry)
	claims := jwt.MapClaims{
		"sub": merchantID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": s.jwtIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing jwt: %w", err)
	}
	return signed, expiresAt, nil
}
