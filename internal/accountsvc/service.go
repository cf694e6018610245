// Package accountsvc implements ports.CustomerService and
// ports.MerchantService: the account-surface operations
// that sit outside the payment state machine proper — customers,
// stored payment methods, mandates, merchant connector accounts and
// business profiles.
package accountsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Service implements ports.CustomerService and ports.MerchantService.
type Service struct {
	merchants ports.MerchantRepository
	customers ports.CustomerRepository
	keyMgr    ports.KeyManagerService
	log       zerolog.Logger
}

// New builds a Service.
func New(merchants ports.MerchantRepository, customers ports.CustomerRepository, keyMgr ports.KeyManagerService, log zerolog.Logger) *Service {
	return &Service{merchants: merchants, customers: customers, keyMgr: keyMgr, log: log}
}

var _ ports.CustomerService = (*Service)(nil)
var _ ports.MerchantService = (*Service)(nil)

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func newCustomerID() string      { return "cus_" + uuid.NewString() }
func newPaymentMethodID() string { return "pm_" + uuid.NewString() }

// CreateCustomer persists a new Customer record.
func (s *Service) CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	c.ID = newCustomerID()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.ModifiedAt = now
	if err := s.customers.CreateCustomer(ctx, c); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create customer: %w", err))
	}
	return c, nil
}

// GetCustomer looks up a customer scoped to its owning merchant.
func (s *Service) GetCustomer(ctx context.Context, merchantID, customerID string) (*domain.Customer, error) {
	c, err := s.customers.GetCustomer(ctx, merchantID, customerID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("customer")
		}
		return nil, apperror.InternalError(fmt.Errorf("get customer: %w", err))
	}
	return c, nil
}

// ListPaymentMethods returns every enabled payment method on file for a
// customer, after confirming the customer belongs to merchantID.
func (s *Service) ListPaymentMethods(ctx context.Context, merchantID, customerID string) ([]domain.PaymentMethod, error) {
	if _, err := s.GetCustomer(ctx, merchantID, customerID); err != nil {
		return nil, err
	}
	pms, err := s.customers.ListPaymentMethods(ctx, customerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payment methods: %w", err))
	}
	return pms, nil
}

// SavePaymentMethod vaults a tokenized instrument against a customer.
// The raw card/bank data has already been exchanged for an opaque
// vault token upstream (the PaymentMethodSnapshot boundary)
// — this call only persists the reference.
func (s *Service) SavePaymentMethod(ctx context.Context, pm *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	pm.ID = newPaymentMethodID()
	pm.CreatedAt = time.Now().UTC()
	if err := s.customers.CreatePaymentMethod(ctx, pm); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save payment method: %w", err))
	}
	return pm, nil
}

// DeletePaymentMethod soft-deletes a stored payment method after
// confirming merchant ownership.
func (s *Service) DeletePaymentMethod(ctx context.Context, merchantID, paymentMethodID string) error {
	pm, err := s.customers.GetPaymentMethod(ctx, paymentMethodID)
	if err != nil {
		if isNotFound(err) {
			return apperror.NotFound("payment method")
		}
		return apperror.InternalError(fmt.Errorf("get payment method: %w", err))
	}
	if pm.MerchantID != merchantID {
		return apperror.NotFound("payment method")
	}
	if err := s.customers.DisablePaymentMethod(ctx, paymentMethodID); err != nil {
		return apperror.InternalError(fmt.Errorf("disable payment method: %w", err))
	}
	return nil
}

// RevokeMandate cancels a stored-credential consent record so it can no
// longer back a merchant-initiated charge.
func (s *Service) RevokeMandate(ctx context.Context, merchantID, mandateID string) error {
	m, err := s.customers.GetMandate(ctx, mandateID)
	if err != nil {
		if isNotFound(err) {
			return apperror.NotFound("mandate")
		}
		return apperror.InternalError(fmt.Errorf("get mandate: %w", err))
	}
	if m.MerchantID != merchantID {
		return apperror.NotFound("mandate")
	}
	if err := s.customers.UpdateMandateStatus(ctx, mandateID, domain.MandateStatusRevoked); err != nil {
		return apperror.InternalError(fmt.Errorf("revoke mandate: %w", err))
	}
	return nil
}

// GetMerchant looks up a merchant account by ID.
func (s *Service) GetMerchant(ctx context.Context, merchantID string) (*domain.MerchantAccount, error) {
	m, err := s.merchants.GetMerchantByID(ctx, merchantID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("merchant")
		}
		return nil, apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	return m, nil
}

// CreateConnectorAccount binds a Profile to an external processor.
// rawCredentials is envelope-encrypted through the merchant's data key
// before the row is persisted, so plaintext processor secrets never
// reach the CredentialsEnc column.
func (s *Service) CreateConnectorAccount(ctx context.Context, mca *domain.MerchantConnectorAccount, rawCredentials map[string]any) (*domain.MerchantConnectorAccount, error) {
	plaintext, err := json.Marshal(rawCredentials)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal connector credentials: %w", err))
	}
	ciphertext, err := s.keyMgr.Encrypt(ctx, mca.MerchantID, plaintext)
	if err != nil {
		return nil, err
	}

	mca.ID = "mca_" + uuid.NewString()
	mca.CredentialsEnc = ciphertext
	now := time.Now().UTC()
	mca.CreatedAt = now
	mca.ModifiedAt = now

	if err := s.merchants.CreateConnectorAccount(ctx, mca); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create connector account: %w", err))
	}
	s.log.Info().Str("merchant_id", mca.MerchantID).Str("connector", mca.ConnectorName).
		Msg("merchant connector account created")
	return mca, nil
}

// UpdateBusinessProfile repoints a profile's routing algorithm and/or
// default connector account.
func (s *Service) UpdateBusinessProfile(ctx context.Context, profileID string, routingAlgorithmID, defaultConnectorID *string) (*domain.Profile, error) {
	profile, err := s.merchants.GetProfileByID(ctx, profileID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("profile")
		}
		return nil, apperror.InternalError(fmt.Errorf("get profile: %w", err))
	}
	if routingAlgorithmID != nil {
		profile.RoutingAlgorithmID = routingAlgorithmID
	}
	if defaultConnectorID != nil {
		profile.DefaultConnectorID = defaultConnectorID
	}
	profile.ModifiedAt = time.Now().UTC()
	// A dedicated UPDATE rather than insert-or-replace, to avoid
	// clobbering Name/MerchantID/CreatedAt.
	if err := s.merchants.UpdateProfile(ctx, profile); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update profile: %w", err))
	}
	return profile, nil
}
