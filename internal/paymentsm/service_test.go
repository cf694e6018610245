package paymentsm

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/internal/core/ports/mocks"
	"paymentcore/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentTestDeps struct {
	svc        *Service
	intents    *mocks.MockPaymentIntentRepository
	attempts   *mocks.MockPaymentAttemptRepository
	merchants  *mocks.MockMerchantRepository
	customers  *mocks.MockCustomerRepository
	refunds    *mocks.MockRefundRepository
	disputes   *mocks.MockDisputeRepository
	payouts    *mocks.MockPayoutRepository
	events     *mocks.MockEventRepository
	idempRepo  *mocks.MockIdempotencyRepository
	idempCache *mocks.MockIdempotencyCache
	routingAlg *mocks.MockRoutingAlgorithmRepository
	routingSvc *mocks.MockRoutingService
	connectors *mocks.MockConnectorDispatcher
	tracker    *mocks.MockTrackerProducer
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupPaymentService(t *testing.T) *paymentTestDeps {
	ctrl := gomock.NewController(t)
	d := &paymentTestDeps{
		intents:    mocks.NewMockPaymentIntentRepository(ctrl),
		attempts:   mocks.NewMockPaymentAttemptRepository(ctrl),
		merchants:  mocks.NewMockMerchantRepository(ctrl),
		customers:  mocks.NewMockCustomerRepository(ctrl),
		refunds:    mocks.NewMockRefundRepository(ctrl),
		disputes:   mocks.NewMockDisputeRepository(ctrl),
		payouts:    mocks.NewMockPayoutRepository(ctrl),
		events:     mocks.NewMockEventRepository(ctrl),
		idempRepo:  mocks.NewMockIdempotencyRepository(ctrl),
		idempCache: mocks.NewMockIdempotencyCache(ctrl),
		routingAlg: mocks.NewMockRoutingAlgorithmRepository(ctrl),
		routingSvc: mocks.NewMockRoutingService(ctrl),
		connectors: mocks.NewMockConnectorDispatcher(ctrl),
		tracker:    mocks.NewMockTrackerProducer(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = New(
		d.intents, d.attempts, d.merchants, d.customers,
		d.refunds, d.disputes, d.payouts, d.events,
		d.idempRepo, d.idempCache, d.routingAlg, d.routingSvc,
		d.connectors, d.tracker, d.transactor, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func strPtr(s string) *string { return &s }

func newTestIntent(status domain.IntentStatus) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		PaymentID:     "pay_test",
		MerchantID:    "mer_test",
		ProfileID:     "prof_test",
		Amount:        1000,
		Currency:      "USD",
		Status:        status,
		CaptureMethod: domain.CaptureMethodAutomatic,
		ClientSecret:  "pay_test_secret_abc",
		CreatedAt:     time.Now().UTC(),
		ModifiedAt:    time.Now().UTC(),
	}
}

func newTestAttempt(status domain.AttemptStatus) *domain.PaymentAttempt {
	return &domain.PaymentAttempt{
		AttemptID:              "att_test",
		PaymentID:              "pay_test",
		MerchantID:             "mer_test",
		ConnectorID:            "mca_test",
		ConnectorName:          "mock",
		ConnectorTransactionID: strPtr("txn_1"),
		Status:                 status,
		Amount:                 1000,
		Currency:               "USD",
		CaptureMethod:          domain.CaptureMethodAutomatic,
	}
}

func newTestMCA() *domain.MerchantConnectorAccount {
	return &domain.MerchantConnectorAccount{
		ID:            "mca_test",
		ProfileID:     "prof_test",
		MerchantID:    "mer_test",
		ConnectorName: "mock",
		AuthType:      domain.AuthTypeHeaderKey,
	}
}

// ==================== CreateIntent ====================

func TestCreateIntent_Success(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	req := ports.CreateIntentRequest{
		MerchantID:     "mer_test",
		ProfileID:      "prof_test",
		Amount:         1000,
		Currency:       "USD",
		IdempotencyKey: "order-001",
	}
	idempKey := domain.BuildIdempotencyKey("mer_test", "order-001")

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, false, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, pgx.ErrNoRows)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	var created *domain.PaymentIntent
	d.intents.EXPECT().Create(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, intent *domain.PaymentIntent) error {
			created = intent
			return nil
		})
	d.idempRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempCache.EXPECT().Set(ctx, idempKey, gomock.Any(), gomock.Any()).Return(nil)

	intent, err := d.svc.CreateIntent(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, intent)
	assert.Equal(t, domain.IntentStatusRequiresPaymentMethod, intent.Status)
	assert.Equal(t, domain.CaptureMethodAutomatic, intent.CaptureMethod)
	assert.NotEmpty(t, intent.ClientSecret)
	assert.Contains(t, intent.ClientSecret, intent.PaymentID+"_secret_")
	require.NotNil(t, created)
	assert.Equal(t, intent.PaymentID, created.PaymentID)
}

func TestCreateIntent_IdempotentReplay_CacheHit(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	original := newTestIntent(domain.IntentStatusRequiresPaymentMethod)
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	idempKey := domain.BuildIdempotencyKey("mer_test", "order-001")
	d.idempCache.EXPECT().Get(ctx, idempKey).Return(raw, true, nil)

	intent, err := d.svc.CreateIntent(ctx, ports.CreateIntentRequest{
		MerchantID:     "mer_test",
		Amount:         1000,
		Currency:       "USD",
		IdempotencyKey: "order-001",
	})
	require.NoError(t, err)
	assert.Equal(t, original.PaymentID, intent.PaymentID)
}

func TestCreateIntent_IdempotentReplay_DBHit(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	original := newTestIntent(domain.IntentStatusRequiresPaymentMethod)
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	idempKey := domain.BuildIdempotencyKey("mer_test", "order-001")
	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, false, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(&domain.IdempotencyLog{
		Key:          idempKey,
		PaymentID:    original.PaymentID,
		ResponseJSON: raw,
	}, nil)

	intent, err := d.svc.CreateIntent(ctx, ports.CreateIntentRequest{
		MerchantID:     "mer_test",
		Amount:         1000,
		Currency:       "USD",
		IdempotencyKey: "order-001",
	})
	require.NoError(t, err)
	assert.Equal(t, original.PaymentID, intent.PaymentID)
}

func TestCreateIntent_InvalidAmount(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateIntent(context.Background(), ports.CreateIntentRequest{
		MerchantID: "mer_test",
		Amount:     0,
		Currency:   "USD",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryValidation, appErr.Category)
}

func TestCreateIntent_MissingCurrency(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateIntent(context.Background(), ports.CreateIntentRequest{
		MerchantID: "mer_test",
		Amount:     1000,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryValidation, appErr.Category)
}

// ==================== UpdateIntent ====================

func TestUpdateIntent_RejectedAfterConfirm(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusProcessing), nil)

	_, err := d.svc.UpdateIntent(ctx, ports.UpdateIntentRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryPreconditionFailed, appErr.Category)
}
