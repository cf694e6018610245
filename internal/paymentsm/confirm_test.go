package paymentsm

import (
	"context"
	"testing"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ==================== Confirm ====================

func TestConfirm_ChargedImmediately(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent := newTestIntent(domain.IntentStatusRequiresConfirmation)
	mca := newTestMCA()
	captured := int64(1000)

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").
		Return([]domain.MerchantConnectorAccount{*mca}, nil)
	d.routingAlg.EXPECT().GetActiveForProfile(ctx, "prof_test").Return(nil, pgx.ErrNoRows)
	d.routingSvc.EXPECT().Evaluate(ctx, gomock.Nil(), gomock.Any(), gomock.Any()).
		Return(&ports.RoutingDecision{MerchantConnectorID: "mca_test", ConnectorName: "mock", Algorithm: "fallback_default"}, nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().Authorize(ctx, mca, gomock.Any()).Return(&ports.ConnectorResult{
		Status:                 domain.AttemptStatusCharged,
		ConnectorTransactionID: strPtr("txn_42"),
		AmountCaptured:         &captured,
		IntegrityCheck:         domain.IntegrityCheckPassed,
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	var attempt *domain.PaymentAttempt
	d.attempts.EXPECT().Create(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, a *domain.PaymentAttempt) error {
			attempt = a
			return nil
		})
	d.intents.EXPECT().Update(ctx, tx, "mer_test", "pay_test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _, _ string, u domain.IntentUpdate) error {
			require.NotNil(t, u.Status)
			assert.Equal(t, domain.IntentStatusSucceeded, *u.Status)
			require.NotNil(t, u.ActiveAttemptID)
			return nil
		})
	d.events.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

	out, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID:   "mer_test",
		PaymentID:    "pay_test",
		ClientSecret: intent.ClientSecret,
		PaymentMethod: &domain.PaymentMethodSnapshot{
			Type:  "card",
			Last4: strPtr("4242"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusSucceeded, out.Status)
	assert.Equal(t, int64(1000), out.AmountCaptured)
	require.NotNil(t, attempt)
	assert.Equal(t, domain.AttemptStatusCharged, attempt.Status)
	require.NotNil(t, attempt.ConnectorTransactionID)
	assert.Equal(t, "txn_42", *attempt.ConnectorTransactionID)
}

func TestConfirm_ManualCapture_StopsAtRequiresCapture(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent := newTestIntent(domain.IntentStatusRequiresConfirmation)
	intent.CaptureMethod = domain.CaptureMethodManual
	mca := newTestMCA()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").
		Return([]domain.MerchantConnectorAccount{*mca}, nil)
	d.routingAlg.EXPECT().GetActiveForProfile(ctx, "prof_test").Return(nil, pgx.ErrNoRows)
	d.routingSvc.EXPECT().Evaluate(ctx, gomock.Nil(), gomock.Any(), gomock.Any()).
		Return(&ports.RoutingDecision{MerchantConnectorID: "mca_test", ConnectorName: "mock"}, nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().Authorize(ctx, mca, gomock.Any()).Return(&ports.ConnectorResult{
		Status:                 domain.AttemptStatusAuthorized,
		ConnectorTransactionID: strPtr("txn_42"),
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.attempts.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.intents.EXPECT().Update(ctx, tx, "mer_test", "pay_test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _, _ string, u domain.IntentUpdate) error {
			require.NotNil(t, u.Status)
			assert.Equal(t, domain.IntentStatusRequiresCapture, *u.Status)
			return nil
		})

	out, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
		PaymentMethod: &domain.PaymentMethodSnapshot{
			Type: "card",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusRequiresCapture, out.Status)
	assert.Equal(t, int64(1000), out.AmountCapturable)
}

func TestConfirm_InvalidStatus(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusSucceeded), nil)

	_, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryPreconditionFailed, appErr.Category)
	assert.Equal(t, "PRE_001", appErr.Code)
}

func TestConfirm_ClientSecretMismatch(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusRequiresConfirmation), nil)

	_, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID:   "mer_test",
		PaymentID:    "pay_test",
		ClientSecret: "pay_test_secret_wrong",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryConflictingRequest, appErr.Category)
}

func TestConfirm_MandatePath_UsesStoredCredential(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent := newTestIntent(domain.IntentStatusRequiresConfirmation)
	mca := newTestMCA()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.customers.EXPECT().GetMandate(ctx, "man_1").Return(&domain.Mandate{
		ID:                 "man_1",
		MerchantID:         "mer_test",
		ConnectorMandateID: "m_1",
		Status:             domain.MandateStatusActive,
	}, nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").
		Return([]domain.MerchantConnectorAccount{*mca}, nil)
	d.routingAlg.EXPECT().GetActiveForProfile(ctx, "prof_test").Return(nil, pgx.ErrNoRows)
	d.routingSvc.EXPECT().Evaluate(ctx, gomock.Nil(), gomock.Any(), gomock.Any()).
		Return(&ports.RoutingDecision{MerchantConnectorID: "mca_test", ConnectorName: "mock"}, nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)

	// The MIT dispatch must carry the connector mandate reference and no
	// raw payment method data.
	d.connectors.EXPECT().Authorize(ctx, mca, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.MerchantConnectorAccount, req ports.ConnectorAuthorizeRequest) (*ports.ConnectorResult, error) {
			require.NotNil(t, req.MandateConnectorID)
			assert.Equal(t, "m_1", *req.MandateConnectorID)
			assert.Nil(t, req.PaymentMethod)
			captured := int64(1000)
			return &ports.ConnectorResult{
				Status:                 domain.AttemptStatusCharged,
				ConnectorTransactionID: strPtr("txn_mit"),
				AmountCaptured:         &captured,
			}, nil
		})
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.attempts.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.intents.EXPECT().Update(ctx, tx, "mer_test", "pay_test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _, _ string, u domain.IntentUpdate) error {
			require.NotNil(t, u.MandateID)
			assert.Equal(t, "man_1", *u.MandateID)
			return nil
		})
	d.events.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

	out, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
		MandateID:  strPtr("man_1"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusSucceeded, out.Status)
}

func TestConfirm_RevokedMandateRejected(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusRequiresConfirmation), nil)
	d.customers.EXPECT().GetMandate(ctx, "man_1").Return(&domain.Mandate{
		ID:     "man_1",
		Status: domain.MandateStatusRevoked,
	}, nil)

	_, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
		MandateID:  strPtr("man_1"),
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRE_002", appErr.Code)
}

func TestConfirm_PendingSchedulesSync(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent := newTestIntent(domain.IntentStatusRequiresConfirmation)
	mca := newTestMCA()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").
		Return([]domain.MerchantConnectorAccount{*mca}, nil)
	d.routingAlg.EXPECT().GetActiveForProfile(ctx, "prof_test").Return(nil, pgx.ErrNoRows)
	d.routingSvc.EXPECT().Evaluate(ctx, gomock.Nil(), gomock.Any(), gomock.Any()).
		Return(&ports.RoutingDecision{MerchantConnectorID: "mca_test", ConnectorName: "mock"}, nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().Authorize(ctx, mca, gomock.Any()).Return(&ports.ConnectorResult{
		Status: domain.AttemptStatusPending,
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.attempts.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.intents.EXPECT().Update(ctx, tx, "mer_test", "pay_test", gomock.Any()).Return(nil)
	d.events.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	var taskTypes []string
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, task ports.TrackerTask) error {
			taskTypes = append(taskTypes, task.TaskType)
			return nil
		}).Times(2)

	out, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID:    "mer_test",
		PaymentID:     "pay_test",
		PaymentMethod: &domain.PaymentMethodSnapshot{Type: "card"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusProcessing, out.Status)
	assert.Contains(t, taskTypes, "payment_sync")
	assert.Contains(t, taskTypes, "webhook_delivery")
}

func TestConfirm_NoConnectorAccounts(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusRequiresConfirmation), nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").Return(nil, nil)

	_, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "ROUTE_000", appErr.Code)
}

func TestConfirm_NotFound(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_missing").Return(nil, pgx.ErrNoRows)

	_, err := d.svc.Confirm(ctx, ports.ConfirmRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_missing",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryNotFound, appErr.Category)
}
