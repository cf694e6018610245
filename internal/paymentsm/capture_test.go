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

// ==================== Capture ====================

func TestCapture_Partial(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent := newTestIntent(domain.IntentStatusRequiresCapture)
	intent.CaptureMethod = domain.CaptureMethodManual
	intent.AmountCapturable = 1000
	intent.ActiveAttemptID = strPtr("att_test")
	attempt := newTestAttempt(domain.AttemptStatusAuthorized)
	attempt.CaptureMethod = domain.CaptureMethodManual
	mca := newTestMCA()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.attempts.EXPECT().Get(ctx, "pay_test", "att_test").Return(attempt, nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().Capture(ctx, mca, "txn_1", int64(400), int64(1000), "USD").Return(&ports.ConnectorResult{
		Status:                 domain.AttemptStatusPartialCharged,
		ConnectorTransactionID: strPtr("txn_1"),
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	d.attempts.EXPECT().Update(ctx, tx, "att_test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ string, u domain.AttemptUpdate) error {
			require.NotNil(t, u.AmountCaptured)
			assert.Equal(t, int64(400), *u.AmountCaptured)
			require.NotNil(t, u.CaptureSequence)
			assert.Equal(t, 1, *u.CaptureSequence)
			return nil
		})
	d.intents.EXPECT().Update(ctx, tx, "mer_test", "pay_test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _, _ string, u domain.IntentUpdate) error {
			require.NotNil(t, u.Status)
			assert.Equal(t, domain.IntentStatusPartiallyCapturedAndCapturable, *u.Status)
			require.NotNil(t, u.AmountCapturable)
			assert.Equal(t, int64(600), *u.AmountCapturable)
			return nil
		})

	amount := int64(400)
	out, err := d.svc.Capture(ctx, ports.CaptureRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
		Amount:     &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusPartiallyCapturedAndCapturable, out.Status)
	assert.Equal(t, int64(400), out.AmountCaptured)
	assert.Equal(t, int64(600), out.AmountCapturable)
}

func TestCapture_AmountGreaterThanCapturable(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	intent := newTestIntent(domain.IntentStatusRequiresCapture)
	intent.AmountCapturable = 1000
	intent.ActiveAttemptID = strPtr("att_test")

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.attempts.EXPECT().Get(ctx, "pay_test", "att_test").
		Return(newTestAttempt(domain.AttemptStatusAuthorized), nil)

	amount := int64(1500)
	_, err := d.svc.Capture(ctx, ports.CaptureRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
		Amount:     &amount,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CAP_001", appErr.Code)
}

func TestCapture_InvalidStatus(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusSucceeded), nil)

	_, err := d.svc.Capture(ctx, ports.CaptureRequest{MerchantID: "mer_test", PaymentID: "pay_test"})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRE_001", appErr.Code)
}

// ==================== Cancel ====================

func TestCancel_VoidsAuthorization(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent := newTestIntent(domain.IntentStatusRequiresCapture)
	intent.ActiveAttemptID = strPtr("att_test")
	attempt := newTestAttempt(domain.AttemptStatusAuthorized)
	mca := newTestMCA()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.attempts.EXPECT().Get(ctx, "pay_test", "att_test").Return(attempt, nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().Void(ctx, mca, "txn_1", gomock.Any()).Return(&ports.ConnectorResult{
		Status:                 domain.AttemptStatusVoided,
		ConnectorTransactionID: strPtr("txn_1"),
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.attempts.EXPECT().Update(ctx, tx, "att_test", gomock.Any()).Return(nil)
	d.intents.EXPECT().Update(ctx, tx, "mer_test", "pay_test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _, _ string, u domain.IntentUpdate) error {
			require.NotNil(t, u.Status)
			assert.Equal(t, domain.IntentStatusCancelled, *u.Status)
			return nil
		})

	out, err := d.svc.Cancel(ctx, ports.CancelRequest{MerchantID: "mer_test", PaymentID: "pay_test"})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusCancelled, out.Status)
	assert.Equal(t, int64(0), out.AmountCapturable)
}

func TestCancel_WithoutAttempt(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent := newTestIntent(domain.IntentStatusRequiresPaymentMethod)

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intents.EXPECT().Update(ctx, tx, "mer_test", "pay_test", gomock.Any()).Return(nil)

	out, err := d.svc.Cancel(ctx, ports.CancelRequest{MerchantID: "mer_test", PaymentID: "pay_test"})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusCancelled, out.Status)
}

func TestCancel_AlreadySucceeded(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusSucceeded), nil)

	_, err := d.svc.Cancel(ctx, ports.CancelRequest{MerchantID: "mer_test", PaymentID: "pay_test"})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRE_001", appErr.Code)
}

// ==================== Reject ====================

func TestReject_RequiresMerchantAction(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent := newTestIntent(domain.IntentStatusRequiresMerchantAction)

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intents.EXPECT().Update(ctx, tx, "mer_test", "pay_test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _, _ string, u domain.IntentUpdate) error {
			require.NotNil(t, u.Status)
			assert.Equal(t, domain.IntentStatusFailed, *u.Status)
			return nil
		})
	d.events.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

	out, err := d.svc.Reject(ctx, ports.RejectRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
		Reason:     strPtr("manual review failed"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusFailed, out.Status)
}

func TestReject_ProcessingNotAllowed(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusProcessing), nil)

	_, err := d.svc.Reject(ctx, ports.RejectRequest{MerchantID: "mer_test", PaymentID: "pay_test"})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRE_001", appErr.Code)
}

// ==================== CancelPostCapture ====================

func TestCancelPostCapture_InvalidStatus(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").
		Return(newTestIntent(domain.IntentStatusRequiresCapture), nil)

	_, err := d.svc.CancelPostCapture(ctx, ports.CancelPostCaptureRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRE_001", appErr.Code)
}
