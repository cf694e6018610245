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

func chargedIntentWithAttempt() (*domain.PaymentIntent, *domain.PaymentAttempt) {
	intent := newTestIntent(domain.IntentStatusSucceeded)
	intent.ActiveAttemptID = strPtr("att_test")
	intent.AmountCaptured = 1000
	attempt := newTestAttempt(domain.AttemptStatusCharged)
	attempt.AmountCaptured = 1000
	return intent, attempt
}

// ==================== CreateRefund ====================

func TestCreateRefund_Partial(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent, attempt := chargedIntentWithAttempt()
	mca := newTestMCA()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.attempts.EXPECT().Get(ctx, "pay_test", "att_test").Return(attempt, nil)
	d.refunds.EXPECT().SumActiveByAttempt(ctx, "att_test").Return(int64(0), nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().Refund(ctx, mca, "txn_1", int64(500), "USD", gomock.Any()).
		Return(&ports.ConnectorResult{
			Status:                 domain.AttemptStatusCharged,
			ConnectorTransactionID: strPtr("ref_txn_1"),
		}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	var created *domain.Refund
	d.refunds.EXPECT().Create(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, r *domain.Refund) error {
			created = r
			return nil
		})
	d.events.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

	amount := int64(500)
	refund, err := d.svc.CreateRefund(ctx, ports.CreateRefundRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
		Amount:     &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RefundStatusSuccess, refund.Status)
	assert.Equal(t, int64(500), refund.Amount)
	require.NotNil(t, created)
	assert.Equal(t, "att_test", created.AttemptID)
	assert.Equal(t, "mca_test", created.MerchantConnectorID)
}

func TestCreateRefund_ExceedsCaptured(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	intent, attempt := chargedIntentWithAttempt()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.attempts.EXPECT().Get(ctx, "pay_test", "att_test").Return(attempt, nil)
	d.refunds.EXPECT().SumActiveByAttempt(ctx, "att_test").Return(int64(500), nil)

	amount := int64(600)
	_, err := d.svc.CreateRefund(ctx, ports.CreateRefundRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
		Amount:     &amount,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "REFUND_001", appErr.Code)
	assert.Contains(t, appErr.Message, "RefundAmountExceedsPaymentAmount")
}

func TestCreateRefund_FullRefundMarksAttemptAutoRefunded(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent, attempt := chargedIntentWithAttempt()
	mca := newTestMCA()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.attempts.EXPECT().Get(ctx, "pay_test", "att_test").Return(attempt, nil)
	d.refunds.EXPECT().SumActiveByAttempt(ctx, "att_test").Return(int64(0), nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().Refund(ctx, mca, "txn_1", int64(1000), "USD", gomock.Any()).
		Return(&ports.ConnectorResult{
			Status:                 domain.AttemptStatusCharged,
			ConnectorTransactionID: strPtr("ref_txn_1"),
		}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.refunds.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.attempts.EXPECT().Update(ctx, tx, "att_test", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ string, u domain.AttemptUpdate) error {
			require.NotNil(t, u.Status)
			assert.Equal(t, domain.AttemptStatusAutoRefunded, *u.Status)
			return nil
		})
	d.events.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

	// nil amount means refund the full captured amount
	refund, err := d.svc.CreateRefund(ctx, ports.CreateRefundRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), refund.Amount)
	assert.Equal(t, domain.RefundStatusSuccess, refund.Status)
}

func TestCreateRefund_AttemptNotRefundable(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	intent := newTestIntent(domain.IntentStatusProcessing)
	intent.ActiveAttemptID = strPtr("att_test")

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.attempts.EXPECT().Get(ctx, "pay_test", "att_test").
		Return(newTestAttempt(domain.AttemptStatusPending), nil)

	_, err := d.svc.CreateRefund(ctx, ports.CreateRefundRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRE_001", appErr.Code)
}

func TestCreateRefund_PendingSchedulesRSync(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	intent, attempt := chargedIntentWithAttempt()
	mca := newTestMCA()

	d.intents.EXPECT().Get(ctx, "mer_test", "pay_test").Return(intent, nil)
	d.attempts.EXPECT().Get(ctx, "pay_test", "att_test").Return(attempt, nil)
	d.refunds.EXPECT().SumActiveByAttempt(ctx, "att_test").Return(int64(0), nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().Refund(ctx, mca, "txn_1", int64(1000), "USD", gomock.Any()).
		Return(&ports.ConnectorResult{Status: domain.AttemptStatusPending}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.refunds.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, task ports.TrackerTask) error {
			assert.Equal(t, "refund_sync", task.TaskType)
			return nil
		})

	refund, err := d.svc.CreateRefund(ctx, ports.CreateRefundRequest{
		MerchantID: "mer_test",
		PaymentID:  "pay_test",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RefundStatusPending, refund.Status)
}

// ==================== SyncRefund ====================

func TestSyncRefund_TerminalIsNoOp(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.refunds.EXPECT().Get(ctx, "ref_1").Return(&domain.Refund{
		ID:         "ref_1",
		MerchantID: "mer_test",
		Status:     domain.RefundStatusSuccess,
	}, nil)

	refund, err := d.svc.SyncRefund(ctx, "mer_test", "ref_1")
	require.NoError(t, err)
	assert.Equal(t, domain.RefundStatusSuccess, refund.Status)
}

func TestSyncRefund_PendingToSuccess(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	mca := newTestMCA()

	d.refunds.EXPECT().Get(ctx, "ref_1").Return(&domain.Refund{
		ID:                     "ref_1",
		MerchantID:             "mer_test",
		MerchantConnectorID:    "mca_test",
		ConnectorTransactionID: strPtr("ref_txn_1"),
		Status:                 domain.RefundStatusPending,
	}, nil)
	d.merchants.EXPECT().GetConnectorAccountByID(ctx, "mca_test").Return(mca, nil)
	d.connectors.EXPECT().RSync(ctx, mca, "ref_txn_1").Return(&ports.ConnectorResult{
		Status: domain.AttemptStatusCharged,
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.refunds.EXPECT().Update(ctx, tx, "ref_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, _ string, u domain.RefundUpdate) error {
			require.NotNil(t, u.Status)
			assert.Equal(t, domain.RefundStatusSuccess, *u.Status)
			return nil
		})
	d.events.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

	refund, err := d.svc.SyncRefund(ctx, "mer_test", "ref_1")
	require.NoError(t, err)
	assert.Equal(t, domain.RefundStatusSuccess, refund.Status)
}

func TestGetRefund_WrongMerchant(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.refunds.EXPECT().Get(ctx, "ref_1").Return(&domain.Refund{
		ID:         "ref_1",
		MerchantID: "mer_other",
	}, nil)

	_, err := d.svc.GetRefund(ctx, "mer_test", "ref_1")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryNotFound, appErr.Category)
}
