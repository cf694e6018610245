package postgres

import (
	"context"
	"testing"
	"time"

	"paymentcore/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredAttempt() *domain.PaymentAttempt {
	now := time.Now().UTC().Truncate(time.Microsecond)
	txn := "txn_1"
	return &domain.PaymentAttempt{
		AttemptID:              "att_1",
		PaymentID:              "pay_1",
		MerchantID:             "mer_1",
		ConnectorID:            "mca_1",
		ConnectorName:          "mock",
		ConnectorTransactionID: &txn,
		Status:                 domain.AttemptStatusAuthorized,
		Amount:                 1000,
		Currency:               "USD",
		AuthenticationType:     domain.AuthenticationTypeNoThreeDS,
		CaptureMethod:          domain.CaptureMethodManual,
		CreatedAt:              now,
		ModifiedAt:             now,
	}
}

func attemptColumnNames() []string {
	return []string{
		"attempt_id", "payment_id", "merchant_id", "connector_id", "connector_name", "connector_transaction_id",
		"status", "amount", "amount_captured", "capture_sequence", "currency", "authentication_type", "capture_method",
		"payment_method", "payment_method_id", "mandate_id", "preprocessing_step_id", "redirection_data",
		"error_code", "error_message", "error_reason", "unified_code", "unified_message", "integrity_check",
		"connector_metadata", "created_at", "modified_at",
	}
}

func attemptRow(a *domain.PaymentAttempt) *pgxmock.Rows {
	return pgxmock.NewRows(attemptColumnNames()).AddRow(
		a.AttemptID, a.PaymentID, a.MerchantID, a.ConnectorID, a.ConnectorName, a.ConnectorTransactionID,
		a.Status, a.Amount, a.AmountCaptured, a.CaptureSequence, a.Currency, a.AuthenticationType, a.CaptureMethod,
		[]byte(nil), a.PaymentMethodID, a.MandateID, a.PreprocessingStepID, []byte(nil),
		a.ErrorCode, a.ErrorMessage, a.ErrorReason, a.UnifiedCode, a.UnifiedMessage, a.IntegrityCheck,
		[]byte(nil), a.CreatedAt, a.ModifiedAt,
	)
}

func TestAttemptRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttemptRepo(mock)
	a := newStoredAttempt()

	mock.ExpectExec("INSERT INTO payment_attempts").
		WithArgs(
			a.AttemptID, a.PaymentID, a.MerchantID, a.ConnectorID, a.ConnectorName, a.ConnectorTransactionID,
			a.Status, a.Amount, a.AmountCaptured, a.CaptureSequence, a.Currency, a.AuthenticationType, a.CaptureMethod,
			[]byte(nil), a.PaymentMethodID, a.MandateID, a.PreprocessingStepID, []byte(nil),
			a.ErrorCode, a.ErrorMessage, a.ErrorReason, a.UnifiedCode, a.UnifiedMessage, a.IntegrityCheck,
			[]byte(nil), a.CreatedAt, a.ModifiedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), nil, a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttemptRepo(mock)
	a := newStoredAttempt()

	mock.ExpectQuery("(?s)SELECT .+ FROM payment_attempts WHERE payment_id").
		WithArgs("pay_1", "att_1").
		WillReturnRows(attemptRow(a))

	got, err := repo.Get(context.Background(), "pay_1", "att_1")
	require.NoError(t, err)
	assert.Equal(t, a.AttemptID, got.AttemptID)
	assert.Equal(t, a.Status, got.Status)
	require.NotNil(t, got.ConnectorTransactionID)
	assert.Equal(t, "txn_1", *got.ConnectorTransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptRepo_GetActive_ExcludesFailed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttemptRepo(mock)
	a := newStoredAttempt()

	mock.ExpectQuery(`(?s)SELECT .+ FROM payment_attempts\s+WHERE payment_id = \$1 AND status != 'failure' ORDER BY created_at DESC LIMIT 1`).
		WithArgs("pay_1").
		WillReturnRows(attemptRow(a))

	got, err := repo.GetActive(context.Background(), "pay_1")
	require.NoError(t, err)
	assert.Equal(t, "att_1", got.AttemptID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A post-capture update touches status, amount_captured and
// capture_sequence only.
func TestAttemptRepo_Update_DiffOnly(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttemptRepo(mock)
	status := domain.AttemptStatusPartialCharged
	captured := int64(400)
	seq := 1

	mock.ExpectExec(`^UPDATE payment_attempts SET modified_at = NOW\(\), status = \$1, amount_captured = \$2, capture_sequence = \$3 WHERE attempt_id = \$4$`).
		WithArgs(status, captured, seq, "att_1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Update(context.Background(), nil, "att_1", domain.AttemptUpdate{
		UpdatedBy:       "capture",
		Status:          &status,
		AmountCaptured:  &captured,
		CaptureSequence: &seq,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttemptRepo(mock)
	status := domain.AttemptStatusCharged

	mock.ExpectExec("UPDATE payment_attempts SET").
		WithArgs(status, "att_gone").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Update(context.Background(), nil, "att_gone", domain.AttemptUpdate{
		UpdatedBy: "test",
		Status:    &status,
	})
	assert.Error(t, err)
}
