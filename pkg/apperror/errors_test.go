package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   Validation("Insufficient funds"),
			expected: "[VAL_001] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := Validation("test")
	assert.Nil(t, appErr.Unwrap())
}

func TestPreconditionFailedErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidStatusForOperation", InvalidStatusForOperation("capture", "failure"), "PRE_001", http.StatusBadRequest},
		{"MandateNotUsable", MandateNotUsable(), "PRE_002", http.StatusBadRequest},
		{"PreconditionFailed custom code", PreconditionFailed("ROUTE_003", "no enabled connector"), "ROUTE_003", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.Equal(t, CategoryPreconditionFailed, tt.err.Category)
		})
	}
}

func TestConflictingRequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"DuplicateIdempotencyKey", DuplicateIdempotencyKey(), "CONF_001", http.StatusConflict},
		{"ClientSecretMismatch", ClientSecretMismatch(), "CONF_002", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestConnectorRejected(t *testing.T) {
	err := ConnectorRejected("mock", "card_declined", "card was declined", "UNIFIED_DECLINE", "do not honor")
	assert.Equal(t, CategoryConnectorRejected, err.Category)
	assert.Equal(t, "mock", err.Connector)
	assert.Equal(t, "UNIFIED_DECLINE", err.UnifiedCode)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}

func TestConnectorTransient(t *testing.T) {
	inner := fmt.Errorf("dial tcp: timeout")
	err := ConnectorTransient("generic", inner)
	assert.Equal(t, CategoryConnectorTransient, err.Category)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)
	assert.True(t, err.IsRetriable())
	assert.True(t, errors.Is(err, inner))
}

func TestIntegrityMismatch(t *testing.T) {
	err := IntegrityMismatch("mock")
	assert.Equal(t, CategoryIntegrityMismatch, err.Category)
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus)
	assert.False(t, err.IsRetriable())
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")

	dbErr := InternalError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, http.StatusInternalServerError, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	encErr := EncryptionFailure(inner)
	assert.Equal(t, "SYS_002", encErr.Code)
	assert.Equal(t, http.StatusInternalServerError, encErr.HTTPStatus)

	lockErr := LockTimeout(inner)
	assert.Equal(t, "SYS_003", lockErr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, lockErr.HTTPStatus)
}

func TestAuthAndRateLimitErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAPIKey", InvalidAPIKey(), "SEC_001", http.StatusUnauthorized},
		{"InvalidToken", InvalidToken(), "SEC_002", http.StatusUnauthorized},
		{"RateLimitExceeded", RateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestNotFoundEntity(t *testing.T) {
	err := NotFound("Merchant")
	assert.Contains(t, err.Message, "Merchant")
	assert.Equal(t, "NF_001", err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}

func TestInvalidAmount(t *testing.T) {
	err := InvalidAmount()
	assert.Equal(t, "VAL_002", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}
