package apperror

import (
	"fmt"
	"net/http"
)

// Category is the closed set of error categories. Every
// AppError returned across a service boundary carries exactly one.
type Category string

const (
	CategoryValidation         Category = "validation"
	CategoryNotFound           Category = "not_found"
	CategoryPreconditionFailed Category = "precondition_failed"
	CategoryConflictingRequest Category = "conflicting_request"
	CategoryConnectorRejected  Category = "connector_rejected"
	CategoryConnectorTransient Category = "connector_transient"
	CategoryIntegrityMismatch  Category = "integrity_mismatch"
	CategoryInternalError      Category = "internal_error"
)

// AppError is a structured error that maps to HTTP responses. Connector
// is populated by the connector-facing constructors (ConnectorRejected,
// ConnectorTransient, IntegrityMismatch); UnifiedCode/UnifiedMessage only
// by ConnectorRejected (the 4-field normalized shape).
type AppError struct {
	Category       Category `json:"category"`
	Code           string   `json:"error_code"`
	Message        string   `json:"message"`
	Connector      string   `json:"connector,omitempty"`
	UnifiedCode    string   `json:"unified_code,omitempty"`
	UnifiedMessage string   `json:"unified_message,omitempty"`
	HTTPStatus     int      `json:"-"`
	Err            error    `json:"-"` // wrapped internal error, never exposed to the client
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsRetriable reports whether the process tracker should reschedule a
// workflow that produced this error.
func (e *AppError) IsRetriable() bool {
	return e.Category == CategoryConnectorTransient
}

func newErr(category Category, code, message string, httpStatus int) *AppError {
	return &AppError{Category: category, Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap attaches an internal error to a CategoryInternalError AppError.
func Wrap(code, message string, err error) *AppError {
	return &AppError{Category: CategoryInternalError, Code: code, Message: message, HTTPStatus: http.StatusInternalServerError, Err: err}
}

// ---- Validation ----

func Validation(message string) *AppError {
	return newErr(CategoryValidation, "VAL_001", message, http.StatusBadRequest)
}

func InvalidAmount() *AppError {
	return newErr(CategoryValidation, "VAL_002", "invalid amount", http.StatusBadRequest)
}

// ---- NotFound ----

func NotFound(entity string) *AppError {
	return newErr(CategoryNotFound, "NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- PreconditionFailed (state machine eligibility violations) ----

func InvalidStatusForOperation(operation, status string) *AppError {
	return newErr(CategoryPreconditionFailed, "PRE_001",
		fmt.Sprintf("operation %q not valid for current status %q", operation, status), http.StatusBadRequest)
}

func MandateNotUsable() *AppError {
	return newErr(CategoryPreconditionFailed, "PRE_002", "mandate is not active", http.StatusBadRequest)
}

// PreconditionFailed covers precondition violations outside the state
// machine's own eligibility table (e.g. routing misconfiguration) that
// still need a caller-specific code and message.
func PreconditionFailed(code, message string) *AppError {
	return newErr(CategoryPreconditionFailed, code, message, http.StatusUnprocessableEntity)
}

// ---- ConflictingRequest ----

func DuplicateIdempotencyKey() *AppError {
	return newErr(CategoryConflictingRequest, "CONF_001", "idempotency key already used with a different request", http.StatusConflict)
}

func ClientSecretMismatch() *AppError {
	return newErr(CategoryConflictingRequest, "CONF_002", "client secret does not match payment", http.StatusUnauthorized)
}

// ---- ConnectorRejected (terminal decline from the processor) ----

func ConnectorRejected(connector, code, message, unifiedCode, unifiedMessage string) *AppError {
	return &AppError{
		Category:       CategoryConnectorRejected,
		Code:           "CONN_REJ",
		Message:        message,
		Connector:      connector,
		UnifiedCode:    unifiedCode,
		UnifiedMessage: unifiedMessage,
		HTTPStatus:     http.StatusBadRequest,
	}
}

// ---- ConnectorTransient (network/5xx, retriable) ----

func ConnectorTransient(connector string, err error) *AppError {
	return &AppError{
		Category:   CategoryConnectorTransient,
		Code:       "CONN_TRANS",
		Message:    "connector temporarily unavailable",
		Connector:  connector,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// ---- IntegrityMismatch ----

func IntegrityMismatch(connector string) *AppError {
	return &AppError{
		Category:   CategoryIntegrityMismatch,
		Code:       "INTEG_001",
		Message:    "connector response failed integrity check",
		Connector:  connector,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// ---- InternalError ----

func InternalError(err error) *AppError {
	return Wrap("SYS_001", "internal server error", err)
}

func EncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "encryption service failure", err)
}

func LockTimeout(err error) *AppError {
	return &AppError{Category: CategoryInternalError, Code: "SYS_003", Message: "lock acquisition timeout", HTTPStatus: http.StatusServiceUnavailable, Err: err}
}

// ---- Authentication / rate limiting, retained from the ambient stack ----

func InvalidAPIKey() *AppError {
	return newErr(CategoryValidation, "SEC_001", "invalid API key", http.StatusUnauthorized)
}

func InvalidToken() *AppError {
	return newErr(CategoryValidation, "SEC_002", "invalid or expired token", http.StatusUnauthorized)
}

func RateLimitExceeded() *AppError {
	return newErr(CategoryConflictingRequest, "RATE_001", "rate limit exceeded", http.StatusTooManyRequests)
}
