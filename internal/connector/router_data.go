package connector

import (
	"time"

	"paymentcore/internal/core/domain"
)

// CredentialKind is the closed sum of auth shapes a connector's
// credentials blob may take.
type CredentialKind string

const (
	CredentialHeaderKey    CredentialKind = "header_key"
	CredentialBodyKey      CredentialKind = "body_key"
	CredentialSignatureKey CredentialKind = "signature_key"
	CredentialMultiAuthKey CredentialKind = "multi_auth_key"
	CredentialCurrencyAuthKey CredentialKind = "currency_auth_key"
	CredentialCertificateAuth CredentialKind = "certificate_auth"
)

// Credentials is the decrypted, typed form of a
// MerchantConnectorAccount's credentials_enc blob.
type Credentials struct {
	Kind        CredentialKind
	APIKey      string
	APISecret   string
	KeyID       string
	CertPEM     string
	PrivateKeyPEM string
	Extra       map[string]string
}

// Flow names one connector capability the dispatcher can invoke.
type Flow string

const (
	FlowAuthorize    Flow = "authorize"
	FlowCapture      Flow = "capture"
	FlowVoid         Flow = "void"
	FlowRefund       Flow = "refund"
	FlowPSync        Flow = "psync"
	FlowRSync        Flow = "rsync"
	FlowSessionToken Flow = "session_token"
	FlowAccessToken  Flow = "access_token"
)

// RouterData carries everything one connector call needs, independent
// of Req/Resp's concrete shape. F pins it to a flow so a
// connector implementation can't accidentally answer the wrong one.
type RouterData[F any, Req any, Resp any] struct {
	MerchantID           string
	ConnectorName        string
	MerchantConnectorID  string
	Credentials          Credentials
	Request              Req
	Response             *Resp
	Address              *domain.Address
	Amount               int64 // canonical minor-unit integer
	Currency             string
	TestMode             bool
	AccessToken          *string
	RequestedAt          time.Time
	RespondedAt          *time.Time
}

// NormalizedError is the 4-field shape every connector error collapses
// to, so the state machine never branches on connector-specific bodies.
type NormalizedError struct {
	Code           string
	Message        string
	Reason         *string
	UnifiedCode    *string
	UnifiedMessage *string
}
