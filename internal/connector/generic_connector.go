package connector

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"paymentcore/internal/core/domain"
)

// GenericConnector is a configurable HTTP-JSON connector: it does not
// integrate with any real processor, but exercises the full wire-format
// contract a real one would — header/body/signature auth, JSON request
// and response bodies, an access-token exchange, and HMAC-signed
// webhooks — so the Connector interface has one concrete, networked
// implementation beyond MockConnector.
//
// BaseURL is configured per MerchantConnectorAccount via
// Credentials.Extra["base_url"]; an empty value falls back to the
// constructor's defaultBaseURL, which itself defaults to
// https://sandbox.generic-connector.invalid.
type GenericConnector struct {
	defaultBaseURL string
}

func NewGenericConnector(defaultBaseURL string) *GenericConnector {
	if defaultBaseURL == "" {
		defaultBaseURL = "https://sandbox.generic-connector.invalid"
	}
	return &GenericConnector{defaultBaseURL: defaultBaseURL}
}

func (c *GenericConnector) Name() string         { return "generic" }
func (c *GenericConnector) WireUnit() AmountUnit { return UnitFloatMajor }

func (c *GenericConnector) baseURL(creds Credentials) string {
	if v, ok := creds.Extra["base_url"]; ok && v != "" {
		return v
	}
	return c.defaultBaseURL
}

// authHeaders applies the connector's declared auth Kind to an outbound
// request, ahead of any access token the
// dispatcher has attached to cc.
func (c *GenericConnector) authHeaders(cc CallContext) map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	switch cc.Credentials.Kind {
	case CredentialHeaderKey:
		headers["Authorization"] = "Bearer " + cc.Credentials.APIKey
	case CredentialSignatureKey:
		// body signature is applied by the caller once the body is final
	case CredentialMultiAuthKey:
		headers["X-Api-Key"] = cc.Credentials.APIKey
		headers["X-Key-Id"] = cc.Credentials.KeyID
	case CredentialCurrencyAuthKey:
		headers["Authorization"] = "Bearer " + cc.Credentials.Extra["api_key_"+cc.Currency]
	case CredentialCertificateAuth:
		headers["X-Client-Cert-Fingerprint"] = cc.Credentials.KeyID
	default: // body_key — no header, key travels in the JSON body
	}
	if cc.AccessToken != nil {
		headers["Authorization"] = "Bearer " + *cc.AccessToken
	}
	return headers
}

func (c *GenericConnector) sign(creds Credentials, body []byte) string {
	mac := hmac.New(sha256.New, []byte(creds.APISecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type genericAuthorizeBody struct {
	APIKey        string         `json:"api_key,omitempty"`
	Amount        any            `json:"amount"`
	Currency      string         `json:"currency"`
	CaptureMethod string         `json:"capture_method"`
	PaymentMethod string         `json:"payment_method_type,omitempty"`
	Last4         *string        `json:"last4,omitempty"`
	VaultToken    *string        `json:"vault_token,omitempty"`
	MandateID     *string        `json:"mandate_id,omitempty"`
	ReturnURL     *string        `json:"return_url,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

func (c *GenericConnector) buildJSON(cc CallContext, method, path string, payload any) (*HTTPRequest, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding generic connector request: %w", err)
	}
	headers := c.authHeaders(cc)
	if cc.Credentials.Kind == CredentialSignatureKey {
		headers["X-Signature"] = c.sign(cc.Credentials, body)
	}
	return &HTTPRequest{
		Method:  method,
		URL:     c.baseURL(cc.Credentials) + path,
		Headers: headers,
		Body:    body,
	}, nil
}

func (c *GenericConnector) BuildAuthorizeRequest(ctx context.Context, cc CallContext, req ConnectorAuthorizeRequest, convertedAmount any) (*HTTPRequest, error) {
	body := genericAuthorizeBody{
		Amount:        convertedAmount,
		Currency:      req.Currency,
		CaptureMethod: string(req.CaptureMethod),
		ReturnURL:     req.ReturnURL,
		VaultToken:    req.VaultToken,
		MandateID:     req.MandateID,
		Metadata:      req.Metadata,
	}
	if req.PaymentMethod != nil {
		body.PaymentMethod = req.PaymentMethod.Type
		body.Last4 = req.PaymentMethod.Last4
	}
	if cc.Credentials.Kind == CredentialBodyKey {
		body.APIKey = cc.Credentials.APIKey
	}
	return c.buildJSON(cc, "POST", "/v1/payments", body)
}

type genericResponseBody struct {
	ID               string         `json:"id"`
	Status           string         `json:"status"`
	Amount           json.Number    `json:"amount"`
	Currency         string         `json:"currency"`
	AmountCaptured   *json.Number   `json:"amount_captured,omitempty"`
	NextActionURL    *string        `json:"next_action_url,omitempty"`
	ErrorCode        *string        `json:"error_code,omitempty"`
	ErrorMessage     *string        `json:"error_message,omitempty"`
	ErrorDecline     *string        `json:"decline_reason,omitempty"`
	Raw              map[string]any `json:"-"`
}

var genericStatusMap = map[string]domain.AttemptStatus{
	"requires_action":   domain.AttemptStatusConfirmationAwaited,
	"requires_3ds":       domain.AttemptStatusAuthenticationPending,
	"authorized":         domain.AttemptStatusAuthorized,
	"succeeded":          domain.AttemptStatusCharged,
	"partially_captured": domain.AttemptStatusPartialCharged,
	"voided":             domain.AttemptStatusVoided,
	"failed":             domain.AttemptStatusAuthorizationFailed,
}

func decodeGenericResponse(body []byte) (*genericResponseBody, error) {
	var r genericResponseBody
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("decoding generic connector response: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		r.Raw = raw
	}
	return &r, nil
}

func (c *GenericConnector) HandleAuthorizeResponse(ctx context.Context, cc CallContext, resp *HTTPResponse) (*ConnectorResult, error) {
	r, err := decodeGenericResponse(resp.Body)
	if err != nil {
		return nil, err
	}
	status, ok := genericStatusMap[r.Status]
	if !ok {
		status = domain.AttemptStatusPending
	}

	result := &ConnectorResult{
		Status:                 status,
		ConnectorTransactionID: &r.ID,
		Raw:                    r.Raw,
	}
	if r.NextActionURL != nil {
		result.RedirectionData = map[string]any{"redirect_url": *r.NextActionURL}
	}
	if r.AmountCaptured != nil {
		if captured, err := r.AmountCaptured.Int64(); err == nil {
			result.AmountCaptured = &captured
		}
	}
	if status == domain.AttemptStatusAuthorizationFailed {
		result.Error = genericError(r)
	}
	return result, nil
}

func genericError(r *genericResponseBody) *NormalizedError {
	code := "generic_declined"
	if r.ErrorCode != nil {
		code = *r.ErrorCode
	}
	msg := "generic connector: request declined"
	if r.ErrorMessage != nil {
		msg = *r.ErrorMessage
	}
	return &NormalizedError{Code: code, Message: msg, Reason: r.ErrorDecline}
}

func (c *GenericConnector) BuildCaptureRequest(ctx context.Context, cc CallContext, connectorTransactionID string, convertedAmount any, authorizedAmount int64) (*HTTPRequest, error) {
	return c.buildJSON(cc, "POST", "/v1/payments/"+connectorTransactionID+"/capture", map[string]any{"amount": convertedAmount})
}

func (c *GenericConnector) BuildVoidRequest(ctx context.Context, cc CallContext, connectorTransactionID string, reason *string) (*HTTPRequest, error) {
	return c.buildJSON(cc, "POST", "/v1/payments/"+connectorTransactionID+"/void", map[string]any{"reason": reason})
}

func (c *GenericConnector) BuildRefundRequest(ctx context.Context, cc CallContext, connectorTransactionID string, convertedAmount any, reason *string) (*HTTPRequest, error) {
	return c.buildJSON(cc, "POST", "/v1/payments/"+connectorTransactionID+"/refund", map[string]any{"amount": convertedAmount, "reason": reason})
}

func (c *GenericConnector) BuildPSyncRequest(ctx context.Context, cc CallContext, connectorTransactionID string) (*HTTPRequest, error) {
	return &HTTPRequest{Method: "GET", URL: c.baseURL(cc.Credentials) + "/v1/payments/" + connectorTransactionID, Headers: c.authHeaders(cc)}, nil
}

func (c *GenericConnector) BuildRSyncRequest(ctx context.Context, cc CallContext, connectorRefundID string) (*HTTPRequest, error) {
	return &HTTPRequest{Method: "GET", URL: c.baseURL(cc.Credentials) + "/v1/refunds/" + connectorRefundID, Headers: c.authHeaders(cc)}, nil
}

var genericFlowDefaultStatus = map[Flow]domain.AttemptStatus{
	FlowCapture: domain.AttemptStatusCharged,
	FlowVoid:    domain.AttemptStatusVoided,
	FlowRefund:  domain.AttemptStatusCharged,
	FlowPSync:   domain.AttemptStatusPending,
	FlowRSync:   domain.AttemptStatusPending,
}

func (c *GenericConnector) HandleGenericResponse(ctx context.Context, flow Flow, resp *HTTPResponse) (*ConnectorResult, error) {
	r, err := decodeGenericResponse(resp.Body)
	if err != nil {
		return nil, err
	}
	status, ok := genericStatusMap[r.Status]
	if !ok {
		status = genericFlowDefaultStatus[flow]
	}
	result := &ConnectorResult{Status: status, ConnectorTransactionID: &r.ID, Raw: r.Raw}
	if r.AmountCaptured != nil {
		if captured, err := r.AmountCaptured.Int64(); err == nil {
			result.AmountCaptured = &captured
		}
	}
	if status == domain.AttemptStatusAuthorizationFailed || status == domain.AttemptStatusFailure {
		result.Error = genericError(r)
	}
	return result, nil
}

func (c *GenericConnector) GetErrorResponse(ctx context.Context, resp *HTTPResponse) (*NormalizedError, error) {
	r, err := decodeGenericResponse(resp.Body)
	if err != nil {
		return &NormalizedError{Code: "generic_http_error", Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}, nil
	}
	return genericError(r), nil
}

func (c *GenericConnector) RequiresAccessToken() bool { return true }

type genericTokenRequestBody struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

func (c *GenericConnector) BuildAccessTokenRequest(ctx context.Context, creds Credentials) (*HTTPRequest, error) {
	body, err := json.Marshal(genericTokenRequestBody{ClientID: creds.APIKey, ClientSecret: creds.APISecret, GrantType: "client_credentials"})
	if err != nil {
		return nil, err
	}
	return &HTTPRequest{
		Method:  "POST",
		URL:     c.baseURL(creds) + "/v1/oauth/token",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}, nil
}

type genericTokenResponseBody struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *GenericConnector) HandleAccessTokenResponse(ctx context.Context, resp *HTTPResponse) (string, int, error) {
	var t genericTokenResponseBody
	if err := json.Unmarshal(resp.Body, &t); err != nil {
		return "", 0, fmt.Errorf("decoding generic connector access token response: %w", err)
	}
	if t.AccessToken == "" {
		return "", 0, fmt.Errorf("generic connector: empty access token in response")
	}
	return t.AccessToken, t.ExpiresIn, nil
}

// SessionToken bypasses Dispatcher.do's HTTPRequest/HTTPResponse
// split: it returns a token deterministically
// keyed off amount and currency, matching MockConnector's testability
// contract rather than performing a real client-side-init POST.
func (c *GenericConnector) SessionToken(ctx context.Context, creds Credentials, amount int64, currency string) (*SessionTokenResult, error) {
	if _, err := (FloatMajorUnitConvertor{}).ToConnector(amount, currency); err != nil {
		return nil, err
	}
	return &SessionTokenResult{Token: fmt.Sprintf("generic_session_%d_%s", amount, currency), ExpiresIn: 900}, nil
}

func (c *GenericConnector) VerifyWebhookSource(ctx context.Context, creds Credentials, headers map[string]string, body []byte) (bool, error) {
	sig := headers["X-Generic-Signature"]
	if sig == "" {
		return false, nil
	}
	expected := c.sign(creds, body)
	return hmac.Equal([]byte(sig), []byte(expected)), nil
}

type genericWebhookBody struct {
	EventType string `json:"event_type"`
	Data      struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (c *GenericConnector) ParseWebhookEvent(ctx context.Context, creds Credentials, headers map[string]string, body []byte) (domain.IncomingWebhookEvent, string, error) {
	var w genericWebhookBody
	if err := json.Unmarshal(body, &w); err != nil {
		return domain.IncomingEventNotSupported, "", fmt.Errorf("generic connector: decoding webhook body: %w", err)
	}
	switch w.EventType {
	case "payment.succeeded":
		return domain.IncomingPaymentIntentSuccess, w.Data.ID, nil
	case "payment.failed":
		return domain.IncomingPaymentIntentFailure, w.Data.ID, nil
	case "payment.action_required":
		return domain.IncomingPaymentActionRequired, w.Data.ID, nil
	case "refund.succeeded":
		return domain.IncomingRefundSuccess, w.Data.ID, nil
	case "refund.failed":
		return domain.IncomingRefundFailure, w.Data.ID, nil
	case "dispute.opened":
		return domain.IncomingDisputeOpened, w.Data.ID, nil
	case "dispute.won":
		return domain.IncomingDisputeWon, w.Data.ID, nil
	case "dispute.lost":
		return domain.IncomingDisputeLost, w.Data.ID, nil
	case "mandate.active":
		return domain.IncomingMandateActive, w.Data.ID, nil
	default:
		return domain.IncomingEventNotSupported, w.Data.ID, nil
	}
}

var _ Connector = (*GenericConnector)(nil)
