package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// HTTPDoer is the subset of *http.Client Dispatcher needs, narrowed to
// an interface so tests can substitute a fake transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher implements ports.ConnectorDispatcher: resolves credentials,
// applies the connector's AmountConvertor, manages the access-token
// cache, performs the HTTP call, normalizes errors, and runs the
// integrity check.
type Dispatcher struct {
	registry   *Registry
	tokens     *TokenCache
	keyManager ports.KeyManagerService
	http       HTTPDoer
	ucs        *UCSClient
	log        zerolog.Logger
}

// NewDispatcher constructs a Dispatcher. ucs may be nil when no merchant
// routes through the Unified Connector Service; Dispatcher falls back to
// direct HTTP for any MerchantConnectorAccount with UseUCS unset.
func NewDispatcher(registry *Registry, tokens *TokenCache, keyManager ports.KeyManagerService, httpClient HTTPDoer, ucs *UCSClient, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, tokens: tokens, keyManager: keyManager, http: httpClient, ucs: ucs, log: log}
}

var _ ports.ConnectorDispatcher = (*Dispatcher)(nil)

func (d *Dispatcher) resolve(ctx context.Context, mca *domain.MerchantConnectorAccount) (Connector, Credentials, error) {
	conn, ok := d.registry.Resolve(mca.ConnectorName)
	if !ok {
		return nil, Credentials{}, fmt.Errorf("unknown connector: %s", mca.ConnectorName)
	}
	creds, err := d.decryptCredentials(ctx, mca)
	if err != nil {
		return nil, Credentials{}, err
	}
	return conn, creds, nil
}

func (d *Dispatcher) decryptCredentials(ctx context.Context, mca *domain.MerchantConnectorAccount) (Credentials, error) {
	plaintext, err := d.keyManager.Decrypt(ctx, mca.MerchantID, mca.CredentialsEnc)
	if err != nil {
		return Credentials{}, fmt.Errorf("decrypting connector credentials: %w", err)
	}
	var creds Credentials
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return Credentials{}, fmt.Errorf("unmarshaling connector credentials: %w", err)
	}
	return creds, nil
}

func (d *Dispatcher) callContext(mca *domain.MerchantConnectorAccount, creds Credentials, currency string) CallContext {
	cc := CallContext{
		MerchantID:          mca.MerchantID,
		MerchantConnectorID: mca.ID,
		Credentials:         creds,
		Currency:            currency,
		TestMode:            mca.TestMode,
	}
	if tok, ok := d.tokens.Get(mca.MerchantID, mca.ID); ok {
		cc.AccessToken = &tok
	}
	return cc
}

// ensureAccessToken runs the AddAccessToken flow if the connector needs
// one and none is cached yet.
func (d *Dispatcher) ensureAccessToken(ctx context.Context, conn Connector, mca *domain.MerchantConnectorAccount, creds Credentials) error {
	if !conn.RequiresAccessToken() {
		return nil
	}
	if _, ok := d.tokens.Get(mca.MerchantID, mca.ID); ok {
		return nil
	}
	return d.refreshAccessToken(ctx, conn, mca, creds)
}

func (d *Dispatcher) refreshAccessToken(ctx context.Context, conn Connector, mca *domain.MerchantConnectorAccount, creds Credentials) error {
	req, err := conn.BuildAccessTokenRequest(ctx, creds)
	if err != nil {
		return fmt.Errorf("building access token request: %w", err)
	}
	resp, err := d.do(ctx, req)
	if err != nil {
		return fmt.Errorf("access token request: %w", err)
	}
	token, expiresIn, err := conn.HandleAccessTokenResponse(ctx, resp)
	if err != nil {
		return fmt.Errorf("handling access token response: %w", err)
	}
	d.tokens.Set(mca.MerchantID, mca.ID, token, expiresIn)
	return nil
}

// do performs an HTTPRequest, retrying transient network failures up to
// two times with an exponential backoff — not connector-level
// rejections, which the caller normalizes instead.
func (d *Dispatcher) do(ctx context.Context, req *HTTPRequest) (*HTTPResponse, error) {
	var result *HTTPResponse
	operation := func() error {
		httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
		if err != nil {
			return backoff.Permanent(err)
		}
		for k, v := range req.Headers {
			httpReq.Header.Set(k, v)
		}
		resp, err := d.http.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		result = &HTTPResponse{StatusCode: resp.StatusCode, Body: body, Headers: resp.Header}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2)
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return result, nil
}

// doFlow performs a processor-facing call (authorize/capture/void/
// refund/psync/rsync), routing through UCS when mca.UseUCS is set and a
// UCSClient is configured, else falling back to direct HTTP.
func (d *Dispatcher) doFlow(ctx context.Context, mca *domain.MerchantConnectorAccount, flow Flow, req *HTTPRequest) (*HTTPResponse, error) {
	if mca.UseUCS && d.ucs != nil {
		respBody, err := d.ucs.Invoke(ctx, mca.ConnectorName, flow, req.Body)
		if err != nil {
			return nil, err
		}
		return &HTTPResponse{StatusCode: http.StatusOK, Body: respBody}, nil
	}
	return d.do(ctx, req)
}

// runIntegrityCheck compares what was requested against what the
// connector reports back, flagging (not rejecting) a mismatch.
func runIntegrityCheck(requestedAmount int64, requestedCurrency string, result *ConnectorResult) domain.IntegrityCheckResult {
	if result.Raw == nil {
		return domain.IntegrityCheckUnknown
	}
	if amt, ok := result.Raw["amount"]; ok {
		if amtInt, ok := amt.(int64); ok && amtInt != requestedAmount {
			return domain.IntegrityCheckFailed
		}
	}
	if cur, ok := result.Raw["currency"]; ok {
		if curStr, ok := cur.(string); ok && curStr != requestedCurrency && curStr != "" {
			return domain.IntegrityCheckFailed
		}
	}
	return domain.IntegrityCheckPassed
}

func toPortsResult(r *ConnectorResult) *ports.ConnectorResult {
	out := &ports.ConnectorResult{
		Status:                 r.Status,
		ConnectorTransactionID: r.ConnectorTransactionID,
		RedirectionData:        r.RedirectionData,
		AmountCaptured:         r.AmountCaptured,
		IntegrityCheck:         r.IntegrityCheck,
		Raw:                    r.Raw,
	}
	if r.Error != nil {
		out.ErrorCode = &r.Error.Code
		out.ErrorMessage = &r.Error.Message
		out.ErrorReason = r.Error.Reason
		out.UnifiedCode = r.Error.UnifiedCode
		out.UnifiedMessage = r.Error.UnifiedMessage
	}
	return out
}

func normalizedErrorResult(status domain.AttemptStatus, err *NormalizedError) *ports.ConnectorResult {
	return toPortsResult(&ConnectorResult{Status: status, Error: err})
}

// Authorize implements ports.ConnectorDispatcher.
func (d *Dispatcher) Authorize(ctx context.Context, mca *domain.MerchantConnectorAccount, req ports.ConnectorAuthorizeRequest) (*ports.ConnectorResult, error) {
	conn, creds, err := d.resolve(ctx, mca)
	if err != nil {
		return nil, err
	}

	if err := d.ensureAccessToken(ctx, conn, mca, creds); err != nil {
		return nil, err
	}

	convertor := ConvertorFor(conn.Name())
	amount, err := convertor.ToConnector(req.Amount, req.Currency)
	if err != nil {
		return nil, fmt.Errorf("converting amount: %w", err)
	}

	cc := d.callContext(mca, creds, req.Currency)
	internalReq := ConnectorAuthorizeRequest{
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		VaultToken:    req.VaultToken,
		MandateID:     req.MandateConnectorID,
		CaptureMethod: req.CaptureMethod,
		ReturnURL:     req.ReturnURL,
		Metadata:      req.Metadata,
	}

	httpReq, err := conn.BuildAuthorizeRequest(ctx, cc, internalReq, amount)
	if err != nil {
		return nil, fmt.Errorf("building authorize request: %w", err)
	}

	resp, err := d.doFlow(ctx, mca, FlowAuthorize, httpReq)
	if err != nil {
		return nil, fmt.Errorf("authorize call: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && conn.RequiresAccessToken() {
		d.tokens.Invalidate(mca.MerchantID, mca.ID)
		if err := d.refreshAccessToken(ctx, conn, mca, creds); err != nil {
			return nil, err
		}
		cc = d.callContext(mca, creds, req.Currency)
		httpReq, err = conn.BuildAuthorizeRequest(ctx, cc, internalReq, amount)
		if err != nil {
			return nil, fmt.Errorf("rebuilding authorize request after token refresh: %w", err)
		}
		resp, err = d.doFlow(ctx, mca, FlowAuthorize, httpReq)
		if err != nil {
			return nil, fmt.Errorf("authorize retry call: %w", err)
		}
	}

	if resp.StatusCode >= 300 {
		normErr, err := conn.GetErrorResponse(ctx, resp)
		if err != nil {
			return nil, fmt.Errorf("normalizing connector error: %w", err)
		}
		return normalizedErrorResult(domain.AttemptStatusAuthorizationFailed, normErr), nil
	}

	result, err := conn.HandleAuthorizeResponse(ctx, cc, resp)
	if err != nil {
		return nil, fmt.Errorf("handling authorize response: %w", err)
	}
	result.IntegrityCheck = runIntegrityCheck(req.Amount, req.Currency, result)
	return toPortsResult(result), nil
}

func (d *Dispatcher) genericFlow(ctx context.Context, mca *domain.MerchantConnectorAccount, flow Flow, build func(Connector, CallContext) (*HTTPRequest, error)) (*ports.ConnectorResult, error) {
	conn, creds, err := d.resolve(ctx, mca)
	if err != nil {
		return nil, err
	}
	if err := d.ensureAccessToken(ctx, conn, mca, creds); err != nil {
		return nil, err
	}
	cc := d.callContext(mca, creds, "")

	httpReq, err := build(conn, cc)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", flow, err)
	}
	resp, err := d.doFlow(ctx, mca, flow, httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s call: %w", flow, err)
	}
	if resp.StatusCode >= 300 {
		normErr, err := conn.GetErrorResponse(ctx, resp)
		if err != nil {
			return nil, fmt.Errorf("normalizing connector error: %w", err)
		}
		return normalizedErrorResult(domain.AttemptStatusFailure, normErr), nil
	}
	result, err := conn.HandleGenericResponse(ctx, flow, resp)
	if err != nil {
		return nil, fmt.Errorf("handling %s response: %w", flow, err)
	}
	return toPortsResult(result), nil
}

func (d *Dispatcher) Capture(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorTransactionID string, amount, authorizedAmount int64, currency string) (*ports.ConnectorResult, error) {
	return d.genericFlow(ctx, mca, FlowCapture, func(conn Connector, cc CallContext) (*HTTPRequest, error) {
		converted, err := ConvertorFor(conn.Name()).ToConnector(amount, currency)
		if err != nil {
			return nil, err
		}
		return conn.BuildCaptureRequest(ctx, cc, connectorTransactionID, converted, authorizedAmount)
	})
}

func (d *Dispatcher) Void(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorTransactionID string, reason *string) (*ports.ConnectorResult, error) {
	return d.genericFlow(ctx, mca, FlowVoid, func(conn Connector, cc CallContext) (*HTTPRequest, error) {
		return conn.BuildVoidRequest(ctx, cc, connectorTransactionID, reason)
	})
}

func (d *Dispatcher) Refund(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorTransactionID string, amount int64, currency string, reason *string) (*ports.ConnectorResult, error) {
	return d.genericFlow(ctx, mca, FlowRefund, func(conn Connector, cc CallContext) (*HTTPRequest, error) {
		converted, err := ConvertorFor(conn.Name()).ToConnector(amount, currency)
		if err != nil {
			return nil, err
		}
		return conn.BuildRefundRequest(ctx, cc, connectorTransactionID, converted, reason)
	})
}

func (d *Dispatcher) PSync(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorTransactionID string) (*ports.ConnectorResult, error) {
	return d.genericFlow(ctx, mca, FlowPSync, func(conn Connector, cc CallContext) (*HTTPRequest, error) {
		return conn.BuildPSyncRequest(ctx, cc, connectorTransactionID)
	})
}

func (d *Dispatcher) RSync(ctx context.Context, mca *domain.MerchantConnectorAccount, connectorRefundID string) (*ports.ConnectorResult, error) {
	return d.genericFlow(ctx, mca, FlowRSync, func(conn Connector, cc CallContext) (*HTTPRequest, error) {
		return conn.BuildRSyncRequest(ctx, cc, connectorRefundID)
	})
}

func (d *Dispatcher) SessionToken(ctx context.Context, mca *domain.MerchantConnectorAccount, amount int64, currency string) (*ports.ConnectorSessionToken, error) {
	conn, creds, err := d.resolve(ctx, mca)
	if err != nil {
		return nil, err
	}
	tok, err := conn.SessionToken(ctx, creds, amount, currency)
	if err != nil {
		return nil, fmt.Errorf("fetching session token: %w", err)
	}
	return &ports.ConnectorSessionToken{
		ConnectorName: conn.Name(),
		Token:         tok.Token,
		Extra:         map[string]any{"expires_in": tok.ExpiresIn},
	}, nil
}

func (d *Dispatcher) VerifyWebhookSource(ctx context.Context, mca *domain.MerchantConnectorAccount, headers map[string]string, body []byte) (bool, error) {
	conn, creds, err := d.resolve(ctx, mca)
	if err != nil {
		return false, err
	}
	return conn.VerifyWebhookSource(ctx, creds, headers, body)
}

func (d *Dispatcher) ParseWebhookEvent(ctx context.Context, mca *domain.MerchantConnectorAccount, headers map[string]string, body []byte) (domain.IncomingWebhookEvent, string, error) {
	conn, creds, err := d.resolve(ctx, mca)
	if err != nil {
		return domain.IncomingEventNotSupported, "", err
	}
	return conn.ParseWebhookEvent(ctx, creds, headers, body)
}

// NewHTTPClient builds the shared http.Client dispatch uses, with a
// bounded timeout so a hung connector never blocks a worker forever.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
