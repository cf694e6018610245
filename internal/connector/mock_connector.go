package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"paymentcore/internal/core/domain"
)

// MockConnector is a deterministic, in-process stand-in for a real
// processor: no network call ever leaves the process. BuildXRequest
// methods encode the decision the corresponding HandleXResponse would
// make directly into the HTTPRequest body, and Dispatcher's do() never
// actually needs a live HTTP transport for it — tests wire an HTTPDoer
// that just loops the request body back as the response body.
//
// Behavior is driven off the vault token / connector_transaction_id
// prefix so callers can script a scenario without a real gateway. On
// Authorize the prefix comes from the vault token or mandate id; on
// PSync/RSync it comes from the connector transaction id. The
// "pending_"/"processing_" authorize scenarios hand back a
// "pending_"-prefixed txn id, so every subsequent poll of that payment
// keeps reporting pending — exactly what a retries-exhausted sync test
// needs:
//
//	token prefixed "fail_"       -> authorization_failed
//	token prefixed "pending_"    -> authentication_pending (3DS-style)
//	token prefixed "processing_" -> pending, async settlement
//	token prefixed "action_"     -> requires customer action (redirect)
//	txn prefixed "pending_"      -> PSync/RSync still pending
//	txn prefixed "fail_"         -> PSync/RSync reports failure
//	anything else                -> succeeds
//
// Capture reports PartialCharged whenever the captured amount is less
// than the attempt's authorized total, Charged when it covers it.
type MockConnector struct{}

func NewMockConnector() *MockConnector { return &MockConnector{} }

func (MockConnector) Name() string         { return "mock" }
func (MockConnector) WireUnit() AmountUnit { return UnitMinor }

type mockAuthorizeBody struct {
	Scenario      string `json:"scenario"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CaptureMethod string `json:"capture_method"`
}

func mockScenario(vaultToken, mandateID *string) string {
	token := ""
	if vaultToken != nil {
		token = *vaultToken
	} else if mandateID != nil {
		token = *mandateID
	}
	switch {
	case strings.HasPrefix(token, "fail_"):
		return "fail"
	case strings.HasPrefix(token, "pending_"):
		return "pending"
	case strings.HasPrefix(token, "processing_"):
		return "processing"
	case strings.HasPrefix(token, "action_"):
		return "action"
	default:
		return "success"
	}
}

func (MockConnector) BuildAuthorizeRequest(ctx context.Context, cc CallContext, req ConnectorAuthorizeRequest, convertedAmount any) (*HTTPRequest, error) {
	amt, err := toInt64(convertedAmount)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(mockAuthorizeBody{
		Scenario:      mockScenario(req.VaultToken, req.MandateID),
		Amount:        amt,
		Currency:      req.Currency,
		CaptureMethod: string(req.CaptureMethod),
	})
	if err != nil {
		return nil, err
	}
	return &HTTPRequest{
		Method:  "POST",
		URL:     "mock://authorize",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}, nil
}

type mockResponseBody struct {
	Scenario   string `json:"scenario"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	TxnID      string `json:"txn_id"`
	StatusSeed string `json:"status_seed,omitempty"`
}

func (MockConnector) HandleAuthorizeResponse(ctx context.Context, cc CallContext, resp *HTTPResponse) (*ConnectorResult, error) {
	var reqBody mockAuthorizeBody
	if err := json.Unmarshal(resp.Body, &reqBody); err != nil {
		return nil, fmt.Errorf("mock connector: decoding echoed request: %w", err)
	}
	txnID := "mock_txn_" + cc.MerchantConnectorID

	switch reqBody.Scenario {
	case "fail":
		msg := "mock connector: scripted decline"
		return &ConnectorResult{
			Status: domain.AttemptStatusAuthorizationFailed,
			Error: &NormalizedError{
				Code:    "mock_declined",
				Message: msg,
				Reason:  &msg,
			},
			Raw: map[string]any{"amount": reqBody.Amount, "currency": reqBody.Currency},
		}, nil
	case "pending":
		pendingTxn := "pending_" + txnID
		return &ConnectorResult{
			Status:                 domain.AttemptStatusAuthenticationPending,
			ConnectorTransactionID: &pendingTxn,
			RedirectionData:        map[string]any{"redirect_url": "mock://3ds/" + pendingTxn},
			Raw:                    map[string]any{"amount": reqBody.Amount, "currency": reqBody.Currency},
		}, nil
	case "processing":
		pendingTxn := "pending_" + txnID
		return &ConnectorResult{
			Status:                 domain.AttemptStatusPending,
			ConnectorTransactionID: &pendingTxn,
			Raw:                    map[string]any{"amount": reqBody.Amount, "currency": reqBody.Currency},
		}, nil
	case "action":
		return &ConnectorResult{
			Status:                 domain.AttemptStatusConfirmationAwaited,
			ConnectorTransactionID: &txnID,
			RedirectionData:        map[string]any{"redirect_url": "mock://action/" + txnID},
			Raw:                    map[string]any{"amount": reqBody.Amount, "currency": reqBody.Currency},
		}, nil
	default:
		status := domain.AttemptStatusAuthorized
		var captured *int64
		if reqBody.CaptureMethod == string(domain.CaptureMethodAutomatic) {
			status = domain.AttemptStatusCharged
			amt := reqBody.Amount
			captured = &amt
		}
		return &ConnectorResult{
			Status:                 status,
			ConnectorTransactionID: &txnID,
			AmountCaptured:         captured,
			Raw:                    map[string]any{"amount": reqBody.Amount, "currency": reqBody.Currency},
		}, nil
	}
}

func (MockConnector) BuildCaptureRequest(ctx context.Context, cc CallContext, connectorTransactionID string, convertedAmount any, authorizedAmount int64) (*HTTPRequest, error) {
	amt, err := toInt64(convertedAmount)
	if err != nil {
		return nil, err
	}
	body, _ := json.Marshal(map[string]any{
		"scenario":          "capture",
		"txn_id":            connectorTransactionID,
		"amount":            amt,
		"authorized_amount": authorizedAmount,
	})
	return &HTTPRequest{Method: "POST", URL: "mock://capture", Body: body}, nil
}

func (MockConnector) BuildVoidRequest(ctx context.Context, cc CallContext, connectorTransactionID string, reason *string) (*HTTPRequest, error) {
	body, _ := json.Marshal(map[string]any{"scenario": "void", "txn_id": connectorTransactionID})
	return &HTTPRequest{Method: "POST", URL: "mock://void", Body: body}, nil
}

func (MockConnector) BuildRefundRequest(ctx context.Context, cc CallContext, connectorTransactionID string, convertedAmount any, reason *string) (*HTTPRequest, error) {
	amt, err := toInt64(convertedAmount)
	if err != nil {
		return nil, err
	}
	body, _ := json.Marshal(map[string]any{"scenario": "refund", "txn_id": connectorTransactionID, "amount": amt})
	return &HTTPRequest{Method: "POST", URL: "mock://refund", Body: body}, nil
}

func (MockConnector) BuildPSyncRequest(ctx context.Context, cc CallContext, connectorTransactionID string) (*HTTPRequest, error) {
	body, _ := json.Marshal(map[string]any{"scenario": "psync", "txn_id": connectorTransactionID})
	return &HTTPRequest{Method: "GET", URL: "mock://psync/" + connectorTransactionID, Body: body}, nil
}

func (MockConnector) BuildRSyncRequest(ctx context.Context, cc CallContext, connectorRefundID string) (*HTTPRequest, error) {
	body, _ := json.Marshal(map[string]any{"scenario": "rsync", "txn_id": connectorRefundID})
	return &HTTPRequest{Method: "GET", URL: "mock://rsync/" + connectorRefundID, Body: body}, nil
}

func (MockConnector) HandleGenericResponse(ctx context.Context, flow Flow, resp *HTTPResponse) (*ConnectorResult, error) {
	var echoed map[string]any
	if err := json.Unmarshal(resp.Body, &echoed); err != nil {
		return nil, fmt.Errorf("mock connector: decoding echoed request: %w", err)
	}
	txnID, _ := echoed["txn_id"].(string)

	var status domain.AttemptStatus
	switch flow {
	case FlowCapture:
		status = domain.AttemptStatusCharged
		if amt, aok := echoed["amount"]; aok {
			if total, tok := echoed["authorized_amount"]; tok {
				captured, aerr := toInt64(amt)
				authorized, terr := toInt64(total)
				if aerr == nil && terr == nil && captured < authorized {
					status = domain.AttemptStatusPartialCharged
				}
			}
		}
	case FlowVoid:
		status = domain.AttemptStatusVoided
	case FlowRefund:
		status = domain.AttemptStatusCharged // refund success is reported on the refund entity, not the attempt
	case FlowPSync, FlowRSync:
		switch {
		case strings.HasPrefix(txnID, "pending_"):
			// still unresolved at the processor; poll again later
			return &ConnectorResult{
				Status:                 domain.AttemptStatusPending,
				ConnectorTransactionID: &txnID,
				Raw:                    echoed,
			}, nil
		case strings.HasPrefix(txnID, "fail_"):
			msg := "mock connector: scripted sync failure"
			return &ConnectorResult{
				Status:                 domain.AttemptStatusFailure,
				ConnectorTransactionID: &txnID,
				Error: &NormalizedError{
					Code:    "mock_sync_failed",
					Message: msg,
					Reason:  &msg,
				},
				Raw: echoed,
			}, nil
		default:
			status = domain.AttemptStatusCharged
		}
	default:
		status = domain.AttemptStatusPending
	}

	var captured *int64
	if amt, ok := echoed["amount"]; ok {
		if i, err := toInt64(amt); err == nil {
			captured = &i
		}
	}

	return &ConnectorResult{
		Status:                 status,
		ConnectorTransactionID: &txnID,
		AmountCaptured:         captured,
		Raw:                    echoed,
	}, nil
}

func (MockConnector) GetErrorResponse(ctx context.Context, resp *HTTPResponse) (*NormalizedError, error) {
	msg := "mock connector: unspecified error"
	return &NormalizedError{Code: "mock_error", Message: msg, Reason: &msg}, nil
}

func (MockConnector) RequiresAccessToken() bool { return false }

func (MockConnector) BuildAccessTokenRequest(ctx context.Context, creds Credentials) (*HTTPRequest, error) {
	return nil, fmt.Errorf("mock connector does not use access tokens")
}

func (MockConnector) HandleAccessTokenResponse(ctx context.Context, resp *HTTPResponse) (string, int, error) {
	return "", 0, fmt.Errorf("mock connector does not use access tokens")
}

func (MockConnector) SessionToken(ctx context.Context, creds Credentials, amount int64, currency string) (*SessionTokenResult, error) {
	return &SessionTokenResult{Token: "mock_session_token", ExpiresIn: 900}, nil
}

func (MockConnector) VerifyWebhookSource(ctx context.Context, creds Credentials, headers map[string]string, body []byte) (bool, error) {
	return headers["X-Mock-Signature"] == "valid", nil
}

type mockWebhookBody struct {
	Event     string `json:"event"`
	Reference string `json:"reference"`
}

func (MockConnector) ParseWebhookEvent(ctx context.Context, creds Credentials, headers map[string]string, body []byte) (domain.IncomingWebhookEvent, string, error) {
	var w mockWebhookBody
	if err := json.Unmarshal(body, &w); err != nil {
		return domain.IncomingEventNotSupported, "", fmt.Errorf("mock connector: decoding webhook body: %w", err)
	}
	switch w.Event {
	case "payment_succeeded":
		return domain.IncomingPaymentIntentSuccess, w.Reference, nil
	case "payment_failed":
		return domain.IncomingPaymentIntentFailure, w.Reference, nil
	case "refund_succeeded":
		return domain.IncomingRefundSuccess, w.Reference, nil
	case "refund_failed":
		return domain.IncomingRefundFailure, w.Reference, nil
	case "dispute_opened":
		return domain.IncomingDisputeOpened, w.Reference, nil
	default:
		return domain.IncomingEventNotSupported, w.Reference, nil
	}
}

var _ Connector = MockConnector{}
