package connector

import (
	"context"
	"net/http"

	"paymentcore/internal/core/domain"
)

// HTTPRequest is the connector-agnostic shape build_request produces:
// everything dispatch needs to actually perform the call.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// HTTPResponse is the raw result of performing an HTTPRequest, handed
// back to handle_response / get_error_response.
type HTTPResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// ConnectorAuthorizeRequest mirrors ports.ConnectorAuthorizeRequest,
// kept as a distinct type so this package has no import cycle back to
// ports; Dispatcher translates between the two at the boundary.
type ConnectorAuthorizeRequest struct {
	Amount        int64
	Currency      string
	PaymentMethod *domain.PaymentMethodSnapshot
	VaultToken    *string
	MandateID     *string
	CaptureMethod domain.CaptureMethod
	ReturnURL     *string
	Metadata      map[string]any
}

// ConnectorResult is the normalized outcome of any connector call.
type ConnectorResult struct {
	Status                 domain.AttemptStatus
	ConnectorTransactionID *string
	RedirectionData        map[string]any
	AmountCaptured         *int64
	Error                  *NormalizedError
	IntegrityCheck         domain.IntegrityCheckResult
	Raw                    map[string]any
}

// SessionTokenResult is a connector's response to the SessionToken flow.
type SessionTokenResult struct {
	Token     string
	ExpiresIn int
}

// CallContext carries the per-call data every BuildXRequest method
// needs: the RouterData fields that matter at the HTTP-building layer,
// without forcing every connector method to juggle Go generics for what
// is, per call, always one concrete flow.
type CallContext struct {
	MerchantID          string
	MerchantConnectorID string
	Credentials         Credentials
	Currency            string
	TestMode            bool
	AccessToken         *string
}

// Connector implements, per flow, the build/handle/error quadruple of
// One value covers every flow it participates in.
type Connector interface {
	Name() string

	// WireUnit names the AmountConvertor this connector expects amounts
	// converted through before BuildRequest runs.
	WireUnit() AmountUnit

	BuildAuthorizeRequest(ctx context.Context, cc CallContext, req ConnectorAuthorizeRequest, convertedAmount any) (*HTTPRequest, error)
	HandleAuthorizeResponse(ctx context.Context, cc CallContext, resp *HTTPResponse) (*ConnectorResult, error)

	// BuildCaptureRequest also receives the attempt's authorized total
	// (canonical minor units) so a connector's response handler can tell
	// a partial capture from a full one.
	BuildCaptureRequest(ctx context.Context, cc CallContext, connectorTransactionID string, convertedAmount any, authorizedAmount int64) (*HTTPRequest, error)
	BuildVoidRequest(ctx context.Context, cc CallContext, connectorTransactionID string, reason *string) (*HTTPRequest, error)
	BuildRefundRequest(ctx context.Context, cc CallContext, connectorTransactionID string, convertedAmount any, reason *string) (*HTTPRequest, error)
	BuildPSyncRequest(ctx context.Context, cc CallContext, connectorTransactionID string) (*HTTPRequest, error)
	BuildRSyncRequest(ctx context.Context, cc CallContext, connectorRefundID string) (*HTTPRequest, error)

	// HandleGenericResponse maps the response of Capture/Void/Refund/
	// PSync/RSync — every flow whose shape is "did the status change,
	// and to what" — through one normalizer keyed by which flow ran.
	HandleGenericResponse(ctx context.Context, flow Flow, resp *HTTPResponse) (*ConnectorResult, error)

	// GetErrorResponse maps a non-2xx HTTPResponse to the 4-field
	// normalized error shape.
	GetErrorResponse(ctx context.Context, resp *HTTPResponse) (*NormalizedError, error)

	// RequiresAccessToken reports whether the AddAccessToken flow must
	// run (and be cached) before this connector's primary flows.
	RequiresAccessToken() bool
	BuildAccessTokenRequest(ctx context.Context, creds Credentials) (*HTTPRequest, error)
	HandleAccessTokenResponse(ctx context.Context, resp *HTTPResponse) (token string, expiresInSeconds int, err error)

	SessionToken(ctx context.Context, creds Credentials, amount int64, currency string) (*SessionTokenResult, error)
	VerifyWebhookSource(ctx context.Context, creds Credentials, headers map[string]string, body []byte) (bool, error)
	ParseWebhookEvent(ctx context.Context, creds Credentials, headers map[string]string, body []byte) (domain.IncomingWebhookEvent, string, error)
}

// Registry resolves a Connector implementation by name.
type Registry struct {
	connectors map[string]Connector
}

// NewRegistry builds a Registry from a list of connectors, keyed by
// their own Name().
func NewRegistry(connectors ...Connector) *Registry {
	r := &Registry{connectors: make(map[string]Connector, len(connectors))}
	for _, c := range connectors {
		r.connectors[c.Name()] = c
	}
	return r
}

// Resolve looks up a connector by name.
func (r *Registry) Resolve(name string) (Connector, bool) {
	c, ok := r.connectors[name]
	return c, ok
}
