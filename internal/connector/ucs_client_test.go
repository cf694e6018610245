package connector

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paymentcore/internal/core/domain"
)

func TestUCSFullMethod(t *testing.T) {
	assert.Equal(t, "/ucs.v1.ConnectorService/stripe_authorize", ucsFullMethod("stripe", FlowAuthorize))
	assert.Equal(t, "/ucs.v1.ConnectorService/adyen_psync", ucsFullMethod("adyen", FlowPSync))
}

func TestDispatcher_DoFlow_FallsBackToHTTPWhenUCSClientNil(t *testing.T) {
	registry := NewRegistry(MockConnector{})
	km := &fakeKeyManager{}
	doer := &scriptedDoer{responses: []*http.Response{jsonResponse(200, `{}`)}}
	d := newTestDispatcher(registry, doer, km)

	mca := &domain.MerchantConnectorAccount{ID: "mca_1", MerchantID: "merchant_1", ConnectorName: "mock", UseUCS: true}
	resp, err := d.doFlow(context.Background(), mca, FlowAuthorize, &HTTPRequest{Method: "POST", URL: "mock://x"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, doer.calls, 1)
}
