package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/internal/core/ports/mocks"
	"paymentcore/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type webhookTestDeps struct {
	svc        *Service
	merchants  *mocks.MockMerchantRepository
	events     *mocks.MockEventRepository
	connectors *mocks.MockConnectorDispatcher
	payments   *mocks.MockPaymentService
	refunds    *mocks.MockRefundService
	keyMgr     *mocks.MockKeyManagerService
	nonces     *mocks.MockNonceStore
	tracker    *mocks.MockTrackerProducer
	httpClient *fakeHTTPClient
	ctrl       *gomock.Controller
}

// fakeHTTPClient records the last request and replays a scripted response.
type fakeHTTPClient struct {
	lastRequest *http.Request
	lastBody    []byte
	status      int
	err         error
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	f.lastRequest = req
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func setupWebhookService(t *testing.T) *webhookTestDeps {
	ctrl := gomock.NewController(t)
	d := &webhookTestDeps{
		merchants:  mocks.NewMockMerchantRepository(ctrl),
		events:     mocks.NewMockEventRepository(ctrl),
		connectors: mocks.NewMockConnectorDispatcher(ctrl),
		payments:   mocks.NewMockPaymentService(ctrl),
		refunds:    mocks.NewMockRefundService(ctrl),
		keyMgr:     mocks.NewMockKeyManagerService(ctrl),
		nonces:     mocks.NewMockNonceStore(ctrl),
		tracker:    mocks.NewMockTrackerProducer(ctrl),
		httpClient: &fakeHTTPClient{status: http.StatusOK},
		ctrl:       ctrl,
	}
	d.svc = New(
		d.merchants, d.events, d.connectors, d.payments, d.refunds,
		d.keyMgr, d.nonces, d.tracker, d.httpClient, zerolog.Nop(),
	)
	return d
}

func strPtr(s string) *string { return &s }

func activeMerchant() *domain.MerchantAccount {
	return &domain.MerchantAccount{
		ID:               "mer_test",
		Name:             "Test Merchant",
		WebhookURL:       strPtr("https://merchant.example.com/hooks"),
		WebhookSecretEnc: "enc_secret",
		WebhookSigAlgo:   "HMAC-SHA256",
		IsActive:         true,
	}
}

func mockConnectorAccount() domain.MerchantConnectorAccount {
	return domain.MerchantConnectorAccount{
		ID:            "mca_test",
		ProfileID:     "prof_test",
		MerchantID:    "mer_test",
		ConnectorName: "mock",
	}
}

// ==================== HandleIncoming ====================

func TestHandleIncoming_ValidSignatureDrivesSync(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	body := []byte(`{"type":"payment.succeeded","id":"pay_1"}`)

	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(activeMerchant(), nil)
	d.merchants.EXPECT().ListProfilesByMerchant(ctx, "mer_test").
		Return([]domain.Profile{{ID: "prof_test", MerchantID: "mer_test"}}, nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").
		Return([]domain.MerchantConnectorAccount{mockConnectorAccount()}, nil)
	d.connectors.EXPECT().VerifyWebhookSource(ctx, gomock.Any(), gomock.Any(), body).Return(true, nil)
	d.connectors.EXPECT().ParseWebhookEvent(ctx, gomock.Any(), gomock.Any(), body).
		Return(domain.IncomingPaymentIntentSuccess, "pay_1", nil)
	d.nonces.EXPECT().CheckAndSet(ctx, "mer_test", gomock.Any(), gomock.Any()).Return(true, nil)
	d.payments.EXPECT().Sync(ctx, "mer_test", "pay_1", true).Return(&domain.PaymentIntent{}, nil)

	err := d.svc.HandleIncoming(ctx, ports.InboundWebhookRequest{
		MerchantID:    "mer_test",
		ConnectorName: "mock",
		Body:          body,
	})
	require.NoError(t, err)
}

func TestHandleIncoming_DuplicateDeliveryIgnored(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	body := []byte(`{"type":"payment.succeeded","id":"pay_1"}`)

	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(activeMerchant(), nil)
	d.merchants.EXPECT().ListProfilesByMerchant(ctx, "mer_test").
		Return([]domain.Profile{{ID: "prof_test"}}, nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").
		Return([]domain.MerchantConnectorAccount{mockConnectorAccount()}, nil)
	d.connectors.EXPECT().VerifyWebhookSource(ctx, gomock.Any(), gomock.Any(), body).Return(true, nil)
	d.connectors.EXPECT().ParseWebhookEvent(ctx, gomock.Any(), gomock.Any(), body).
		Return(domain.IncomingPaymentIntentSuccess, "pay_1", nil)
	// second delivery of the same (connector, event) pair
	d.nonces.EXPECT().CheckAndSet(ctx, "mer_test", gomock.Any(), gomock.Any()).Return(false, nil)

	// no payments.Sync expectation: the duplicate must not re-drive the
	// state machine
	err := d.svc.HandleIncoming(ctx, ports.InboundWebhookRequest{
		MerchantID:    "mer_test",
		ConnectorName: "mock",
		Body:          body,
	})
	require.NoError(t, err)
}

func TestHandleIncoming_BadSignatureRejected(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	body := []byte(`{}`)

	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(activeMerchant(), nil)
	d.merchants.EXPECT().ListProfilesByMerchant(ctx, "mer_test").
		Return([]domain.Profile{{ID: "prof_test"}}, nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").
		Return([]domain.MerchantConnectorAccount{mockConnectorAccount()}, nil)
	d.connectors.EXPECT().VerifyWebhookSource(ctx, gomock.Any(), gomock.Any(), body).Return(false, nil)

	err := d.svc.HandleIncoming(ctx, ports.InboundWebhookRequest{
		MerchantID:    "mer_test",
		ConnectorName: "mock",
		Body:          body,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryValidation, appErr.Category)
}

func TestHandleIncoming_InactiveMerchant(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := activeMerchant()
	merchant.IsActive = false
	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(merchant, nil)

	err := d.svc.HandleIncoming(ctx, ports.InboundWebhookRequest{
		MerchantID:    "mer_test",
		ConnectorName: "mock",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.CategoryPreconditionFailed, appErr.Category)
}

func TestHandleIncoming_RefundEventDrivesRSync(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	body := []byte(`{"type":"refund.succeeded","id":"ref_1"}`)

	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(activeMerchant(), nil)
	d.merchants.EXPECT().ListProfilesByMerchant(ctx, "mer_test").
		Return([]domain.Profile{{ID: "prof_test"}}, nil)
	d.merchants.EXPECT().GetConnectorAccountsByProfile(ctx, "prof_test").
		Return([]domain.MerchantConnectorAccount{mockConnectorAccount()}, nil)
	d.connectors.EXPECT().VerifyWebhookSource(ctx, gomock.Any(), gomock.Any(), body).Return(true, nil)
	d.connectors.EXPECT().ParseWebhookEvent(ctx, gomock.Any(), gomock.Any(), body).
		Return(domain.IncomingRefundSuccess, "ref_1", nil)
	d.nonces.EXPECT().CheckAndSet(ctx, "mer_test", gomock.Any(), gomock.Any()).Return(true, nil)
	d.refunds.EXPECT().SyncRefund(ctx, "mer_test", "ref_1").Return(&domain.Refund{}, nil)

	err := d.svc.HandleIncoming(ctx, ports.InboundWebhookRequest{
		MerchantID:    "mer_test",
		ConnectorName: "mock",
		Body:          body,
	})
	require.NoError(t, err)
}

// ==================== EnqueueOutgoing ====================

func TestEnqueueOutgoing_PersistsAndSchedules(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	event := &domain.Event{ID: "evt_1", MerchantID: "mer_test", EventType: domain.EventPaymentSucceeded}

	d.events.EXPECT().Create(ctx, event).Return(nil)
	d.tracker.EXPECT().Enqueue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, task ports.TrackerTask) error {
			assert.Equal(t, "webhook_delivery", task.TaskType)
			assert.Equal(t, "evt_1", task.ReferenceID)
			return nil
		})

	require.NoError(t, d.svc.EnqueueOutgoing(ctx, event))
}

// ==================== DeliverOutgoing ====================

func pendingEvent() *domain.Event {
	return &domain.Event{
		ID:                "evt_1",
		MerchantID:        "mer_test",
		EventType:         domain.EventPaymentSucceeded,
		PrimaryObjectID:   "pay_1",
		PrimaryObjectType: "payment",
		DeliveryStatus:    domain.EventDeliveryPending,
		CreatedAt:         time.Now().UTC(),
	}
}

func TestDeliverOutgoing_SignatureRoundTrip(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	secret := []byte("whsec_test_secret")

	d.events.EXPECT().Get(ctx, "evt_1").Return(pendingEvent(), nil)
	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(activeMerchant(), nil)
	d.keyMgr.EXPECT().Decrypt(ctx, "mer_test", "enc_secret").Return(secret, nil)
	d.events.EXPECT().IncrementAttempt(ctx, "evt_1").Return(nil)
	d.events.EXPECT().MarkDelivered(ctx, "evt_1").Return(nil)

	require.NoError(t, d.svc.DeliverOutgoing(ctx, "evt_1"))

	require.NotNil(t, d.httpClient.lastRequest)
	assert.Equal(t, "https://merchant.example.com/hooks", d.httpClient.lastRequest.URL.String())
	got := d.httpClient.lastRequest.Header.Get("X-Webhook-Signature-v1")
	require.NotEmpty(t, got)

	// the signature verifies against the matching secret...
	mac := hmac.New(sha256.New, secret)
	mac.Write(d.httpClient.lastBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)

	// ...and fails for any other
	wrong := hmac.New(sha256.New, []byte("whsec_other"))
	wrong.Write(d.httpClient.lastBody)
	assert.NotEqual(t, hex.EncodeToString(wrong.Sum(nil)), got)
}

func TestDeliverOutgoing_SHA512Algo(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	secret := []byte("whsec_test_secret")
	merchant := activeMerchant()
	merchant.WebhookSigAlgo = "HMAC-SHA512"

	d.events.EXPECT().Get(ctx, "evt_1").Return(pendingEvent(), nil)
	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(merchant, nil)
	d.keyMgr.EXPECT().Decrypt(ctx, "mer_test", "enc_secret").Return(secret, nil)
	d.events.EXPECT().IncrementAttempt(ctx, "evt_1").Return(nil)
	d.events.EXPECT().MarkDelivered(ctx, "evt_1").Return(nil)

	require.NoError(t, d.svc.DeliverOutgoing(ctx, "evt_1"))

	mac := hmac.New(sha512.New, secret)
	mac.Write(d.httpClient.lastBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)),
		d.httpClient.lastRequest.Header.Get("X-Webhook-Signature-v1"))
}

func TestDeliverOutgoing_Non2xxIsRetriable(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()
	d.httpClient.status = http.StatusBadGateway

	ctx := context.Background()
	d.events.EXPECT().Get(ctx, "evt_1").Return(pendingEvent(), nil)
	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(activeMerchant(), nil)
	d.keyMgr.EXPECT().Decrypt(ctx, "mer_test", "enc_secret").Return([]byte("s"), nil)
	d.events.EXPECT().IncrementAttempt(ctx, "evt_1").Return(nil)

	err := d.svc.DeliverOutgoing(ctx, "evt_1")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.True(t, appErr.IsRetriable())
}

func TestDeliverOutgoing_AlreadyDeliveredIsNoOp(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	event := pendingEvent()
	event.DeliveryStatus = domain.EventDeliveryDelivered
	d.events.EXPECT().Get(ctx, "evt_1").Return(event, nil)

	require.NoError(t, d.svc.DeliverOutgoing(ctx, "evt_1"))
	assert.Nil(t, d.httpClient.lastRequest)
}

func TestDeliverOutgoing_NoURLConfigured(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	merchant := activeMerchant()
	merchant.WebhookURL = nil

	d.events.EXPECT().Get(ctx, "evt_1").Return(pendingEvent(), nil)
	d.merchants.EXPECT().GetMerchantByID(ctx, "mer_test").Return(merchant, nil)
	d.events.EXPECT().MarkDelivered(ctx, "evt_1").Return(nil)

	require.NoError(t, d.svc.DeliverOutgoing(ctx, "evt_1"))
	assert.Nil(t, d.httpClient.lastRequest)
}
