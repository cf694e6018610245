package auditsvc

import (
	"context"
	"testing"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLog_PersistsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuditRepository(ctrl)
	svc := New(repo, zerolog.Nop())

	persisted := make(chan *domain.AuditEntry, 1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.AuditEntry) error {
			persisted <- entry
			return nil
		})

	svc.Log(context.Background(), &domain.AuditEntry{
		ID:           "aud_1",
		Action:       domain.AuditActionPaymentCreate,
		ResourceType: "payment",
		IPAddress:    "1.2.3.4",
		CreatedAt:    time.Now().UTC(),
	})

	select {
	case entry := <-persisted:
		assert.Equal(t, domain.AuditActionPaymentCreate, entry.Action)
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was never persisted")
	}
}

func TestLog_NilRepoIsLogOnly(t *testing.T) {
	svc := New(nil, zerolog.Nop())

	// must not panic or block
	svc.Log(context.Background(), &domain.AuditEntry{
		ID:     "aud_1",
		Action: domain.AuditActionRefundCreate,
	})
	require.NotNil(t, svc)
}
