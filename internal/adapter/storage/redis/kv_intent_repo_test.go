package redis

import (
	"context"
	"testing"
	"time"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingIntentRepo is a map-backed inner repository fake that counts
// calls, so tests can assert whether the KV path shortcut the fallback.
type recordingIntentRepo struct {
	intents     map[string]*domain.PaymentIntent
	createCalls int
	getCalls    int
	updateCalls int
}

func newRecordingIntentRepo() *recordingIntentRepo {
	return &recordingIntentRepo{intents: map[string]*domain.PaymentIntent{}}
}

func (r *recordingIntentRepo) Create(_ context.Context, _ pgx.Tx, intent *domain.PaymentIntent) error {
	r.createCalls++
	r.intents[intent.PaymentID] = intent
	return nil
}

func (r *recordingIntentRepo) Get(_ context.Context, merchantID, paymentID string) (*domain.PaymentIntent, error) {
	r.getCalls++
	intent, ok := r.intents[paymentID]
	if !ok || intent.MerchantID != merchantID {
		return nil, pgx.ErrNoRows
	}
	return intent, nil
}

func (r *recordingIntentRepo) GetForUpdate(ctx context.Context, _ pgx.Tx, merchantID, paymentID string) (*domain.PaymentIntent, error) {
	return r.Get(ctx, merchantID, paymentID)
}

func (r *recordingIntentRepo) Update(_ context.Context, _ pgx.Tx, merchantID, paymentID string, update domain.IntentUpdate) error {
	r.updateCalls++
	intent, ok := r.intents[paymentID]
	if !ok || intent.MerchantID != merchantID {
		return pgx.ErrNoRows
	}
	update.Apply(intent, time.Now().UTC())
	return nil
}

var _ ports.PaymentIntentRepository = (*recordingIntentRepo)(nil)

func setupKVIntentRepo(t *testing.T, scheme domain.StorageScheme) (*KVIntentRepo, *KVStore, *recordingIntentRepo) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	kv := NewKVStore(client)
	inner := newRecordingIntentRepo()
	repo := NewKVIntentRepo(kv, inner, func(context.Context, string) domain.StorageScheme {
		return scheme
	}, zerolog.Nop())
	return repo, kv, inner
}

func kvTestIntent() *domain.PaymentIntent {
	return &domain.PaymentIntent{
		PaymentID:  "pay_kv",
		MerchantID: "mer_kv",
		Amount:     1000,
		Currency:   "USD",
		Status:     domain.IntentStatusRequiresConfirmation,
	}
}

func TestKVIntentRepo_PostgresOnlyPassesThrough(t *testing.T) {
	repo, kv, inner := setupKVIntentRepo(t, domain.StorageSchemePostgresOnly)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, nil, kvTestIntent()))
	assert.Equal(t, 1, inner.createCalls)

	_, found, err := kv.Read(ctx, entityPaymentIntent, "pay_kv")
	require.NoError(t, err)
	assert.False(t, found, "postgres-only merchants must not touch the mirror")

	got, err := repo.Get(ctx, "mer_kv", "pay_kv")
	require.NoError(t, err)
	assert.Equal(t, "pay_kv", got.PaymentID)
	assert.Equal(t, 1, inner.getCalls)
}

func TestKVIntentRepo_RedisKVWritesMirrorAndDrainEntry(t *testing.T) {
	repo, kv, inner := setupKVIntentRepo(t, domain.StorageSchemeRedisKV)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, nil, kvTestIntent()))
	assert.Zero(t, inner.createCalls, "kv path must not write postgres synchronously")

	entry, ok, err := kv.PopDrainEntry(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "payment_intent:pay_kv", entry)

	got, err := repo.Get(ctx, "mer_kv", "pay_kv")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusRequiresConfirmation, got.Status)
	assert.Zero(t, inner.getCalls, "mirror hit must not fall through")
}

func TestKVIntentRepo_UpdateRewritesSnapshot(t *testing.T) {
	repo, kv, _ := setupKVIntentRepo(t, domain.StorageSchemeRedisKV)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, nil, kvTestIntent()))
	_, _, _ = kv.PopDrainEntry(ctx)

	status := domain.IntentStatusSucceeded
	captured := int64(1000)
	require.NoError(t, repo.Update(ctx, nil, "mer_kv", "pay_kv", domain.IntentUpdate{
		UpdatedBy:      "test",
		Status:         &status,
		AmountCaptured: &captured,
	}))

	got, err := repo.Get(ctx, "mer_kv", "pay_kv")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusSucceeded, got.Status)
	assert.Equal(t, int64(1000), got.AmountCaptured)
	// the untouched fields survive the rewrite
	assert.Equal(t, int64(1000), got.Amount)
	assert.Equal(t, "USD", got.Currency)

	// the update enqueued a fresh drain entry for eventual PG persistence
	entry, ok, err := kv.PopDrainEntry(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "payment_intent:pay_kv", entry)
}

func TestKVIntentRepo_MirrorMissFallsBackToPostgres(t *testing.T) {
	repo, _, inner := setupKVIntentRepo(t, domain.StorageSchemeRedisKV)
	ctx := context.Background()

	inner.intents["pay_pg"] = &domain.PaymentIntent{PaymentID: "pay_pg", MerchantID: "mer_kv"}

	got, err := repo.Get(ctx, "mer_kv", "pay_pg")
	require.NoError(t, err)
	assert.Equal(t, "pay_pg", got.PaymentID)
	assert.Equal(t, 1, inner.getCalls)
}

func TestKVIntentRepo_WrongMerchantNotFound(t *testing.T) {
	repo, _, _ := setupKVIntentRepo(t, domain.StorageSchemeRedisKV)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, nil, kvTestIntent()))

	_, err := repo.Get(ctx, "mer_other", "pay_kv")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestKVIntentRepo_UpdateHeldLockTimesOut(t *testing.T) {
	repo, kv, _ := setupKVIntentRepo(t, domain.StorageSchemeRedisKV)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, nil, kvTestIntent()))

	// simulate a concurrent writer holding the advisory lock past the
	// acquisition window
	locked, err := kv.Lock(ctx, entityPaymentIntent, "pay_kv", time.Minute)
	require.NoError(t, err)
	require.True(t, locked)

	status := domain.IntentStatusSucceeded
	err = repo.Update(ctx, nil, "mer_kv", "pay_kv", domain.IntentUpdate{UpdatedBy: "test", Status: &status})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock timeout")
}
