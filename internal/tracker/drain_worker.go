package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// kvStore is the Redis surface the drain worker needs from
// internal/adapter/storage/redis.KVStore, narrowed to an interface so
// this package stays free of an adapter import.
type kvStore interface {
	Read(ctx context.Context, entityType, id string) ([]byte, bool, error)
	PopDrainEntry(ctx context.Context) (string, bool, error)
}

// Persister writes one REDIS_KV-scheme entity's mirrored payload into
// Postgres. Registered per entityType by whichever adapter owns that
// entity's table (e.g. the payments package registers "payment_intent").
type Persister func(ctx context.Context, id string, payload []byte) error

// DrainWorker pops "entityType:id" references off the KV store's
// drainer queue and persists the mirrored payload through the
// registered Persister, so a merchant on storage_scheme=REDIS_KV still
// gets Postgres as the eventual system of record.
type DrainWorker struct {
	store      kvStore
	persisters map[string]Persister
	pollEvery  time.Duration
	log        zerolog.Logger
}

// NewDrainWorker creates a DrainWorker polling store every pollEvery
// when its drainer queue runs dry.
func NewDrainWorker(store kvStore, pollEvery time.Duration, log zerolog.Logger) *DrainWorker {
	return &DrainWorker{
		store:      store,
		persisters: make(map[string]Persister),
		pollEvery:  pollEvery,
		log:        log,
	}
}

// Register binds entityType to the Postgres persister that should run
// whenever that entity type appears in the drainer queue.
func (w *DrainWorker) Register(entityType string, persister Persister) {
	w.persisters[entityType] = persister
}

// Run drains entries until ctx is canceled. One failed persist logs
// and continues — the entry is a queue pop, not a transactional claim,
// so a dropped failure is visible only in logs.
func (w *DrainWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		drained, err := w.drainOnce(ctx)
		if err != nil {
			return err
		}
		if drained {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// drainOnce pops and persists a single entry. Returns drained=true when
// an entry was found (whether or not it persisted cleanly), so Run can
// keep draining without waiting out the poll interval between entries.
func (w *DrainWorker) drainOnce(ctx context.Context) (bool, error) {
	entry, ok, err := w.store.PopDrainEntry(ctx)
	if err != nil {
		return false, fmt.Errorf("popping drain entry: %w", err)
	}
	if !ok {
		return false, nil
	}

	entityType, id, ok := strings.Cut(entry, ":")
	if !ok {
		w.log.Error().Str("entry", entry).Msg("tracker: malformed drain entry, dropping")
		return true, nil
	}

	persister, ok := w.persisters[entityType]
	if !ok {
		w.log.Warn().Str("entity_type", entityType).Msg("tracker: no persister registered, dropping drain entry")
		return true, nil
	}

	payload, found, err := w.store.Read(ctx, entityType, id)
	if err != nil {
		w.log.Error().Err(err).Str("entity_type", entityType).Str("id", id).Msg("tracker: failed reading mirrored entity")
		return true, nil
	}
	if !found {
		w.log.Warn().Str("entity_type", entityType).Str("id", id).Msg("tracker: drain entry's mirrored payload already gone")
		return true, nil
	}

	if err := persister(ctx, id, payload); err != nil {
		w.log.Error().Err(err).Str("entity_type", entityType).Str("id", id).Msg("tracker: failed to persist drained entity")
	}
	return true, nil
}
