package postgres

import (
	"context"
	"errors"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

var _ ports.EventRepository = (*EventRepo)(nil)

const eventColumns = `id, merchant_id, profile_id, event_type, primary_object_id, primary_object_type,
	payload_enc, delivery_status, delivery_attempts, initial_attempt_id, created_at, modified_at`

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.MerchantID, e.ProfileID, e.EventType, e.PrimaryObjectID, e.PrimaryObjectType,
		e.PayloadEnc, e.DeliveryStatus, e.DeliveryAttempts, e.InitialAttemptID, e.CreatedAt, e.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepo) Get(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

func (r *EventRepo) MarkDelivered(ctx context.Context, id string) error {
	query := `UPDATE events SET delivery_status = $1, modified_at = NOW() WHERE id = $2`
	tag, err := r.pool.Exec(ctx, query, domain.EventDeliveryDelivered, id)
	if err != nil {
		return fmt.Errorf("mark event delivered: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

func (r *EventRepo) IncrementAttempt(ctx context.Context, id string) error {
	query := `UPDATE events SET delivery_attempts = delivery_attempts + 1, modified_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("increment event delivery attempt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

// ListInitialEventsByObject returns events sharing the same causal chain
// as primaryObjectID, ordered so the tracker can fan them out in the
// order they occurred.
func (r *EventRepo) ListInitialEventsByObject(ctx context.Context, primaryObjectID string) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE primary_object_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, primaryObjectID)
	if err != nil {
		return nil, fmt.Errorf("list events by object: %w", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEventRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	return scanEventRows(row)
}

func scanEventRows(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.MerchantID, &e.ProfileID, &e.EventType, &e.PrimaryObjectID, &e.PrimaryObjectType,
		&e.PayloadEnc, &e.DeliveryStatus, &e.DeliveryAttempts, &e.InitialAttemptID, &e.CreatedAt, &e.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return e, nil
}
