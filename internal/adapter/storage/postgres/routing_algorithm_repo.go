package postgres

import (
	"context"
	"errors"
	"fmt"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// RoutingAlgorithmRepo implements ports.RoutingAlgorithmRepository.
type RoutingAlgorithmRepo struct {
	pool Pool
}

// NewRoutingAlgorithmRepo creates a new RoutingAlgorithmRepo.
func NewRoutingAlgorithmRepo(pool Pool) *RoutingAlgorithmRepo {
	return &RoutingAlgorithmRepo{pool: pool}
}

var _ ports.RoutingAlgorithmRepository = (*RoutingAlgorithmRepo)(nil)

const routingAlgorithmColumns = `id, profile_id, name, kind, priority_order, volume_splits, rules,
	default_connector_id, created_at, modified_at`

func (r *RoutingAlgorithmRepo) Create(ctx context.Context, a *domain.RoutingAlgorithm) error {
	priorityOrder, err := toJSON(a.PriorityOrder)
	if err != nil {
		return fmt.Errorf("marshal routing algorithm priority order: %w", err)
	}
	volumeSplits, err := toJSON(a.VolumeSplits)
	if err != nil {
		return fmt.Errorf("marshal routing algorithm volume splits: %w", err)
	}
	rules, err := toJSON(a.Rules)
	if err != nil {
		return fmt.Errorf("marshal routing algorithm rules: %w", err)
	}

	query := `INSERT INTO routing_algorithms (` + routingAlgorithmColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err = r.pool.Exec(ctx, query,
		a.ID, a.ProfileID, a.Name, a.Kind, priorityOrder, volumeSplits, rules,
		a.DefaultConnectorID, a.CreatedAt, a.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert routing algorithm: %w", err)
	}
	return nil
}

func (r *RoutingAlgorithmRepo) Get(ctx context.Context, id string) (*domain.RoutingAlgorithm, error) {
	query := `SELECT ` + routingAlgorithmColumns + ` FROM routing_algorithms WHERE id = $1`
	return scanRoutingAlgorithm(r.pool.QueryRow(ctx, query, id))
}

// GetActiveForProfile returns the most recently created routing
// algorithm row for profileID. Profile.RoutingAlgorithmID is the
// authoritative pointer; this exists for callers (e.g. a dashboard
// listing) that only have the profile at hand.
func (r *RoutingAlgorithmRepo) GetActiveForProfile(ctx context.Context, profileID string) (*domain.RoutingAlgorithm, error) {
	query := `SELECT ` + routingAlgorithmColumns + ` FROM routing_algorithms WHERE profile_id = $1 ORDER BY created_at DESC LIMIT 1`
	return scanRoutingAlgorithm(r.pool.QueryRow(ctx, query, profileID))
}

func scanRoutingAlgorithm(row rowScanner) (*domain.RoutingAlgorithm, error) {
	a := &domain.RoutingAlgorithm{}
	var priorityOrder, volumeSplits, rules []byte
	err := row.Scan(
		&a.ID, &a.ProfileID, &a.Name, &a.Kind, &priorityOrder, &volumeSplits, &rules,
		&a.DefaultConnectorID, &a.CreatedAt, &a.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan routing algorithm: %w", err)
	}
	if err := fromJSON(priorityOrder, &a.PriorityOrder); err != nil {
		return nil, fmt.Errorf("unmarshal routing algorithm priority order: %w", err)
	}
	if err := fromJSON(volumeSplits, &a.VolumeSplits); err != nil {
		return nil, fmt.Errorf("unmarshal routing algorithm volume splits: %w", err)
	}
	if err := fromJSON(rules, &a.Rules); err != nil {
		return nil, fmt.Errorf("unmarshal routing algorithm rules: %w", err)
	}
	return a, nil
}
