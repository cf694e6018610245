package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// TrackerTaskRepo implements ports.TrackerTaskRepository: the durable
// mirror of every process_tracker task alongside its Redis Stream
// entry, so retry history and final outcome survive a stream rebuild.
type TrackerTaskRepo struct {
	pool Pool
}

// NewTrackerTaskRepo creates a new TrackerTaskRepo.
func NewTrackerTaskRepo(pool Pool) *TrackerTaskRepo {
	return &TrackerTaskRepo{pool: pool}
}

var _ ports.TrackerTaskRepository = (*TrackerTaskRepo)(nil)

const trackerTaskColumns = `id, task_type, reference_id, connector_name, retry_count, schedule_time, status, payload`

func (r *TrackerTaskRepo) Create(ctx context.Context, task ports.TrackerTask) error {
	payload, err := toJSON(task.Payload)
	if err != nil {
		return fmt.Errorf("marshal tracker task payload: %w", err)
	}
	query := `INSERT INTO process_tracker (` + trackerTaskColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err = r.pool.Exec(ctx, query,
		task.ID, task.TaskType, task.ReferenceID, task.ConnectorName, task.RetryCount, task.Schedule, task.Status, payload,
	)
	if err != nil {
		return fmt.Errorf("insert tracker task: %w", err)
	}
	return nil
}

func (r *TrackerTaskRepo) Get(ctx context.Context, id string) (*ports.TrackerTask, error) {
	query := `SELECT ` + trackerTaskColumns + ` FROM process_tracker WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)

	task := &ports.TrackerTask{}
	var payload []byte
	err := row.Scan(&task.ID, &task.TaskType, &task.ReferenceID, &task.ConnectorName, &task.RetryCount, &task.Schedule, &task.Status, &payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan tracker task: %w", err)
	}
	if err := fromJSON(payload, &task.Payload); err != nil {
		return nil, fmt.Errorf("unmarshal tracker task payload: %w", err)
	}
	return task, nil
}

func (r *TrackerTaskRepo) UpdateStatus(ctx context.Context, id, status string, retryCount int, schedule time.Time) error {
	query := `UPDATE process_tracker SET status = $1, retry_count = $2, schedule_time = $3 WHERE id = $4`
	tag, err := r.pool.Exec(ctx, query, status, retryCount, schedule, id)
	if err != nil {
		return fmt.Errorf("update tracker task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tracker task not found: %s", id)
	}
	return nil
}
