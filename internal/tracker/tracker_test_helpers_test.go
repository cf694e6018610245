package tracker

import (
	"context"
	"sync"
	"time"

	"paymentcore/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// fakeTrackerRepo is an in-memory ports.TrackerTaskRepository double.
type fakeTrackerRepo struct {
	mu    sync.Mutex
	tasks map[string]ports.TrackerTask
}

func newFakeTrackerRepo() *fakeTrackerRepo {
	return &fakeTrackerRepo{tasks: make(map[string]ports.TrackerTask)}
}

func (r *fakeTrackerRepo) Create(_ context.Context, task ports.TrackerTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTrackerRepo) Get(_ context.Context, id string) (*ports.TrackerTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &task, nil
}

func (r *fakeTrackerRepo) UpdateStatus(_ context.Context, id, status string, retryCount int, schedule time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return pgx.ErrNoRows
	}
	task.Status = status
	task.RetryCount = retryCount
	task.Schedule = schedule
	r.tasks[id] = task
	return nil
}
