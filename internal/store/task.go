package store

import (
	"context"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskStore defines the interface for task record persistence.
// Each operation is a single atomic mutation or query; there are no
// partial writes.
type TaskStore interface {
	// Create saves a new task, assigning its ID and timestamps.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its numeric ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// GetAll returns every task in insertion (primary-key) order.
	// An empty store yields an empty slice, not nil.
	GetAll(ctx context.Context) ([]*domain.Task, error)

	// UpdateByID overwrites the name and priority of an existing task and
	// refreshes its updated_at timestamp. Returns the updated task, or
	// ErrTaskNotFound if the ID does not exist.
	UpdateByID(ctx context.Context, id int64, name string, priority int) (*domain.Task, error)

	// DeleteByID removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll removes every task. A no-op on an empty store.
	DeleteAll(ctx context.Context) error
}
