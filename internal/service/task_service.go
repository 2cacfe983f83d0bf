package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TaskService provides task CRUD operations over the TaskStore.
// Authorization is a boundary concern: the API rejects unauthenticated
// requests before any of these methods run, so the service itself only
// deals with business outcomes.
type TaskService struct {
	tasks store.TaskStore
}

// NewTaskService creates a TaskService with the given store.
func NewTaskService(tasks store.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create stores a new task with the given name and priority. A zero
// priority falls back to the domain default.
func (s *TaskService) Create(ctx context.Context, name string, priority int) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	task, err := domain.NewTask(name, priority)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Info("task created", "task_id", task.ID)
	return task, nil
}

// GetByID returns the task with the given ID, or ErrTaskNotFound.
func (s *TaskService) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetAll returns every task in insertion order.
func (s *TaskService) GetAll(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateByID overwrites the name and priority of the task with the given
// ID and returns the updated record, or ErrTaskNotFound. A zero priority
// falls back to the domain default, same as Create, so an update can never
// produce a priority unreachable through creation.
func (s *TaskService) UpdateByID(ctx context.Context, id int64, name string, priority int) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	if priority == 0 {
		priority = domain.DefaultTaskPriority
	}

	task, err := s.tasks.UpdateByID(ctx, id, name, priority)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	log.Info("task updated", "task_id", id)
	return task, nil
}

// DeleteByID removes the task with the given ID, or returns
// ErrTaskNotFound. Deleting an already-deleted ID is therefore visible to
// the caller even though the store ends up in the same state.
func (s *TaskService) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.tasks.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	log.Info("task deleted", "task_id", id)
	return nil
}

// DeleteAll removes every task.
func (s *TaskService) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.tasks.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete all tasks: %w", err)
	}

	log.Info("all tasks deleted")
	return nil
}
