package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MockTaskStore is an in-memory implementation of store.TaskStore.
type MockTaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]*domain.Task
	nextID int64

	// Err, when set, is returned by every method.
	Err error

	// Calls counts every store method invocation. Tests use it to verify
	// that unauthenticated requests never touch the store.
	Calls int
}

// NewMockTaskStore creates an empty MockTaskStore.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements store.TaskStore.Create.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if m.Err != nil {
		return m.Err
	}

	task.ID = m.nextID
	m.nextID++
	copied := *task
	m.tasks[task.ID] = &copied
	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}

	task, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// GetAll implements store.TaskStore.GetAll.
func (m *MockTaskStore) GetAll(ctx context.Context) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}

	tasks := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		copied := *task
		tasks = append(tasks, &copied)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// UpdateByID implements store.TaskStore.UpdateByID.
func (m *MockTaskStore) UpdateByID(ctx context.Context, id int64, name string, priority int) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}

	task, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	task.Name = name
	task.Priority = priority
	task.UpdatedAt = time.Now().UTC()
	copied := *task
	return &copied, nil
}

// DeleteByID implements store.TaskStore.DeleteByID.
func (m *MockTaskStore) DeleteByID(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

// DeleteAll implements store.TaskStore.DeleteAll.
func (m *MockTaskStore) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if m.Err != nil {
		return m.Err
	}

	m.tasks = make(map[int64]*domain.Task)
	return nil
}
