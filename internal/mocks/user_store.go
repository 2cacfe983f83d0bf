package mocks

import (
	"context"
	"sync"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore.
type MockUserStore struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int64

	// CreateErr, when set, is returned by Create instead of storing.
	CreateErr error

	// Calls counts every store method invocation.
	Calls int
}

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:  make(map[string]*domain.User),
		nextID: 1,
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore.Create.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	if m.CreateErr != nil {
		return m.CreateErr
	}
	if _, exists := m.users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	user.ID = m.nextID
	m.nextID++
	m.users[user.Username] = user
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	user, ok := m.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}
