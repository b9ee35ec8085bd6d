package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/authcore/internal/core/domain"
	"github.com/custodia-labs/authcore/internal/core/ports/driven"
)

// Ensure MockUserStore implements UserStore
var _ driven.UserStore = (*MockUserStore)(nil)

// MockUserStore is an in-memory implementation of UserStore for testing.
// Email uniqueness is enforced on insert, mirroring the store's unique index.
type MockUserStore struct {
	mu      sync.RWMutex
	seq     int
	users   map[string]*domain.User
	byEmail map[string]*domain.User

	// CreateErr, when set, is returned by Create before any state change
	CreateErr error

	// GetByEmailErr, when set, is returned by GetByEmail instead of a lookup
	GetByEmailErr error
}

// NewMockUserStore creates a new MockUserStore
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return nil, domain.ErrAlreadyExists
	}

	m.seq++
	stored := *user
	stored.ID = fmt.Sprintf("user-%d", m.seq)
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	m.users[stored.ID] = &stored
	m.byEmail[stored.Email] = &stored
	return &stored, nil
}

func (m *MockUserStore) Get(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetByEmailErr != nil {
		return nil, m.GetByEmailErr
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		projected := *user
		projected.PasswordHash = ""
		result = append(result, &projected)
	}
	return result, nil
}

func (m *MockUserStore) Delete(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.byEmail, user.Email)
	delete(m.users, id)
	return user, nil
}
