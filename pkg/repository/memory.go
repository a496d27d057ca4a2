package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
)

// Memory implements UserRepository with in-memory storage
type Memory struct {
	mu          sync.RWMutex
	users       map[types.UserID]*model.User
	userCounter types.UserID
}

// NewMemory creates a new memory repository holding seed
func NewMemory(seed ...model.User) interfaces.UserRepository {
	m := &Memory{
		users: make(map[types.UserID]*model.User),
	}
	for _, u := range seed {
		userCopy := u
		m.users[u.ID] = &userCopy
		if u.ID > m.userCounter {
			m.userCounter = u.ID
		}
	}
	return m
}

// ListUsers returns all users ordered by ID
func (m *Memory) ListUsers(ctx context.Context) ([]*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*model.User, 0, len(m.users))
	for _, u := range m.users {
		userCopy := *u
		users = append(users, &userCopy)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	return users, nil
}

// GetUser retrieves a user by ID
func (m *Memory) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrUserNotFound, "failed to get user",
			goerr.V("id", id),
			goerr.T(model.ErrTagUserNotFound))
	}

	// Return a copy to prevent external modifications
	userCopy := *user
	return &userCopy, nil
}

// CreateUser stores user under the next sequential ID
func (m *Memory) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user == nil {
		return nil, goerr.New("user is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.userCounter++
	userCopy := *user
	userCopy.ID = m.userCounter
	m.users[userCopy.ID] = &userCopy

	created := userCopy
	return &created, nil
}

// UpdateUser applies patch to a stored user. A missing user is not created.
func (m *Memory) UpdateUser(ctx context.Context, id types.UserID, patch model.UserPatch) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.users[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrUserNotFound, "failed to update user",
			goerr.V("id", id),
			goerr.T(model.ErrTagUserNotFound))
	}

	updated := patch.Apply(*current)
	m.users[id] = &updated

	result := updated
	return &result, nil
}

// DeleteUser deletes a user. Deleting a missing user is not an error.
func (m *Memory) DeleteUser(ctx context.Context, id types.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, id)
	return nil
}

// Close closes the memory repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
