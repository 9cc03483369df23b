package memory

import (
	"context"
	"sync"

	"github.com/pharmastock/pharmastock_backend/internal/apperrors"
	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portsrepo "github.com/pharmastock/pharmastock_backend/internal/core/ports/repositories"
)

// UserRepository is a minimal in-memory user store for the placeholder login.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User // Keyed by username
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]domain.User),
	}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

// SaveUser persists a user, replacing any existing entry with the same username.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.Username] = user
	return nil
}

// FindUserByUsername retrieves a user by login name.
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	found := user
	return &found, nil
}
