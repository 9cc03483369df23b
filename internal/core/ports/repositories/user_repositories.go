package repositories

import (
	"context"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
)

// UserRepositoryFacade defines the operations needed for the placeholder login.
type UserRepositoryFacade interface {
	// FindUserByUsername retrieves a user by their login name.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// SaveUser persists a user (used for seeding the admin account).
	SaveUser(ctx context.Context, user domain.User) error
}
