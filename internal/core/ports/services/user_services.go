package services

import (
	"context"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
)

// UserSvcFacade defines the user lookups needed by the placeholder login.
type UserSvcFacade interface {
	// GetUserByUsername retrieves a user for credential checking.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
