package services

import (
	"context"
	"fmt"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portsrepo "github.com/pharmastock/pharmastock_backend/internal/core/ports/repositories"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
)

// userService implements the user lookups for the placeholder login.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", username, err)
	}
	return user, nil
}
