package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/authcore/internal/core/domain"
	"github.com/custodia-labs/authcore/internal/core/ports/driven"
	"github.com/custodia-labs/authcore/internal/core/ports/driving"
)

// Ensure userService implements UserService
var _ driving.UserService = (*userService)(nil)

// userService implements the UserService interface
type userService struct {
	users driven.UserStore
}

// NewUserService creates a new UserService
func NewUserService(users driven.UserStore) driving.UserService {
	return &userService{users: users}
}

// Profile returns the projection for a user id
func (s *userService) Profile(ctx context.Context, id string) (*domain.PublicUser, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToPublic(), nil
}

// List returns projections for all users
func (s *userService) List(ctx context.Context) ([]*domain.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.PublicUser, 0, len(users))
	for _, user := range users {
		result = append(result, user.ToPublic())
	}
	return result, nil
}

// Delete removes a user by id
func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}
