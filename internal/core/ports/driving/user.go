package driving

import (
	"context"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// UserService handles operations on authenticated users
type UserService interface {
	// Profile returns the projection for a user id
	Profile(ctx context.Context, id string) (*domain.PublicUser, error)

	// List returns projections for all users
	List(ctx context.Context) ([]*domain.PublicUser, error)

	// Delete removes a user by id.
	// Returns domain.ErrUserNotFound if the id is unknown.
	Delete(ctx context.Context, id string) error
}
