package driven

import (
	"context"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// UserStore handles user persistence (MongoDB)
type UserStore interface {
	// Create inserts a new user and returns it with its store-assigned id.
	// Returns domain.ErrAlreadyExists if the email is already taken; the check
	// happens at the store's unique index, not in application code.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// Get retrieves a user by ID.
	// Returns domain.ErrNotFound if no such user exists.
	Get(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by (normalized) email.
	// Returns domain.ErrNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves all users. The password hash is excluded at the
	// query projection level and is empty on every returned record.
	List(ctx context.Context) ([]*domain.User, error)

	// Delete removes a user by ID and returns the deleted record.
	// Returns domain.ErrNotFound if no such user exists.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
