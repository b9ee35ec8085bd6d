package driving

import (
	"context"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// AuthService handles registration, login and token validation
type AuthService interface {
	// Register creates a new user and returns its projection plus a fresh token.
	// Returns domain.ErrAlreadyRegistered if the email is taken and
	// domain.ErrInvalidInput on bad input.
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)

	// Login verifies credentials and returns the user projection plus a fresh
	// token. Unknown email and wrong password both return
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)

	// ValidateToken verifies a token and resolves its subject to a live user.
	// Returns domain.ErrUserNotFound if the subject was deleted after issuance.
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}
