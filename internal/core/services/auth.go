package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/custodia-labs/authcore/internal/core/domain"
	"github.com/custodia-labs/authcore/internal/core/ports/driven"
	"github.com/custodia-labs/authcore/internal/core/ports/driving"
)

const (
	// tokenTTL is the fixed validity window of an issued token
	tokenTTL = 4 * 24 * time.Hour

	// dateOfBirthLayout is the accepted wire format for dates of birth
	dateOfBirthLayout = "2006-01-02"

	// dummyPasswordHash is compared against when the email is unknown, so a
	// login against a missing account costs the same as one against a real
	// account with a wrong password.
	dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface
type authService struct {
	users    driven.UserStore
	auth     driven.AuthAdapter
	tokenTTL time.Duration
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(users driven.UserStore, auth driven.AuthAdapter) driving.AuthService {
	return NewAuthServiceWithClock(users, auth, time.Now)
}

// NewAuthServiceWithClock creates a new AuthService with a custom clock.
// Issued-at stamps have second resolution, so tests that need distinct tokens
// inject a clock instead of sleeping across a second boundary.
func NewAuthServiceWithClock(users driven.UserStore, auth driven.AuthAdapter, now func() time.Time) driving.AuthService {
	return &authService{
		users:    users,
		auth:     auth,
		tokenTTL: tokenTTL,
		now:      now,
	}
}

// Register creates a new user and issues a token for it
func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.DateOfBirth == "" {
		return nil, domain.ErrInvalidInput
	}
	dateOfBirth, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	email := normalizeEmail(req.Email)

	// Pre-check for a friendlier failure; the unique index is the authority
	existing, _ := s.users.GetByEmail(ctx, email)
	if existing != nil {
		return nil, domain.ErrAlreadyRegistered
	}

	passwordHash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		DateOfBirth:  dateOfBirth,
		PasswordHash: passwordHash,
	})
	if err != nil {
		// Concurrent registration for the same email lost the race on the
		// unique index; indistinguishable from the pre-check outcome.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and issues a token
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		// A store failure is not a credential failure
		return nil, err
	}

	// Always run exactly one password verification, against a dummy hash when
	// the account does not exist.
	passwordHash := dummyPasswordHash
	if user != nil {
		passwordHash = user.PasswordHash
	}
	match := s.auth.VerifyPassword(req.Password, passwordHash)

	if user == nil || !match {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// ValidateToken verifies a token and resolves its subject to a live user
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}

	claims, err := s.auth.ParseToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, claims.Subject)
	if err != nil {
		// Token outlived its subject; a protected operation must not run
		// against a dangling identity.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// issueToken signs a fresh claim set for the user
func (s *authService) issueToken(user *domain.User) (*domain.AuthResponse, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)

	token, err := s.auth.GenerateToken(&domain.TokenClaims{
		Subject:   user.ID,
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	})
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		User:      user.ToPublic(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// normalizeEmail applies the case policy: emails compare case-insensitively
// and are stored lowercase.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
