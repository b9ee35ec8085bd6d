package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound indicates a requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness constraint was violated at the store
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates invalid request input
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyRegistered indicates a registration attempt for an email that is taken
	ErrAlreadyRegistered = errors.New("user already exists")

	// ErrInvalidCredentials indicates authentication failure.
	// The same error covers unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenMissing indicates no credential was presented
	ErrTokenMissing = errors.New("missing token")

	// ErrTokenMalformed indicates the credential could not be decoded as a signed token
	ErrTokenMalformed = errors.New("malformed token")

	// ErrTokenExpired indicates a well-signed token past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrSignatureInvalid indicates a decodable token whose signature does not match
	ErrSignatureInvalid = errors.New("invalid token signature")

	// ErrUserNotFound indicates a token subject (or delete target) that no longer exists
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreUnavailable indicates the credential store could not be reached
	ErrStoreUnavailable = errors.New("store unavailable")
)
