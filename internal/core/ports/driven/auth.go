package driven

import "github.com/custodia-labs/authcore/internal/core/domain"

// AuthAdapter handles authentication cryptographic operations.
// It holds no mutable state and is safe for concurrent per-request use.
type AuthAdapter interface {
	// Password operations
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool

	// Token operations. ParseToken reports failures with the
	// domain.ErrToken* / domain.ErrSignatureInvalid sentinels.
	GenerateToken(claims *domain.TokenClaims) (string, error)
	ParseToken(token string) (*domain.TokenClaims, error)
}
