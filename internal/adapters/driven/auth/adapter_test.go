package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

func TestNewAdapter(t *testing.T) {
	adapter := NewAdapter("test-secret")
	if adapter == nil {
		t.Fatal("expected non-nil adapter")
	}
	if string(adapter.jwtSecret) != "test-secret" {
		t.Error("expected jwt secret to be set")
	}
	if adapter.bcryptCost != bcrypt.DefaultCost {
		t.Errorf("expected default bcrypt cost %d, got %d", bcrypt.DefaultCost, adapter.bcryptCost)
	}
}

func TestHashPassword(t *testing.T) {
	adapter := NewAdapterWithCost("secret", bcrypt.MinCost) // Low cost for faster tests

	hash, err := adapter.HashPassword("mypassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash")
	}
	if hash == "mypassword" {
		t.Error("hash should not equal plaintext password")
	}
	if len(hash) < 60 {
		t.Error("expected bcrypt hash to be at least 60 characters")
	}
}

func TestHashPassword_ProductionCost(t *testing.T) {
	adapter := NewAdapter("secret")

	hash, err := adapter.HashPassword("mypassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("failed to read hash cost: %v", err)
	}
	if cost != 10 {
		t.Errorf("expected work factor 10, got %d", cost)
	}
}

func TestHashPassword_DifferentHashesForSamePassword(t *testing.T) {
	adapter := NewAdapterWithCost("secret", bcrypt.MinCost)

	hash1, _ := adapter.HashPassword("password123")
	hash2, _ := adapter.HashPassword("password123")

	if hash1 == hash2 {
		t.Error("expected different hashes for same password (due to salt)")
	}

	// Both salted hashes still verify against the original plaintext
	if !adapter.VerifyPassword("password123", hash1) {
		t.Error("expected first hash to verify")
	}
	if !adapter.VerifyPassword("password123", hash2) {
		t.Error("expected second hash to verify")
	}
}

func TestVerifyPassword_CorrectPassword(t *testing.T) {
	adapter := NewAdapterWithCost("secret", bcrypt.MinCost)

	password := "correctpassword"
	hash, _ := adapter.HashPassword(password)

	if !adapter.VerifyPassword(password, hash) {
		t.Error("expected password verification to succeed")
	}
}

func TestVerifyPassword_IncorrectPassword(t *testing.T) {
	adapter := NewAdapterWithCost("secret", bcrypt.MinCost)

	hash, _ := adapter.HashPassword("correctpassword")

	if adapter.VerifyPassword("wrongpassword", hash) {
		t.Error("expected password verification to fail for wrong password")
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	adapter := NewAdapter("secret")

	if adapter.VerifyPassword("password", "not-a-valid-hash") {
		t.Error("expected verification to fail for invalid hash")
	}
}

func testClaims(ttl time.Duration) *domain.TokenClaims {
	now := time.Now()
	return &domain.TokenClaims{
		Subject:   "64f1c0ffee00000000000001",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}
}

func TestGenerateToken(t *testing.T) {
	adapter := NewAdapter("test-jwt-secret")

	token, err := adapter.GenerateToken(testClaims(time.Hour))
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if token == "" {
		t.Error("expected non-empty token")
	}
	// JWT tokens have 3 parts separated by dots
	if parts := strings.Count(token, "."); parts != 2 {
		t.Errorf("expected JWT with 2 dots (3 parts), got %d dots", parts)
	}
}

func TestParseToken_ValidToken(t *testing.T) {
	adapter := NewAdapter("test-jwt-secret")

	original := testClaims(96 * time.Hour)
	token, _ := adapter.GenerateToken(original)

	parsed, err := adapter.ParseToken(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	if parsed.Subject != original.Subject {
		t.Errorf("expected subject %s, got %s", original.Subject, parsed.Subject)
	}
	if parsed.IssuedAt != original.IssuedAt {
		t.Errorf("expected issued-at %d, got %d", original.IssuedAt, parsed.IssuedAt)
	}
	if parsed.ExpiresAt != original.ExpiresAt {
		t.Errorf("expected expiry %d, got %d", original.ExpiresAt, parsed.ExpiresAt)
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	adapter := NewAdapter("test-jwt-secret")

	// Well-signed token that expired two hours ago
	pastTime := time.Now().Add(-2 * time.Hour)
	token, _ := adapter.GenerateToken(&domain.TokenClaims{
		Subject:   "64f1c0ffee00000000000001",
		IssuedAt:  pastTime.Add(-96 * time.Hour).Unix(),
		ExpiresAt: pastTime.Unix(),
	})

	_, err := adapter.ParseToken(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	adapter1 := NewAdapter("secret-1")
	adapter2 := NewAdapter("secret-2")

	token, _ := adapter1.GenerateToken(testClaims(time.Hour))

	_, err := adapter2.ParseToken(token)
	if !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Errorf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestParseToken_TamperedSignatureBeatsExpiry(t *testing.T) {
	adapter1 := NewAdapter("secret-1")
	adapter2 := NewAdapter("secret-2")

	// Expired AND signed with the wrong secret: the tampering is what gets reported
	pastTime := time.Now().Add(-time.Hour)
	token, _ := adapter1.GenerateToken(&domain.TokenClaims{
		Subject:   "64f1c0ffee00000000000001",
		IssuedAt:  pastTime.Add(-time.Hour).Unix(),
		ExpiresAt: pastTime.Unix(),
	})

	_, err := adapter2.ParseToken(token)
	if !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Errorf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestParseToken_MalformedToken(t *testing.T) {
	adapter := NewAdapter("test-secret")

	testCases := []string{
		"",
		"not-a-jwt",
		"only.two.parts.missing",
		"header.payload", // missing signature
	}

	for _, tc := range testCases {
		_, err := adapter.ParseToken(tc)
		if !errors.Is(err, domain.ErrTokenMalformed) {
			t.Errorf("expected ErrTokenMalformed for %q, got %v", tc, err)
		}
	}
}

// Benchmark tests
func BenchmarkHashPassword(b *testing.B) {
	adapter := NewAdapterWithCost("secret", bcrypt.MinCost) // Low cost for benchmarks

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = adapter.HashPassword("testpassword")
	}
}

func BenchmarkParseToken(b *testing.B) {
	adapter := NewAdapter("test-secret")
	token, _ := adapter.GenerateToken(testClaims(time.Hour))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = adapter.ParseToken(token)
	}
}
