package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/authcore/internal/adapters/driven/auth"
	"github.com/custodia-labs/authcore/internal/core/domain"
	"github.com/custodia-labs/authcore/internal/core/ports/driven/mocks"
	"github.com/custodia-labs/authcore/internal/core/ports/driving"
	"github.com/custodia-labs/authcore/internal/core/services"
)

// authFeature drives the registration/login scenario against the real
// service wiring: in-memory store, real bcrypt hashing (minimum cost)
// and real JWT signing. The clock steps forward a few seconds per token
// issuance, so consecutive tokens always carry distinct issued-at stamps.
type authFeature struct {
	store   *mocks.MockUserStore
	adapter *auth.Adapter
	svc     driving.AuthService
	clock   *steppingClock

	registrationToken string
	registeredUserID  string
	lastResponse      *domain.AuthResponse
	lastErr           error
}

type steppingClock struct {
	t time.Time
}

func (c *steppingClock) Now() time.Time {
	c.t = c.t.Add(5 * time.Second)
	return c.t
}

func newAuthFeature() *authFeature {
	store := mocks.NewMockUserStore()
	adapter := auth.NewAdapterWithCost("feature-test-secret", bcrypt.MinCost)
	clock := &steppingClock{t: time.Now()}
	return &authFeature{
		store:   store,
		adapter: adapter,
		svc:     services.NewAuthServiceWithClock(store, adapter, clock.Now),
		clock:   clock,
	}
}

func (f *authFeature) noAccountExistsFor(email string) error {
	if _, err := f.store.GetByEmail(context.Background(), email); !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("expected no account for %s, got err=%v", email, err)
	}
	return nil
}

func (f *authFeature) userRegisters(name, email, password string) error {
	resp, err := f.svc.Register(context.Background(), domain.RegisterRequest{
		Name:        name,
		Email:       email,
		Password:    password,
		DateOfBirth: "1990-01-01",
	})
	f.lastResponse = resp
	f.lastErr = err
	return nil
}

func (f *authFeature) registrationSucceedsWithToken() error {
	if f.lastErr != nil {
		return fmt.Errorf("registration failed: %w", f.lastErr)
	}
	if f.lastResponse == nil || f.lastResponse.Token == "" {
		return errors.New("expected a token on registration")
	}
	f.registrationToken = f.lastResponse.Token
	f.registeredUserID = f.lastResponse.User.ID
	return nil
}

func (f *authFeature) userLogsIn(email, password string) error {
	resp, err := f.svc.Login(context.Background(), domain.LoginRequest{
		Email:    email,
		Password: password,
	})
	f.lastResponse = resp
	f.lastErr = err
	return nil
}

func (f *authFeature) loginIsRejected() error {
	if !errors.Is(f.lastErr, domain.ErrInvalidCredentials) {
		return fmt.Errorf("expected invalid credentials error, got %v", f.lastErr)
	}
	return nil
}

func (f *authFeature) loginSucceedsWithFreshToken() error {
	if f.lastErr != nil {
		return fmt.Errorf("login failed: %w", f.lastErr)
	}
	if f.lastResponse.Token == "" {
		return errors.New("expected a token on login")
	}
	if f.lastResponse.Token == f.registrationToken {
		return errors.New("expected login token to differ from registration token")
	}

	claims, err := f.adapter.ParseToken(f.lastResponse.Token)
	if err != nil {
		return fmt.Errorf("login token failed verification: %w", err)
	}
	if claims.Subject != f.registeredUserID {
		return fmt.Errorf("expected token subject %s, got %s", f.registeredUserID, claims.Subject)
	}
	return nil
}

func InitializeScenario(sc *godog.ScenarioContext) {
	f := newAuthFeature()

	sc.Given(`^no account exists for "([^"]*)"$`, f.noAccountExistsFor)
	sc.When(`^"([^"]*)" registers with email "([^"]*)" and password "([^"]*)"$`, f.userRegisters)
	sc.Then(`^registration succeeds and a token is issued$`, f.registrationSucceedsWithToken)
	sc.When(`^the user logs in with email "([^"]*)" and password "([^"]*)"$`, f.userLogsIn)
	sc.Then(`^login is rejected with an invalid credentials error$`, f.loginIsRejected)
	sc.Then(`^login succeeds with a fresh token for the same account$`, f.loginSucceedsWithFreshToken)
}

func TestAuthenticationFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("feature suite failed")
	}
}
