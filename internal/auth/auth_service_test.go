package auth_test

import (
	"context"
	"testing"
	"time"

	"go-hrcore/internal/auth"
	autherrors "go-hrcore/internal/auth/errors"
	"go-hrcore/internal/person"
	"go-hrcore/internal/rbac"
	"go-hrcore/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

type authServiceDeps struct {
	personRepo person.Repository
	service    auth.Service
}

func setupAuthServiceTest(t *testing.T) *authServiceDeps {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	personRepo := person.NewMemoryRepository()
	svc := auth.NewService(personRepo, clock.Fixed(testNow))

	return &authServiceDeps{personRepo: personRepo, service: svc}
}

func seedPerson(t *testing.T, repo person.Repository, email, password string, active bool) *person.Person {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	p := &person.Person{
		Name:               "Alice",
		Email:              email,
		PasswordHash:       string(hash),
		Role:               rbac.RoleEmployee,
		JoinDate:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RemainingLeaveDays: 12,
		BaseSalary:         decimal.NewFromInt(5000000),
		Active:             active,
	}
	assert.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		p := seedPerson(t, deps.personRepo, "alice@example.com", "password123", true)

		resp, err := deps.service.Login(ctx, "alice@example.com", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, p.ID, resp.Person.ID)
		assert.Equal(t, string(rbac.RoleEmployee), resp.Person.Role)

		token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		}, jwt.WithTimeFunc(func() time.Time { return testNow }))
		assert.NoError(t, err)
		claims, ok := token.Claims.(jwt.MapClaims)
		assert.True(t, ok)
		assert.Equal(t, "1", claims["sub"])
		assert.Equal(t, string(rbac.RoleEmployee), claims["role"])
	})

	t.Run("success case-insensitive email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		seedPerson(t, deps.personRepo, "alice@example.com", "password123", true)

		_, err := deps.service.Login(ctx, "ALICE@example.com", "password123")

		assert.NoError(t, err)
	})

	t.Run("negative wrong password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		seedPerson(t, deps.personRepo, "alice@example.com", "password123", true)

		_, err := deps.service.Login(ctx, "alice@example.com", "wrongpassword")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		_, err := deps.service.Login(ctx, "nobody@example.com", "password123")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative deactivated person", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		seedPerson(t, deps.personRepo, "alice@example.com", "password123", false)

		_, err := deps.service.Login(ctx, "alice@example.com", "password123")

		assert.ErrorIs(t, err, autherrors.ErrPersonInactive)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		p := seedPerson(t, deps.personRepo, "alice@example.com", "password123", true)

		resp, err := deps.service.GetMe(ctx, p.ID)

		assert.NoError(t, err)
		assert.Equal(t, p.ID, resp.ID)
		assert.Equal(t, "alice@example.com", resp.Email)
	})

	t.Run("negative unknown person", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		_, err := deps.service.GetMe(ctx, 99)

		assert.ErrorIs(t, err, autherrors.ErrPersonNotFound)
	})
}
