package services_test

import (
	"testing"
	"time"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"github.com/azim-at/cafeBackend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authSvc(f *fixture) *services.AuthService {
	return services.NewAuthService(repository.NewUserRepository(f.db), "test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	svc := authSvc(f)

	t.Run("creates a customer and issues a token", func(t *testing.T) {
		session, err := svc.Register("  New@Example.COM ", "hunter2hunter2", "New Person")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", session.User.Email)
		assert.Equal(t, entity.RoleCustomer, session.User.Role)
		assert.NotEmpty(t, session.Token)
		assert.NotEqual(t, "hunter2hunter2", session.User.PasswordHash)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Register("new@example.com", "hunter2hunter2", "")
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("short password is validation", func(t *testing.T) {
		_, err := svc.Register("short@example.com", "short", "")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	svc := authSvc(f)

	_, err := svc.Register("login@example.com", "hunter2hunter2", "")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		session, err := svc.Login("login@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, err := svc.Login("login@example.com", "wrong-password")
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})

	t.Run("unknown email is unauthorized, not a probe", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "hunter2hunter2")
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})
}
