package services_test

import (
	"testing"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"github.com/azim-at/cafeBackend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCafe(t *testing.T) {
	f := newFixture(t)
	svc := services.NewTenancyService(repository.NewCafeRepository(f.db))

	t.Run("active cafe resolves", func(t *testing.T) {
		cafe, err := svc.ResolveCafe("corner-cafe")
		require.NoError(t, err)
		assert.Equal(t, f.cafe.ID, cafe.ID)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := svc.ResolveCafe("no-such-cafe")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("suspended cafe is forbidden", func(t *testing.T) {
		require.NoError(t, f.db.Model(f.otherCafe).Update("status", entity.CafeStatusSuspended).Error)
		_, err := svc.ResolveCafe("rival-cafe")
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("empty slug is validation", func(t *testing.T) {
		_, err := svc.ResolveCafe("")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestScopedRole(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		ident *services.Identity
		want  string
	}{
		{"cafe owner keeps owner authority", ident(f.owner), entity.RoleOwner},
		{"foreign owner is demoted to customer", ident(f.otherOwner), entity.RoleCustomer},
		{"customer stays customer", ident(f.customer), entity.RoleCustomer},
		{"anonymous has no role", nil, ""},
		{"identity without role has no role", &services.Identity{UserID: f.owner.ID}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ScopedRole(f.cafe, tt.ident))
		})
	}
}
