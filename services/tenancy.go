package services

import (
	"errors"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"gorm.io/gorm"
)

// Identity is the authenticated caller as handed over by the credential
// service. A nil *Identity means an anonymous request.
type Identity struct {
	UserID uint
	Role   string
}

// ScopedRole computes the caller's effective authority for one cafe. A
// global "owner" role only counts as owner authority on the cafe that
// user actually owns; on every other cafe it is demoted to customer.
// Never authorize owner-level actions from the global role alone.
func ScopedRole(cafe *entity.Cafe, ident *Identity) string {
	if ident == nil || ident.Role == "" {
		return ""
	}
	if ident.Role == entity.RoleOwner {
		if cafe.OwnerUserID == ident.UserID {
			return entity.RoleOwner
		}
		return entity.RoleCustomer
	}
	return ident.Role
}

func IsCafeOwner(cafe *entity.Cafe, ident *Identity) bool {
	return ScopedRole(cafe, ident) == entity.RoleOwner
}

type TenancyService struct {
	CafeRepo *repository.CafeRepository
}

func NewTenancyService(cafeRepo *repository.CafeRepository) *TenancyService {
	return &TenancyService{CafeRepo: cafeRepo}
}

// ResolveCafe gates every tenant-scoped operation: unknown slug is
// NotFound, a suspended cafe refuses all access with Forbidden.
func (s *TenancyService) ResolveCafe(slug string) (*entity.Cafe, error) {
	if slug == "" {
		return nil, apperr.Validation("cafe slug is required")
	}
	cafe, err := s.CafeRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cafe not found")
		}
		return nil, apperr.Internal(err)
	}
	if cafe.Status != entity.CafeStatusActive {
		return nil, apperr.Forbidden("cafe is suspended")
	}
	return cafe, nil
}
