package services

import (
	"errors"
	"time"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"github.com/azim-at/cafeBackend/utils"
	"gorm.io/gorm"
)

type GuestTokenService struct {
	DB        *gorm.DB
	Repo      *repository.GuestTokenRepository
	OrderRepo *repository.OrderRepository
}

func NewGuestTokenService(db *gorm.DB, repo *repository.GuestTokenRepository, orderRepo *repository.OrderRepository) *GuestTokenService {
	return &GuestTokenService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type IssuedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Issue mints or rotates the order's single bearer token. Allowed for the
// cafe owner or the order's owning user; the prior token value stops
// resolving once replaced.
func (s *GuestTokenService) Issue(cafe *entity.Cafe, ident *Identity, orderID uint, expiresIn time.Duration) (*IssuedToken, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}

	order, err := s.OrderRepo.Get(cafe.ID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal(err)
	}

	if ScopedRole(cafe, ident) != entity.RoleOwner {
		if order.UserID == nil || *order.UserID != ident.UserID {
			return nil, apperr.Forbidden("forbidden")
		}
	}

	token, err := utils.RandomToken()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	expiresAt := time.Now().Add(expiresIn)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Upsert(tx, &entity.GuestOrderToken{
			CafeID:    cafe.ID,
			OrderID:   order.ID,
			Token:     token,
			ExpiresAt: expiresAt,
		})
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &IssuedToken{Token: token, ExpiresAt: expiresAt}, nil
}

// Resolve grants read-only access to the token's order. An unknown token
// is NotFound; a known but expired token is Unauthorized so callers can
// tell "never existed" from "existed but expired". Reads never consume
// the token.
func (s *GuestTokenService) Resolve(cafe *entity.Cafe, token string) (*entity.Order, error) {
	if token == "" {
		return nil, apperr.Validation("token is required")
	}
	t, err := s.Repo.FindByToken(cafe.ID, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("token not found")
		}
		return nil, apperr.Internal(err)
	}
	if t.ExpiresAt.Before(time.Now()) {
		return nil, apperr.Unauthorized("token expired")
	}
	order, err := s.OrderRepo.GetWithItems(cafe.ID, t.OrderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return order, nil
}
