package services

import (
	"errors"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"gorm.io/gorm"
)

type FavoritesService struct {
	Repo     *repository.FavoriteRepository
	MenuRepo *repository.MenuRepository
}

func NewFavoritesService(repo *repository.FavoriteRepository, menuRepo *repository.MenuRepository) *FavoritesService {
	return &FavoritesService{Repo: repo, MenuRepo: menuRepo}
}

func (s *FavoritesService) List(cafe *entity.Cafe, ident *Identity) ([]entity.Favorite, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	out, err := s.Repo.List(cafe.ID, ident.UserID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

type FavoriteOut struct {
	Favorite *entity.Favorite `json:"favorite,omitempty"`
	Created  bool             `json:"created"`
}

func (s *FavoritesService) Create(cafe *entity.Cafe, ident *Identity, menuItemID uint) (*FavoriteOut, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	if menuItemID == 0 {
		return nil, apperr.Validation("menuItemId is required")
	}
	if _, err := s.MenuRepo.GetItem(cafe.ID, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("invalid menuItemId")
		}
		return nil, apperr.Internal(err)
	}
	fav := entity.Favorite{UserID: ident.UserID, MenuItemID: menuItemID, CafeID: cafe.ID}
	created, err := s.Repo.Create(&fav)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !created {
		return &FavoriteOut{Created: false}, nil
	}
	return &FavoriteOut{Favorite: &fav, Created: true}, nil
}

func (s *FavoritesService) Remove(cafe *entity.Cafe, ident *Identity, menuItemID uint) error {
	if ident == nil {
		return apperr.Unauthorized("authentication required")
	}
	if err := s.Repo.Delete(cafe.ID, ident.UserID, menuItemID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
