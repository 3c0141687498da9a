package services

import (
	"errors"
	"strings"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func requireOwner(cafe *entity.Cafe, ident *Identity) error {
	if ident == nil {
		return apperr.Unauthorized("authentication required")
	}
	if ScopedRole(cafe, ident) != entity.RoleOwner {
		return apperr.Forbidden("forbidden")
	}
	return nil
}

// ---------------- Categories ----------------

func (s *MenuService) ListCategories(cafe *entity.Cafe, includeItems bool) ([]entity.MenuCategory, error) {
	out, err := s.Repo.ListCategories(cafe.ID, includeItems)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

type CategoryIn struct {
	Name      string `json:"name"`
	SortOrder *int   `json:"sortOrder"`
}

func (s *MenuService) CreateCategory(cafe *entity.Cafe, ident *Identity, in *CategoryIn) (*entity.MenuCategory, error) {
	if err := requireOwner(cafe, ident); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	cat := entity.MenuCategory{Name: name, CafeID: cafe.ID}
	if in.SortOrder != nil {
		cat.SortOrder = *in.SortOrder
	}
	if err := s.Repo.CreateCategory(&cat); err != nil {
		return nil, apperr.Internal(err)
	}
	return &cat, nil
}

func (s *MenuService) UpdateCategory(cafe *entity.Cafe, ident *Identity, id uint, in *CategoryIn) (*entity.MenuCategory, error) {
	if err := requireOwner(cafe, ident); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetCategory(cafe.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Internal(err)
	}
	updates := map[string]any{}
	if name := strings.TrimSpace(in.Name); name != "" {
		updates["name"] = name
	}
	if in.SortOrder != nil {
		updates["sort_order"] = *in.SortOrder
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateCategory(id, updates); err != nil {
			return nil, apperr.Internal(err)
		}
	}
	cat, err := s.Repo.GetCategory(cafe.ID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return cat, nil
}

// DeleteCategory refuses while items remain — referenced catalog rows
// conflict rather than cascade.
func (s *MenuService) DeleteCategory(cafe *entity.Cafe, ident *Identity, id uint) error {
	if err := requireOwner(cafe, ident); err != nil {
		return err
	}
	if _, err := s.Repo.GetCategory(cafe.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("category not found")
		}
		return apperr.Internal(err)
	}
	count, err := s.Repo.CountItemsInCategory(cafe.ID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if count > 0 {
		return apperr.Conflict("category still has items")
	}
	if err := s.Repo.DeleteCategory(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ---------------- Items ----------------

// ListItems hides inactive items from everyone but the owner.
func (s *MenuService) ListItems(cafe *entity.Cafe, ident *Identity, categoryID *uint, includeInactive bool) ([]entity.MenuItem, error) {
	if includeInactive && ScopedRole(cafe, ident) != entity.RoleOwner {
		includeInactive = false
	}
	out, err := s.Repo.ListItems(cafe.ID, categoryID, includeInactive)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *MenuService) GetItem(cafe *entity.Cafe, id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.GetItem(cafe.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item not found")
		}
		return nil, apperr.Internal(err)
	}
	return item, nil
}

type MenuItemIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId"`
	Price       *int64 `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Popular     *bool  `json:"popular"`
	IsActive    *bool  `json:"isActive"`
}

func (s *MenuService) CreateItem(cafe *entity.Cafe, ident *Identity, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := requireOwner(cafe, ident); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CategoryID == 0 || in.Price == nil {
		return nil, apperr.Validation("name, categoryId and price are required")
	}
	if *in.Price < 0 {
		return nil, apperr.Validation("price must not be negative")
	}
	if _, err := s.Repo.GetCategory(cafe.ID, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("invalid categoryId")
		}
		return nil, apperr.Internal(err)
	}
	item := entity.MenuItem{
		Name:        name,
		Description: in.Description,
		Price:       *in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		CafeID:      cafe.ID,
		IsActive:    true,
	}
	if in.Popular != nil {
		item.Popular = *in.Popular
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if err := s.Repo.CreateItem(&item); err != nil {
		return nil, apperr.Internal(err)
	}
	return &item, nil
}

func (s *MenuService) UpdateItem(cafe *entity.Cafe, ident *Identity, id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := requireOwner(cafe, ident); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetItem(cafe.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item not found")
		}
		return nil, apperr.Internal(err)
	}
	updates := map[string]any{}
	if name := strings.TrimSpace(in.Name); name != "" {
		updates["name"] = name
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.ImageURL != "" {
		updates["image_url"] = in.ImageURL
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, apperr.Validation("price must not be negative")
		}
		updates["price"] = *in.Price
	}
	if in.Popular != nil {
		updates["popular"] = *in.Popular
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.CategoryID != 0 {
		if _, err := s.Repo.GetCategory(cafe.ID, in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation("invalid categoryId")
			}
			return nil, apperr.Internal(err)
		}
		updates["category_id"] = in.CategoryID
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateItem(id, updates); err != nil {
			return nil, apperr.Internal(err)
		}
	}
	item, err := s.Repo.GetItem(cafe.ID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return item, nil
}

// DeleteItem conflicts when order history references the item: snapshots
// keep their own copy of name/price, but the line still points at the id.
func (s *MenuService) DeleteItem(cafe *entity.Cafe, ident *Identity, id uint) error {
	if err := requireOwner(cafe, ident); err != nil {
		return err
	}
	if _, err := s.Repo.GetItem(cafe.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("item not found")
		}
		return apperr.Internal(err)
	}
	count, err := s.Repo.CountOrderLines(cafe.ID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if count > 0 {
		return apperr.Conflict("item has order history and cannot be removed")
	}
	if err := s.Repo.DeleteItem(cafe.ID, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
