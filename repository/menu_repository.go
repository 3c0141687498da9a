package repository

import (
	"github.com/azim-at/cafeBackend/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories(cafeID uint, includeItems bool) ([]entity.MenuCategory, error) {
	var out []entity.MenuCategory
	q := r.DB.Where("cafe_id = ?", cafeID).Order("sort_order ASC, name ASC")
	if includeItems {
		q = q.Preload("Items", "is_active = ? AND cafe_id = ?", true, cafeID)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetCategory(cafeID, id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.Where("id = ? AND cafe_id = ?", id, cafeID).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) CreateCategory(cat *entity.MenuCategory) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) UpdateCategory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuCategory{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.MenuCategory{}, id).Error
}

func (r *MenuRepository) CountItemsInCategory(cafeID, categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ? AND cafe_id = ?", categoryID, cafeID).
		Count(&count).Error
	return count, err
}

// ---------------- Items ----------------

func (r *MenuRepository) ListItems(cafeID uint, categoryID *uint, includeInactive bool) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	q := r.DB.Where("cafe_id = ?", cafeID).Order("name ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetItem(cafeID, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").
		Where("id = ? AND cafe_id = ?", id, cafeID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

// FindActiveItems resolves the snapshot source for order creation: only
// active items inside the tenant are returned.
func (r *MenuRepository) FindActiveItems(cafeID uint, ids []uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("id IN ? AND cafe_id = ? AND is_active = ?", ids, cafeID, true).
		Find(&out).Error
	return out, err
}

func (r *MenuRepository) CountOrderLines(cafeID, menuItemID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).
		Where("menu_item_id = ? AND cafe_id = ?", menuItemID, cafeID).
		Count(&count).Error
	return count, err
}

// DeleteItem removes the item and sweeps favorites pointing at it in the
// same transaction.
func (r *MenuRepository) DeleteItem(cafeID, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ? AND cafe_id = ?", id, cafeID).
			Delete(&entity.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuItem{}, id).Error
	})
}
