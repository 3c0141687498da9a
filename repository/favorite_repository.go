package repository

import (
	"github.com/azim-at/cafeBackend/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) List(cafeID, userID uint) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := r.DB.Preload("MenuItem").Preload("MenuItem.Category").
		Where("cafe_id = ? AND user_id = ?", cafeID, userID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

// Create absorbs duplicates: a second favorite of the same item is a
// no-op and reported through the created flag.
func (r *FavoriteRepository) Create(f *entity.Favorite) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoNothing: true,
	}).Create(f)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete of a missing favorite is a no-op.
func (r *FavoriteRepository) Delete(cafeID, userID, menuItemID uint) error {
	return r.DB.Where("cafe_id = ? AND user_id = ? AND menu_item_id = ?", cafeID, userID, menuItemID).
		Delete(&entity.Favorite{}).Error
}
