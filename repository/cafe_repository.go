package repository

import (
	"github.com/azim-at/cafeBackend/entity"
	"gorm.io/gorm"
)

type CafeRepository struct {
	DB *gorm.DB
}

func NewCafeRepository(db *gorm.DB) *CafeRepository {
	return &CafeRepository{DB: db}
}

func (r *CafeRepository) FindBySlug(slug string) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := r.DB.Where("slug = ?", slug).First(&cafe).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}
