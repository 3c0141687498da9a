package entity

import (
	"gorm.io/gorm"
)

type Favorite struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_favorite_user_item;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_favorite_user_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	CafeID uint `gorm:"index" json:"cafeId"`
}
