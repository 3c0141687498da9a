package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`

	CafeID uint `gorm:"index" json:"cafeId"`
	Cafe   Cafe `json:"-"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}
