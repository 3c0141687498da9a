package entity

import (
	"gorm.io/gorm"
)

// MenuItem prices are integer minor-currency units (e.g. satang, cents).
type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Popular     bool   `json:"popular"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	CafeID uint `gorm:"index" json:"cafeId"`
	Cafe   Cafe `json:"-"`

	CategoryID uint         `json:"categoryId"`
	Category   MenuCategory `gorm:"foreignKey:CategoryID" json:"-"`

	// Order lines reference the item id but never re-read live data;
	// name/price are frozen into the OrderItem snapshot.
	OrderItems []OrderItem `json:"-"`
	Favorites  []Favorite  `json:"-"`
}
