package entity

import (
	"gorm.io/gorm"
)

// OrderItem is frozen at order creation: nameSnapshot/priceSnapshot never
// re-sync to the menu item, so catalog edits don't rewrite history.
type OrderItem struct {
	gorm.Model
	NameSnapshot  string `json:"nameSnapshot"`
	PriceSnapshot int64  `json:"priceSnapshot"`
	Quantity      int    `json:"quantity"`
	Notes         string `json:"notes,omitempty"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	CafeID uint `gorm:"index" json:"cafeId"`
}
