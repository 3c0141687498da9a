package entity

import (
	"time"

	"gorm.io/gorm"
)

// GuestOrderToken: at most one live token per order (unique OrderID,
// replaced on re-issue). Expired rows stay inert until superseded.
type GuestOrderToken struct {
	gorm.Model
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`

	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`

	CafeID uint `gorm:"index" json:"cafeId"`
}
