package entity

import (
	"gorm.io/gorm"
)

// RewardTransaction is an append-only ledger entry; rows are never
// updated or deleted.
type RewardTransaction struct {
	gorm.Model
	PointsDelta int64  `json:"pointsDelta"`
	Reason      string `json:"reason"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	CafeID uint `gorm:"index" json:"cafeId"`
	Cafe   Cafe `json:"-"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`
}
