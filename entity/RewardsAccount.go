package entity

import (
	"gorm.io/gorm"
)

// RewardsAccount holds the cached points balance per (user, cafe) pair.
// The balance must always equal the sum of that pair's RewardTransaction
// deltas; it is only ever written in the same transaction as a ledger
// append. Negative balances are allowed (intentional debits).
type RewardsAccount struct {
	gorm.Model
	PointsBalance int64  `json:"pointsBalance"`
	Level         string `gorm:"not null;default:bronze" json:"level"`

	UserID uint `gorm:"uniqueIndex:idx_rewards_user_cafe;not null" json:"userId"`
	User   User `json:"-"`

	CafeID uint `gorm:"uniqueIndex:idx_rewards_user_cafe;not null" json:"cafeId"`
	Cafe   Cafe `json:"-"`
}
