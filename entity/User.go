package entity

import (
	"gorm.io/gorm"
)

const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `gorm:"not null;default:customer" json:"role"`

	// Relations; preload only when needed
	CafesOwned      []Cafe              `gorm:"foreignKey:OwnerUserID" json:"-"`
	Orders          []Order             `json:"-"`
	Favorites       []Favorite          `json:"-"`
	RewardsAccounts []RewardsAccount    `json:"-"`
	RewardEntries   []RewardTransaction `json:"-"`
}
