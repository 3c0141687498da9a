package entity

import (
	"gorm.io/gorm"
)

const (
	CafeStatusActive    = "active"
	CafeStatusSuspended = "suspended"
)

type Cafe struct {
	gorm.Model
	Slug   string `gorm:"uniqueIndex;not null" json:"slug"`
	Name   string `json:"name"`
	Status string `gorm:"not null;default:active" json:"status"`

	OwnerUserID uint `json:"ownerUserId"`
	Owner       User `gorm:"foreignKey:OwnerUserID" json:"-"`

	MenuCategories []MenuCategory `json:"-"`
	MenuItems      []MenuItem     `json:"-"`
	Orders         []Order        `json:"-"`
}
