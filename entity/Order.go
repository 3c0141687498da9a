package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

const (
	OrderStatusNew            = "new"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

var orderTypes = map[string]bool{
	OrderTypeDineIn:   true,
	OrderTypeTakeaway: true,
	OrderTypeDelivery: true,
}

var orderStatuses = map[string]bool{
	OrderStatusNew:            true,
	OrderStatusPreparing:      true,
	OrderStatusReady:          true,
	OrderStatusOutForDelivery: true,
	OrderStatusDelivered:      true,
	OrderStatusCompleted:      true,
	OrderStatusCancelled:      true,
}

// ActiveOrderStatuses are the in-flight states used by dashboard counts
// and the "active" pseudo-filter.
var ActiveOrderStatuses = []string{
	OrderStatusNew,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusOutForDelivery,
}

func ValidOrderType(t string) bool   { return orderTypes[t] }
func ValidOrderStatus(s string) bool { return orderStatuses[s] }

// Order is created once at placement; only status, fee fields and the
// status-adjacent columns (estimatedReadyAt, cancelledReason) mutate after
// creation. Total is always subtotal + deliveryFee.
type Order struct {
	gorm.Model
	Type   string `json:"type"`
	Status string `gorm:"not null;default:new;index" json:"status"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`

	DeliveryAddress  string     `json:"deliveryAddress,omitempty"`
	EstimatedReadyAt *time.Time `json:"estimatedReadyAt,omitempty"`
	CancelledReason  string     `json:"cancelledReason,omitempty"`

	// Nil UserID marks a guest order; at least one guest contact is kept.
	UserID     *uint  `json:"userId"`
	User       *User  `json:"-"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	CafeID uint `gorm:"index" json:"cafeId"`
	Cafe   Cafe `json:"-"`

	Items []OrderItem `json:"items,omitempty"`

	GuestToken *GuestOrderToken `gorm:"foreignKey:OrderID" json:"-"`
}
