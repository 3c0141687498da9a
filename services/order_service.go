package services

import (
	"errors"
	"strings"
	"time"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"github.com/azim-at/cafeBackend/utils"
	"gorm.io/gorm"
)

type OrderService struct {
	DB            *gorm.DB
	Repo          *repository.OrderRepository
	MenuRepo      *repository.MenuRepository
	TokenRepo     *repository.GuestTokenRepository
	GuestTokenTTL time.Duration
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	tokenRepo *repository.GuestTokenRepository,
	guestTokenTTL time.Duration,
) *OrderService {
	return &OrderService{
		DB:            db,
		Repo:          repo,
		MenuRepo:      menuRepo,
		TokenRepo:     tokenRepo,
		GuestTokenTTL: guestTokenTTL,
	}
}

// ----- DTOs from controllers -----

type OrderItemIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderIn struct {
	Type            string        `json:"type" binding:"required"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Items           []OrderItemIn `json:"items" binding:"required"`
}

type CreateGuestOrderIn struct {
	CreateOrderIn
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
}

type GuestOrderOut struct {
	Order     *entity.Order `json:"order"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// buildItems resolves the requested lines against active in-tenant menu
// items and freezes name/price snapshots. The whole set is rejected when
// any id is unknown, inactive or belongs to another cafe.
func (s *OrderService) buildItems(cafeID uint, items []OrderItemIn) ([]entity.OrderItem, int64, error) {
	if len(items) == 0 {
		return nil, 0, apperr.Validation("type and items are required")
	}

	seen := make(map[uint]bool, len(items))
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if it.MenuItemID == 0 {
			return nil, 0, apperr.Validation("menuItemId is required")
		}
		if it.Quantity < 1 {
			return nil, 0, apperr.Validation("quantity must be at least 1")
		}
		if !seen[it.MenuItemID] {
			seen[it.MenuItemID] = true
			ids = append(ids, it.MenuItemID)
		}
	}

	menuItems, err := s.MenuRepo.FindActiveItems(cafeID, ids)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	if len(menuItems) != len(ids) {
		return nil, 0, apperr.Validation("invalid menu items")
	}
	byID := make(map[uint]entity.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	var subtotal int64
	rows := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		m := byID[it.MenuItemID]
		rows = append(rows, entity.OrderItem{
			CafeID:        cafeID,
			MenuItemID:    m.ID,
			NameSnapshot:  m.Name,
			PriceSnapshot: m.Price,
			Quantity:      it.Quantity,
			Notes:         it.Notes,
		})
		subtotal += m.Price * int64(it.Quantity)
	}
	return rows, subtotal, nil
}

func validateOrderType(in *CreateOrderIn) error {
	if !entity.ValidOrderType(in.Type) {
		return apperr.Validation("invalid order type")
	}
	if in.Type == entity.OrderTypeDelivery && strings.TrimSpace(in.DeliveryAddress) == "" {
		return apperr.Validation("delivery address is required")
	}
	return nil
}

// Create places an order for an authenticated customer. Order and items
// persist as one transaction; a partial order is never observable.
func (s *OrderService) Create(cafe *entity.Cafe, ident *Identity, in *CreateOrderIn) (*entity.Order, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	if err := validateOrderType(in); err != nil {
		return nil, err
	}

	rows, subtotal, err := s.buildItems(cafe.ID, in.Items)
	if err != nil {
		return nil, err
	}

	userID := ident.UserID
	order := entity.Order{
		CafeID:          cafe.ID,
		UserID:          &userID,
		Type:            in.Type,
		Status:          entity.OrderStatusNew,
		DeliveryAddress: in.DeliveryAddress,
		Subtotal:        subtotal,
		DeliveryFee:     0,
		Total:           subtotal,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	order.Items = rows
	return &order, nil
}

// CreateGuest places an anonymous order and mints its access token in the
// same logical operation.
func (s *OrderService) CreateGuest(cafe *entity.Cafe, in *CreateGuestOrderIn) (*GuestOrderOut, error) {
	if err := validateOrderType(&in.CreateOrderIn); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.GuestEmail) == "" && strings.TrimSpace(in.GuestPhone) == "" {
		return nil, apperr.Validation("guest email or phone is required")
	}

	rows, subtotal, err := s.buildItems(cafe.ID, in.Items)
	if err != nil {
		return nil, err
	}

	token, err := utils.RandomToken()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	expiresAt := time.Now().Add(s.GuestTokenTTL)

	order := entity.Order{
		CafeID:          cafe.ID,
		Type:            in.Type,
		Status:          entity.OrderStatusNew,
		GuestEmail:      strings.TrimSpace(in.GuestEmail),
		GuestPhone:      strings.TrimSpace(in.GuestPhone),
		DeliveryAddress: in.DeliveryAddress,
		Subtotal:        subtotal,
		DeliveryFee:     0,
		Total:           subtotal,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &rows[i]); err != nil {
				return err
			}
		}
		return s.TokenRepo.Upsert(tx, &entity.GuestOrderToken{
			CafeID:    cafe.ID,
			OrderID:   order.ID,
			Token:     token,
			ExpiresAt: expiresAt,
		})
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	order.Items = rows
	return &GuestOrderOut{Order: &order, Token: token, ExpiresAt: expiresAt}, nil
}

// List returns the cafe's orders for an owner, or only the caller's own
// orders for a customer. The userId filter is owner-only; customers get
// their own list no matter what they pass.
func (s *OrderService) List(cafe *entity.Cafe, ident *Identity, status string, targetUserID *uint) ([]entity.Order, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	f := repository.ListOrdersFilter{}
	if status != "" {
		if !entity.ValidOrderStatus(status) {
			return nil, apperr.Validation("invalid status")
		}
		f.Status = &status
	}
	if ScopedRole(cafe, ident) == entity.RoleOwner {
		f.UserID = targetUserID
	} else {
		uid := ident.UserID
		f.UserID = &uid
	}
	out, err := s.Repo.List(cafe.ID, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// Get checks existence before ownership: a cross-tenant or unknown id is
// NotFound, another user's order in the same cafe is Forbidden.
func (s *OrderService) Get(cafe *entity.Cafe, ident *Identity, orderID uint) (*entity.Order, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	order, err := s.Repo.GetWithItems(cafe.ID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal(err)
	}
	if ScopedRole(cafe, ident) != entity.RoleOwner {
		if order.UserID == nil || *order.UserID != ident.UserID {
			return nil, apperr.Forbidden("forbidden")
		}
	}
	return order, nil
}
