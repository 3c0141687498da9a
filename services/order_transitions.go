package services

import (
	"errors"
	"strings"
	"time"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"gorm.io/gorm"
)

const deniedByOwnerReason = "Denied by owner"

type UpdateStatusIn struct {
	Status           string     `json:"status" binding:"required"`
	EstimatedReadyAt *time.Time `json:"estimatedReadyAt"`
	CancelledReason  *string    `json:"cancelledReason"`
	DeliveryFee      *int64     `json:"deliveryFee"`
}

// UpdateStatus moves an order to any recognized status. Transitions are
// authorized (tenant owner only) but not graph-validated beyond set
// membership; decideOrder below is the single constrained path. A fee
// change recomputes total from the immutable subtotal in the same write.
func (s *OrderService) UpdateStatus(cafe *entity.Cafe, ident *Identity, orderID uint, in *UpdateStatusIn) (*entity.Order, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	if ScopedRole(cafe, ident) != entity.RoleOwner {
		return nil, apperr.Forbidden("forbidden")
	}
	if !entity.ValidOrderStatus(in.Status) {
		return nil, apperr.Validation("invalid status")
	}

	order, err := s.Repo.Get(cafe.ID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal(err)
	}

	updates := map[string]any{"status": in.Status}
	if in.EstimatedReadyAt != nil {
		updates["estimated_ready_at"] = *in.EstimatedReadyAt
	}
	if in.CancelledReason != nil {
		updates["cancelled_reason"] = *in.CancelledReason
	}
	if in.DeliveryFee != nil {
		updates["delivery_fee"] = *in.DeliveryFee
		updates["total"] = order.Subtotal + *in.DeliveryFee
	}

	if err := s.Repo.UpdateFields(order.ID, updates); err != nil {
		return nil, apperr.Internal(err)
	}

	updated, err := s.Repo.GetWithItems(cafe.ID, orderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return updated, nil
}

// Decide is the simplified admin decision on a fresh order: accept moves
// new→preparing, deny moves new→cancelled with a defaulted reason. The
// write is conditional on the order still being new, so two racing
// decisions cannot both land — the loser gets a Conflict.
func (s *OrderService) Decide(cafe *entity.Cafe, ident *Identity, orderID uint, action, reason string) (*entity.Order, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	if ScopedRole(cafe, ident) != entity.RoleOwner {
		return nil, apperr.Forbidden("forbidden")
	}
	if action != "accept" && action != "deny" {
		return nil, apperr.Validation("action must be accept or deny")
	}

	order, err := s.Repo.Get(cafe.ID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal(err)
	}
	if order.Status != entity.OrderStatusNew {
		return nil, apperr.Validation("only new orders can be accepted or denied")
	}

	updates := map[string]any{"status": entity.OrderStatusPreparing}
	if action == "deny" {
		r := strings.TrimSpace(reason)
		if r == "" {
			r = deniedByOwnerReason
		}
		updates = map[string]any{
			"status":           entity.OrderStatusCancelled,
			"cancelled_reason": r,
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatusIfCurrent(tx, order.ID, entity.OrderStatusNew, updates)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Conflict("order was already decided")
		}
		return nil
	})
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, ae
		}
		return nil, apperr.Internal(err)
	}

	updated, err := s.Repo.GetWithItems(cafe.ID, orderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return updated, nil
}
