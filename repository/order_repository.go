package repository

import (
	"time"

	"github.com/azim-at/cafeBackend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// Get scopes by cafe so a cross-tenant id behaves like a missing row.
func (r *OrderRepository) Get(cafeID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND cafe_id = ?", orderID, cafeID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetWithItems(cafeID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").
		Where("id = ? AND cafe_id = ?", orderID, cafeID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type ListOrdersFilter struct {
	Status *string
	UserID *uint
}

func (r *OrderRepository) List(cafeID uint, f ListOrdersFilter) ([]entity.Order, error) {
	var out []entity.Order
	q := r.DB.Preload("Items").Where("cafe_id = ?", cafeID)
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateFields(orderID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// UpdateStatusIfCurrent is a conditional write: it only lands when the
// order is still in the expected state, so racing decisions fail instead
// of double-applying.
func (r *OrderRepository) UpdateStatusIfCurrent(tx *gorm.DB, orderID uint, current string, updates map[string]any) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, current).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Dashboard / admin listings ----------------

func (r *OrderRepository) CountByStatuses(cafeID uint, statuses []string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("cafe_id = ? AND status IN ?", cafeID, statuses).
		Count(&count).Error
	return count, err
}

type AdminListFilter struct {
	Statuses []string
	From     *time.Time
	To       *time.Time
	Limit    int
}

func (r *OrderRepository) ListForAdmin(cafeID uint, f AdminListFilter) ([]entity.Order, error) {
	var out []entity.Order
	q := r.DB.Preload("Items").Preload("User").Where("cafe_id = ?", cafeID)
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListTodayNotCancelled(cafeID uint, dayStart, now time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("cafe_id = ? AND created_at >= ? AND created_at < ? AND status <> ?",
			cafeID, dayStart, now, entity.OrderStatusCancelled).
		Find(&out).Error
	return out, err
}
