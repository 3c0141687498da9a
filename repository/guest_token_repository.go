package repository

import (
	"github.com/azim-at/cafeBackend/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuestTokenRepository struct {
	DB *gorm.DB
}

func NewGuestTokenRepository(db *gorm.DB) *GuestTokenRepository {
	return &GuestTokenRepository{DB: db}
}

// Upsert keeps at most one live token per order: a re-issue replaces the
// prior token value and expiry instead of adding a second row.
func (r *GuestTokenRepository) Upsert(tx *gorm.DB, t *entity.GuestOrderToken) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"token":      t.Token,
			"expires_at": t.ExpiresAt,
			"cafe_id":    t.CafeID,
		}),
	}).Create(t).Error
}

func (r *GuestTokenRepository) FindByToken(cafeID uint, token string) (*entity.GuestOrderToken, error) {
	var t entity.GuestOrderToken
	if err := r.DB.Where("token = ? AND cafe_id = ?", token, cafeID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
