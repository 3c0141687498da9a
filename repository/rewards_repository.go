package repository

import (
	"github.com/azim-at/cafeBackend/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RewardsRepository struct {
	DB *gorm.DB
}

func NewRewardsRepository(db *gorm.DB) *RewardsRepository {
	return &RewardsRepository{DB: db}
}

// GetOrCreateAccount lazily provisions a zero-balance account on first
// access for the (user, cafe) pair.
func (r *RewardsRepository) GetOrCreateAccount(userID, cafeID uint) (*entity.RewardsAccount, error) {
	var acc entity.RewardsAccount
	err := r.DB.Where(entity.RewardsAccount{UserID: userID, CafeID: cafeID}).
		FirstOrCreate(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *RewardsRepository) GetAccount(userID, cafeID uint) (*entity.RewardsAccount, error) {
	var acc entity.RewardsAccount
	err := r.DB.Where("user_id = ? AND cafe_id = ?", userID, cafeID).First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *RewardsRepository) ListTransactions(cafeID, userID uint) ([]entity.RewardTransaction, error) {
	var out []entity.RewardTransaction
	err := r.DB.Where("cafe_id = ? AND user_id = ?", cafeID, userID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *RewardsRepository) CreateTransaction(tx *gorm.DB, t *entity.RewardTransaction) error {
	return tx.Create(t).Error
}

// IncrementBalance upserts the cached balance: creates the account with
// delta as its initial balance, or adds delta to the stored value. The
// increment is relative so concurrent appends never lose updates.
func (r *RewardsRepository) IncrementBalance(tx *gorm.DB, userID, cafeID uint, delta int64) error {
	acc := entity.RewardsAccount{UserID: userID, CafeID: cafeID, PointsBalance: delta}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "cafe_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"points_balance": gorm.Expr("points_balance + ?", delta),
		}),
	}).Create(&acc).Error
}
