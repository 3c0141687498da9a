package services

import (
	"errors"
	"strings"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"gorm.io/gorm"
)

type RewardsService struct {
	DB        *gorm.DB
	Repo      *repository.RewardsRepository
	OrderRepo *repository.OrderRepository
}

func NewRewardsService(db *gorm.DB, repo *repository.RewardsRepository, orderRepo *repository.OrderRepository) *RewardsService {
	return &RewardsService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

// GetAccount lazily creates the caller's zero-balance account for this
// cafe on first access.
func (s *RewardsService) GetAccount(cafe *entity.Cafe, ident *Identity) (*entity.RewardsAccount, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	acc, err := s.Repo.GetOrCreateAccount(ident.UserID, cafe.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return acc, nil
}

// ListTransactions: an owner may target any user in the cafe; a customer
// always sees their own ledger regardless of the id they pass.
func (s *RewardsService) ListTransactions(cafe *entity.Cafe, ident *Identity, targetUserID *uint) ([]entity.RewardTransaction, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	userID := ident.UserID
	if ScopedRole(cafe, ident) == entity.RoleOwner && targetUserID != nil {
		userID = *targetUserID
	}
	out, err := s.Repo.ListTransactions(cafe.ID, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

type AppendResult struct {
	Transaction *entity.RewardTransaction `json:"transaction"`
	Account     *entity.RewardsAccount    `json:"account"`
}

// Append writes one immutable ledger entry and moves the cached balance
// by the same delta in a single transaction, so ledger and balance can
// never drift. Owner authority only; a linked order must live in this
// cafe.
func (s *RewardsService) Append(cafe *entity.Cafe, ident *Identity, targetUserID uint, pointsDelta int64, reason string, orderID *uint) (*AppendResult, error) {
	if ident == nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	if ScopedRole(cafe, ident) != entity.RoleOwner {
		return nil, apperr.Forbidden("forbidden")
	}
	if targetUserID == 0 {
		return nil, apperr.Validation("userId is required")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, apperr.Validation("reason is required")
	}
	if orderID != nil {
		if _, err := s.OrderRepo.Get(cafe.ID, *orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("order not found")
			}
			return nil, apperr.Internal(err)
		}
	}

	txn := entity.RewardTransaction{
		CafeID:      cafe.ID,
		UserID:      targetUserID,
		PointsDelta: pointsDelta,
		Reason:      strings.TrimSpace(reason),
		OrderID:     orderID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateTransaction(tx, &txn); err != nil {
			return err
		}
		return s.Repo.IncrementBalance(tx, targetUserID, cafe.ID, pointsDelta)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	acc, err := s.Repo.GetAccount(targetUserID, cafe.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AppendResult{Transaction: &txn, Account: acc}, nil
}
