package services_test

import (
	"sync"
	"testing"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRewardsAccount(t *testing.T) {
	f := newFixture(t)
	svc := f.rewardsService()

	acc, err := svc.GetAccount(f.cafe, ident(f.customer))
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.PointsBalance)
	assert.Equal(t, f.customer.ID, acc.UserID)
	assert.Equal(t, f.cafe.ID, acc.CafeID)

	// get-or-create is idempotent
	again, err := svc.GetAccount(f.cafe, ident(f.customer))
	require.NoError(t, err)
	assert.Equal(t, acc.ID, again.ID)

	// accounts are per (user, cafe) pair
	other, err := svc.GetAccount(f.otherCafe, ident(f.customer))
	require.NoError(t, err)
	assert.NotEqual(t, acc.ID, other.ID)
}

func TestAppendRewardTransaction(t *testing.T) {
	f := newFixture(t)
	svc := f.rewardsService()

	t.Run("append creates the row and the balance together", func(t *testing.T) {
		result, err := svc.Append(f.cafe, ident(f.owner), f.customer.ID, 50, "welcome bonus", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(50), result.Transaction.PointsDelta)
		assert.Equal(t, int64(50), result.Account.PointsBalance)

		var rows int64
		require.NoError(t, f.db.Model(&entity.RewardTransaction{}).
			Where("user_id = ? AND cafe_id = ?", f.customer.ID, f.cafe.ID).
			Count(&rows).Error)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("deltas accumulate and may go negative", func(t *testing.T) {
		_, err := svc.Append(f.cafe, ident(f.owner), f.customer.ID, -70, "adjustment", nil)
		require.NoError(t, err)
		acc, err := svc.GetAccount(f.cafe, ident(f.customer))
		require.NoError(t, err)
		assert.Equal(t, int64(-20), acc.PointsBalance)
	})

	t.Run("balance always equals the ledger sum", func(t *testing.T) {
		var sum int64
		require.NoError(t, f.db.Model(&entity.RewardTransaction{}).
			Where("user_id = ? AND cafe_id = ?", f.customer.ID, f.cafe.ID).
			Select("COALESCE(SUM(points_delta), 0)").Scan(&sum).Error)
		acc, err := svc.GetAccount(f.cafe, ident(f.customer))
		require.NoError(t, err)
		assert.Equal(t, sum, acc.PointsBalance)
	})

	t.Run("customer may not append", func(t *testing.T) {
		_, err := svc.Append(f.cafe, ident(f.customer), f.customer.ID, 10, "self serve", nil)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("foreign owner is demoted and may not append", func(t *testing.T) {
		_, err := svc.Append(f.cafe, ident(f.otherOwner), f.customer.ID, 10, "drive-by", nil)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("linked order must be in the same cafe", func(t *testing.T) {
		order := f.placeOrder(t, f.customer)
		_, err := svc.Append(f.otherCafe, ident(f.otherOwner), f.customer.ID, 10, "points", &order.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("linked in-cafe order is accepted", func(t *testing.T) {
		order := f.placeOrder(t, f.customer)
		result, err := svc.Append(f.cafe, ident(f.owner), f.customer.ID, 10, "order points", &order.ID)
		require.NoError(t, err)
		require.NotNil(t, result.Transaction.OrderID)
		assert.Equal(t, order.ID, *result.Transaction.OrderID)
	})

	t.Run("reason is required", func(t *testing.T) {
		_, err := svc.Append(f.cafe, ident(f.owner), f.customer.ID, 10, "   ", nil)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

// The balance increment is relative (points_balance + delta), so
// parallel appends to one account must all land.
func TestConcurrentRewardAppends(t *testing.T) {
	f := newFixture(t)
	svc := f.rewardsService()

	const workers = 20
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Append(f.cafe, ident(f.owner), f.customer.ID, 5, "promo", nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	acc, err := svc.GetAccount(f.cafe, ident(f.customer))
	require.NoError(t, err)
	assert.Equal(t, int64(workers*5), acc.PointsBalance)

	var rows int64
	require.NoError(t, f.db.Model(&entity.RewardTransaction{}).
		Where("user_id = ? AND cafe_id = ?", f.customer.ID, f.cafe.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(workers), rows)
}

func TestListRewardTransactions(t *testing.T) {
	f := newFixture(t)
	svc := f.rewardsService()

	_, err := svc.Append(f.cafe, ident(f.owner), f.customer.ID, 50, "bonus", nil)
	require.NoError(t, err)
	_, err = svc.Append(f.cafe, ident(f.owner), f.stranger.ID, 30, "bonus", nil)
	require.NoError(t, err)

	t.Run("customer sees only their own ledger", func(t *testing.T) {
		txns, err := svc.ListTransactions(f.cafe, ident(f.customer), &f.stranger.ID)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, f.customer.ID, txns[0].UserID)
	})

	t.Run("owner may target any user", func(t *testing.T) {
		txns, err := svc.ListTransactions(f.cafe, ident(f.owner), &f.stranger.ID)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, f.stranger.ID, txns[0].UserID)
	})

	t.Run("owner without a target sees their own", func(t *testing.T) {
		txns, err := svc.ListTransactions(f.cafe, ident(f.owner), nil)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})
}
