package services_test

import (
	"bytes"
	"testing"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/repository"
	"github.com/azim-at/cafeBackend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminSvc(f *fixture) *services.AdminService {
	return services.NewAdminService(repository.NewOrderRepository(f.db))
}

func TestDashboardSummary(t *testing.T) {
	f := newFixture(t)
	svc := adminSvc(f)
	orders := f.orderService()

	f.placeOrder(t, f.customer) // 950, new
	second := f.placeOrder(t, f.stranger)
	third := f.placeOrder(t, f.stranger)
	_, err := orders.Decide(f.cafe, ident(f.owner), second.ID, "accept", "")
	require.NoError(t, err)
	_, err = orders.Decide(f.cafe, ident(f.owner), third.ID, "deny", "")
	require.NoError(t, err)

	summary, err := svc.DashboardSummary(f.cafe, ident(f.owner))
	require.NoError(t, err)

	// cancelled orders drop out of revenue but active count tracks the
	// two in-flight ones
	assert.Equal(t, 2, summary.TodayOrders)
	assert.Equal(t, int64(1900), summary.TodayRevenue)
	assert.Equal(t, int64(950), summary.AvgOrderValue)
	assert.Equal(t, int64(2), summary.ActiveOrders)
	require.NotNil(t, summary.TopItem)
	assert.Equal(t, "Muffin", summary.TopItem.Name)
	assert.Equal(t, 4, summary.TopItem.Quantity)
}

func TestDashboardRequiresOwner(t *testing.T) {
	f := newFixture(t)
	svc := adminSvc(f)

	_, err := svc.DashboardSummary(f.cafe, ident(f.customer))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	_, err = svc.DashboardSummary(f.cafe, ident(f.otherOwner))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestAdminListOrders(t *testing.T) {
	f := newFixture(t)
	svc := adminSvc(f)
	orders := f.orderService()

	f.placeOrder(t, f.customer)
	accepted := f.placeOrder(t, f.stranger)
	_, err := orders.Decide(f.cafe, ident(f.owner), accepted.ID, "accept", "")
	require.NoError(t, err)

	t.Run("no filter lists everything", func(t *testing.T) {
		out, err := svc.ListOrders(f.cafe, ident(f.owner), &services.AdminOrdersIn{})
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("single status filter", func(t *testing.T) {
		out, err := svc.ListOrders(f.cafe, ident(f.owner), &services.AdminOrdersIn{Status: entity.OrderStatusPreparing})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, accepted.ID, out[0].ID)
	})

	t.Run("active pseudo-status covers in-flight states", func(t *testing.T) {
		out, err := svc.ListOrders(f.cafe, ident(f.owner), &services.AdminOrdersIn{Status: "active"})
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("invalid status is validation", func(t *testing.T) {
		_, err := svc.ListOrders(f.cafe, ident(f.owner), &services.AdminOrdersIn{Status: "simmering"})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("invalid range is validation", func(t *testing.T) {
		_, err := svc.ListOrders(f.cafe, ident(f.owner), &services.AdminOrdersIn{Range: "last-week"})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("today range includes fresh orders", func(t *testing.T) {
		out, err := svc.ListOrders(f.cafe, ident(f.owner), &services.AdminOrdersIn{Range: "today"})
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("yesterday range excludes them", func(t *testing.T) {
		out, err := svc.ListOrders(f.cafe, ident(f.owner), &services.AdminOrdersIn{Range: "yesterday"})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestExportOrders(t *testing.T) {
	f := newFixture(t)
	svc := adminSvc(f)

	f.placeOrder(t, f.customer)

	file, err := svc.ExportOrders(f.cafe, ident(f.owner), &services.AdminOrdersIn{})
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	// header + one order row
	assert.Len(t, file.Sheets[0].Rows, 2)

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	assert.NotZero(t, buf.Len())
}
