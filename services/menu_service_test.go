package services_test

import (
	"testing"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/apperr"
	"github.com/azim-at/cafeBackend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuOwnerGating(t *testing.T) {
	f := newFixture(t)
	svc := f.menuService()
	price := int64(275)
	in := &services.MenuItemIn{Name: "Cortado", CategoryID: f.drinks.ID, Price: &price}

	t.Run("cafe owner may create", func(t *testing.T) {
		item, err := svc.CreateItem(f.cafe, ident(f.owner), in)
		require.NoError(t, err)
		assert.True(t, item.IsActive)
		assert.Equal(t, f.cafe.ID, item.CafeID)
	})

	t.Run("customer may not", func(t *testing.T) {
		_, err := svc.CreateItem(f.cafe, ident(f.customer), in)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("foreign owner is demoted", func(t *testing.T) {
		_, err := svc.CreateItem(f.cafe, ident(f.otherOwner), in)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		_, err := svc.CreateItem(f.cafe, nil, in)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})
}

func TestMenuItemEditsNeverRewriteOrders(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t, f.customer)

	newPrice := int64(999)
	_, err := f.menuService().UpdateItem(f.cafe, ident(f.owner), f.espresso.ID,
		&services.MenuItemIn{Name: "Double Espresso", Price: &newPrice})
	require.NoError(t, err)

	var item entity.OrderItem
	require.NoError(t, f.db.Where("order_id = ? AND menu_item_id = ?", order.ID, f.espresso.ID).
		First(&item).Error)
	assert.Equal(t, "Espresso", item.NameSnapshot)
	assert.Equal(t, int64(300), item.PriceSnapshot)
}

func TestDeleteCategoryConflicts(t *testing.T) {
	f := newFixture(t)
	svc := f.menuService()

	err := svc.DeleteCategory(f.cafe, ident(f.owner), f.drinks.ID)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	empty, err2 := svc.CreateCategory(f.cafe, ident(f.owner), &services.CategoryIn{Name: "Seasonal"})
	require.NoError(t, err2)
	assert.NoError(t, svc.DeleteCategory(f.cafe, ident(f.owner), empty.ID))
}

func TestDeleteItem(t *testing.T) {
	f := newFixture(t)
	svc := f.menuService()

	t.Run("item with order history conflicts", func(t *testing.T) {
		f.placeOrder(t, f.customer)
		err := svc.DeleteItem(f.cafe, ident(f.owner), f.espresso.ID)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("unreferenced item deletes and sweeps favorites", func(t *testing.T) {
		_, err := f.favoritesService().Create(f.cafe, ident(f.customer), f.retired.ID)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteItem(f.cafe, ident(f.owner), f.retired.ID))

		var favs int64
		require.NoError(t, f.db.Model(&entity.Favorite{}).
			Where("menu_item_id = ?", f.retired.ID).Count(&favs).Error)
		assert.Zero(t, favs)
	})

	t.Run("cross-tenant item is not found", func(t *testing.T) {
		err := svc.DeleteItem(f.cafe, ident(f.owner), f.foreign.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestListItemsVisibility(t *testing.T) {
	f := newFixture(t)
	svc := f.menuService()

	t.Run("public list hides inactive items", func(t *testing.T) {
		items, err := svc.ListItems(f.cafe, nil, nil, false)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("customer cannot request inactive items", func(t *testing.T) {
		items, err := svc.ListItems(f.cafe, ident(f.customer), nil, true)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("owner sees inactive items on request", func(t *testing.T) {
		items, err := svc.ListItems(f.cafe, ident(f.owner), nil, true)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}
