package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/repository"
	"github.com/azim-at/cafeBackend/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The shared-cache DSN
// keeps gorm's pooled connections on the same database; the busy
// timeout lets concurrent writers queue instead of failing.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Cafe{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.GuestOrderToken{},
		&entity.RewardsAccount{}, &entity.RewardTransaction{},
		&entity.Favorite{},
	))
	return db
}

// fixture is a two-cafe world: an owner and a customer on the main cafe,
// a second cafe (with its own owner) to exercise tenant isolation.
type fixture struct {
	db *gorm.DB

	cafe      *entity.Cafe
	otherCafe *entity.Cafe

	owner      *entity.User // owns cafe
	otherOwner *entity.User // owns otherCafe, global role owner
	customer   *entity.User
	stranger   *entity.User // second customer on cafe

	drinks   *entity.MenuCategory
	espresso *entity.MenuItem
	muffin   *entity.MenuItem
	retired  *entity.MenuItem // inactive
	foreign  *entity.MenuItem // belongs to otherCafe
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db}

	f.owner = seedUser(t, db, "owner@cafe.test", entity.RoleOwner)
	f.otherOwner = seedUser(t, db, "owner@other.test", entity.RoleOwner)
	f.customer = seedUser(t, db, "customer@cafe.test", entity.RoleCustomer)
	f.stranger = seedUser(t, db, "stranger@cafe.test", entity.RoleCustomer)

	f.cafe = seedCafe(t, db, "corner-cafe", f.owner.ID)
	f.otherCafe = seedCafe(t, db, "rival-cafe", f.otherOwner.ID)

	f.drinks = &entity.MenuCategory{Name: "Drinks", CafeID: f.cafe.ID}
	require.NoError(t, db.Create(f.drinks).Error)

	f.espresso = seedItem(t, db, f.cafe.ID, f.drinks.ID, "Espresso", 300, true)
	f.muffin = seedItem(t, db, f.cafe.ID, f.drinks.ID, "Muffin", 325, true)
	f.retired = seedItem(t, db, f.cafe.ID, f.drinks.ID, "Flat White", 400, false)

	otherCat := &entity.MenuCategory{Name: "Drinks", CafeID: f.otherCafe.ID}
	require.NoError(t, db.Create(otherCat).Error)
	f.foreign = seedItem(t, db, f.otherCafe.ID, otherCat.ID, "Rival Latte", 500, true)

	return f
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCafe(t *testing.T, db *gorm.DB, slug string, ownerID uint) *entity.Cafe {
	t.Helper()
	c := &entity.Cafe{Slug: slug, Name: slug, Status: entity.CafeStatusActive, OwnerUserID: ownerID}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedItem(t *testing.T, db *gorm.DB, cafeID, categoryID uint, name string, price int64, active bool) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: price, IsActive: active, CafeID: cafeID, CategoryID: categoryID}
	require.NoError(t, db.Create(m).Error)
	return m
}

func (f *fixture) orderService() *services.OrderService {
	return services.NewOrderService(
		f.db,
		repository.NewOrderRepository(f.db),
		repository.NewMenuRepository(f.db),
		repository.NewGuestTokenRepository(f.db),
		24*time.Hour,
	)
}

func (f *fixture) tokenService() *services.GuestTokenService {
	return services.NewGuestTokenService(
		f.db,
		repository.NewGuestTokenRepository(f.db),
		repository.NewOrderRepository(f.db),
	)
}

func (f *fixture) rewardsService() *services.RewardsService {
	return services.NewRewardsService(
		f.db,
		repository.NewRewardsRepository(f.db),
		repository.NewOrderRepository(f.db),
	)
}

func (f *fixture) menuService() *services.MenuService {
	return services.NewMenuService(repository.NewMenuRepository(f.db))
}

func (f *fixture) favoritesService() *services.FavoritesService {
	return services.NewFavoritesService(
		repository.NewFavoriteRepository(f.db),
		repository.NewMenuRepository(f.db),
	)
}

func ident(u *entity.User) *services.Identity {
	return &services.Identity{UserID: u.ID, Role: u.Role}
}

// placeOrder creates the standard test order: espresso x1 + muffin x2,
// subtotal 950.
func (f *fixture) placeOrder(t *testing.T, user *entity.User) *entity.Order {
	t.Helper()
	order, err := f.orderService().Create(f.cafe, ident(user), &services.CreateOrderIn{
		Type: entity.OrderTypeTakeaway,
		Items: []services.OrderItemIn{
			{MenuItemID: f.espresso.ID, Quantity: 1},
			{MenuItemID: f.muffin.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	return order
}
