package routes

import (
	"github.com/azim-at/cafeBackend/configs"
	"github.com/azim-at/cafeBackend/controllers"
	"github.com/azim-at/cafeBackend/middlewares"
	"github.com/azim-at/cafeBackend/repository"
	"github.com/azim-at/cafeBackend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	cafeRepo := repository.NewCafeRepository(db)
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tokenRepo := repository.NewGuestTokenRepository(db)
	rewardsRepo := repository.NewRewardsRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	// Services
	tenancySvc := services.NewTenancyService(cafeRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, tokenRepo, cfg.GuestTokenTTL)
	tokenSvc := services.NewGuestTokenService(db, tokenRepo, orderRepo)
	rewardsSvc := services.NewRewardsService(db, rewardsRepo, orderRepo)
	favSvc := services.NewFavoritesService(favRepo, menuRepo)
	adminSvc := services.NewAdminService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, tokenSvc, cfg.PublicBaseURL)
	rewardsCtrl := controllers.NewRewardsController(rewardsSvc)
	favCtrl := controllers.NewFavoritesController(favSvc)
	adminCtrl := controllers.NewAdminController(adminSvc, orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	optionalAuth := middlewares.OptionalAuth(cfg.JWTSecret)

	// Auth (tenant-independent)
	a := r.Group("/api/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Everything below is tenant-scoped by slug.
	cafe := r.Group("/api/cafes/:cafeSlug", middlewares.ResolveCafe(tenancySvc))

	menu := cafe.Group("/menu")
	{
		menu.GET("/categories", menuCtrl.ListCategories)
		menu.POST("/categories", auth, menuCtrl.CreateCategory)
		menu.PUT("/categories/:id", auth, menuCtrl.UpdateCategory)
		menu.DELETE("/categories/:id", auth, menuCtrl.DeleteCategory)

		menu.GET("/items", optionalAuth, menuCtrl.ListItems)
		menu.GET("/items/:id", menuCtrl.GetItem)
		menu.POST("/items", auth, menuCtrl.CreateItem)
		menu.PUT("/items/:id", auth, menuCtrl.UpdateItem)
		menu.DELETE("/items/:id", auth, menuCtrl.DeleteItem)
	}

	orders := cafe.Group("/orders")
	{
		orders.POST("", auth, orderCtrl.Create)
		orders.POST("/guest", orderCtrl.CreateGuest)
		orders.GET("", auth, orderCtrl.List)
		orders.GET("/guest/:token", orderCtrl.GetByGuestToken)
		orders.GET("/:id", auth, orderCtrl.Detail)
		orders.PATCH("/:id/status", auth, orderCtrl.UpdateStatus)
		orders.POST("/:id/guest-token", auth, orderCtrl.IssueGuestToken)
		orders.GET("/:id/guest-token/qr", auth, orderCtrl.GuestTokenQR)
	}

	favorites := cafe.Group("/favorites", auth)
	{
		favorites.GET("", favCtrl.List)
		favorites.POST("", favCtrl.Create)
		favorites.DELETE("/:menuItemId", favCtrl.Delete)
	}

	rewards := cafe.Group("/rewards", auth)
	{
		rewards.GET("/account", rewardsCtrl.GetAccount)
		rewards.GET("/transactions", rewardsCtrl.ListTransactions)
		rewards.POST("/transactions", rewardsCtrl.CreateTransaction)
	}

	admin := cafe.Group("/admin", auth)
	{
		admin.GET("/dashboard/summary", adminCtrl.DashboardSummary)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.GET("/orders/export", adminCtrl.ExportOrders)
		admin.PATCH("/orders/:id/decision", adminCtrl.DecideOrder)
	}
}
