package routes

import (
	"github.com/fatouibra/Projet-Fatou-sub001/configs"
	"github.com/fatouibra/Projet-Fatou-sub001/controllers"
	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/middlewares"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"
	"github.com/fatouibra/Projet-Fatou-sub001/services"
	"github.com/fatouibra/Projet-Fatou-sub001/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine and returns the order event hub for main to run.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) *ws.OrderHub {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	financeRepo := repository.NewFinanceRepository(db)

	// Services
	authz := services.NewAuthorizer(restRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, productRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, productRepo, restRepo, authz)
	restSvc := services.NewRestaurantService(restRepo, userRepo, authz)
	catalogSvc := services.NewCatalogService(catRepo, productRepo, authz)
	financeSvc := services.NewFinanceService(financeRepo, authz, cfg.TopProductsLimit, cfg.DashboardTopLimit)
	reviewSvc := services.NewReviewService(reviewRepo, restRepo, productRepo, orderRepo)
	likeSvc := services.NewLikeService(db, likeRepo)

	hub := ws.NewOrderHub(authz)
	orderSvc.Notifier = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	partnerOrderCtrl := controllers.NewPartnerOrderController(orderSvc)
	exportCtrl := controllers.NewExportController(orderSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, catalogSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	financeCtrl := controllers.NewFinanceController(financeSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	likeCtrl := controllers.NewLikeController(likeSvc)
	adminCtrl := controllers.NewAdminController(financeSvc, restSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public storefront
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/products", restCtrl.Products)
	r.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)
	r.GET("/products/:id", restCtrl.Product)
	r.GET("/products/:id/reviews", reviewCtrl.ListForProduct)

	// Likes are public: guests use a fingerprint identity
	r.POST("/likes/toggle", likeCtrl.Toggle)
	r.GET("/likes/mine", likeCtrl.Mine)

	// Cart + customer orders
	u := r.Group("/", auth())
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateLine)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveLine)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)

		u.POST("/reviews", reviewCtrl.Create)
	}

	// Restaurant back office
	partner := r.Group("/partner/restaurants/:id", auth(entity.RoleRestaurator, entity.RoleAdmin))
	{
		partner.GET("", restCtrl.Account)
		partner.PATCH("", restCtrl.Update)

		partner.GET("/categories", catalogCtrl.Categories)
		partner.POST("/categories", catalogCtrl.CreateCategory)
		partner.PATCH("/categories/:cid", catalogCtrl.UpdateCategory)
		partner.DELETE("/categories/:cid", catalogCtrl.DeleteCategory)

		partner.GET("/products", catalogCtrl.Products)
		partner.POST("/products", catalogCtrl.CreateProduct)
		partner.PATCH("/products/:pid", catalogCtrl.UpdateProduct)
		partner.DELETE("/products/:pid", catalogCtrl.DeleteProduct)

		partner.GET("/orders", partnerOrderCtrl.List)
		partner.GET("/orders-export", exportCtrl.Orders)
		partner.GET("/orders/:oid", partnerOrderCtrl.Detail)
		partner.PATCH("/orders/:oid/status", partnerOrderCtrl.SetStatus)
		partner.PATCH("/orders/:oid/payment", partnerOrderCtrl.SetPayment)

		partner.GET("/finance", financeCtrl.Summary)
		partner.GET("/finance/top-products", financeCtrl.TopProducts)
	}

	// Platform admin
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/restaurants", adminCtrl.Restaurants)
		admin.POST("/restaurants", adminCtrl.CreateRestaurant)
		admin.PATCH("/restaurants/:id/active", adminCtrl.SetRestaurantActive)
		admin.GET("/finance", financeCtrl.PlatformSummary)
	}

	// Live order feed
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleSubscribe)

	return hub
}
