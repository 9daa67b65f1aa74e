// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raphaelcleo/storefront/internal/config"
	"github.com/raphaelcleo/storefront/internal/handlers"
	"github.com/raphaelcleo/storefront/internal/middleware"
	"github.com/raphaelcleo/storefront/internal/services"
	"github.com/raphaelcleo/storefront/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	reviewService := services.NewReviewService(db)
	cartService := services.NewCartService(db)
	authService, err := services.NewAuthService(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, reviewService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	adminHandler := handlers.NewAdminHandler(authService, catalogService)
	pagesHandler := handlers.NewPagesHandler()

	// Set JWT secret
	utils.SetJWTSecret(cfg.Auth.JWTSecret)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.Session(cfg.Session))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Storefront routes
	r.GET("/", catalogHandler.ListProducts)
	r.GET("/produkt/:id", catalogHandler.GetProduct)
	r.POST("/submit_review/:id", reviewHandler.SubmitReview)

	// Cart routes
	r.GET("/kosik", cartHandler.GetCart)
	r.POST("/kosik/checkout", cartHandler.Checkout)
	r.POST("/add_to_cart/:id", cartHandler.AddToCart)
	r.GET("/remove_from_cart/:id/:size", cartHandler.RemoveFromCart)
	r.POST("/update_cart/:id", cartHandler.UpdateCart)

	// Informational pages
	r.GET("/kontakt", pagesHandler.Kontakt)
	r.GET("/onas", pagesHandler.ONas)

	// Admin routes
	admin := r.Group("/admin")
	{
		admin.POST("/login", middleware.LoginRateLimit(), adminHandler.Login)

		products := admin.Group("/products")
		products.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.MutationLog())
		{
			products.POST("", adminHandler.CreateProduct)
			products.PUT("/:id", adminHandler.UpdateProduct)
			products.DELETE("/:id", adminHandler.DeleteProduct)
		}
	}

	return r, nil
}
