// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handcraftedhaven/haven-backend/internal/config"
	"github.com/handcraftedhaven/haven-backend/internal/handlers"
	"github.com/handcraftedhaven/haven-backend/internal/middleware"
	"github.com/handcraftedhaven/haven-backend/internal/services"
	"github.com/handcraftedhaven/haven-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	listingService := services.NewListingService(db)
	reviewService := services.NewReviewService(db)
	sellerService := services.NewSellerService(db)
	authService := services.NewAuthService(db, cfg)
	storageService, _ := services.NewStorageService(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, reviewService)
	sellerHandler := handlers.NewSellerHandler(sellerService, listingService, storageService, catalogService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS([]string{cfg.Frontend.BaseURL}))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Public storefront routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("/:id/reviews",
				middleware.ReviewRateLimit(),
				middleware.OptionalAuth(),
				productHandler.CreateReview)
		}

		v1.GET("/categories", productHandler.GetCategories)

		// Seller dashboard routes
		seller := v1.Group("/seller")
		seller.Use(middleware.AuthRequired(), middleware.SellerRequired())
		{
			seller.GET("/me", sellerHandler.GetProfile)
			seller.PUT("/me", sellerHandler.UpdateProfile)

			seller.GET("/listings", sellerHandler.GetListings)
			seller.POST("/listings", sellerHandler.CreateListing)
			seller.PUT("/listings/:id", sellerHandler.UpdateListing)
			seller.PATCH("/listings/:id/status", sellerHandler.SetListingStatus)
			seller.DELETE("/listings/:id", sellerHandler.DeleteListing)

			seller.POST("/listings/upload-image", middleware.UploadRateLimit(), sellerHandler.UploadImage)
		}
	}

	return r
}
