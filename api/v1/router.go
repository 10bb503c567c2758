package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/resenas-api/middleware"
	"github.com/resenas-api/repositories"
)

var (
	userRepo     = repositories.NewUserRepository()
	categoryRepo = repositories.NewCategoryRepository()
	productRepo  = repositories.NewProductRepository()
	reviewRepo   = repositories.NewReviewRepository()
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", Login)
		authGroup.POST("/register", Register)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// User endpoints
	userGroup := router.Group("/users")
	{
		userGroup.POST("/", CreateUser)
		userGroup.GET("/", ListUsers)
	}

	// Category endpoints
	categoryGroup := router.Group("/categories")
	{
		categoryGroup.POST("/", CreateCategory)
		categoryGroup.GET("/", ListCategories)
	}

	// Product endpoints
	productGroup := router.Group("/products")
	{
		productGroup.POST("/", CreateProduct)
		productGroup.GET("/", ListProducts)
	}

	// Review endpoints
	reviewGroup := router.Group("/reviews")
	{
		reviewGroup.POST("/", CreateReview)
		reviewGroup.GET("/", ListReviews)
	}
}
