package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/resenas-api/api/v1"
	"github.com/resenas-api/config"
	"github.com/resenas-api/database"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Connect to database and run migrations
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration: only the local frontend is allowed
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	v1.RegisterRoutes(router)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8000")

	// Start server
	log.Printf("🚀 API Reseñas starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
