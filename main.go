// @title Sadhana Cart Storefront API
// @version 1.0
// @description Sadhana Cart Storefront Backend API Documentation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	_ "github.com/Sadhana-Cart/sadhana-storefront-backend/docs"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/routes/storefront_routes"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// JWT secret is required for session cookies
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Initialize Cloudinary for avatar uploads
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Printf("⚠️ Cloudinary not configured, avatar uploads disabled: %v", err)
	}

	// OTP delivery over SMS (console sender when no gateway configured)
	services.InitOTPService(config.RedisClient, services.NewSMSSenderFromEnv())
	log.Println("✅ OTP service initialized")

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	storefront_routes.SetupStorefrontRoutes(api)
	storefront_routes.SetupAuthRoutes(api)
	storefront_routes.SetupUserRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8080")
	router.Run(":8080")
}
