package storefront_routes

import (
	"time"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/controllers/storefront/auth_controller"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimiter(10, time.Minute), auth_controller.Register)
		auth.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)

		// Phone OTP routes. The request endpoint is throttled hard since
		// every hit costs an SMS.
		phone := auth.Group("/phone")
		{
			phone.POST("/otp", middleware.RateLimiter(3, time.Minute), auth_controller.RequestPhoneOTP)
			phone.POST("/verify", middleware.RateLimiter(10, time.Minute), auth_controller.VerifyPhoneOTP)
		}

		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
		auth.POST("/google/one-tap", auth_controller.GoogleOneTap)
	}
}
