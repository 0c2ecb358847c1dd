package storefront_routes

import (
	"github.com/Sadhana-Cart/sadhana-storefront-backend/controllers/storefront/user_controller/order_controller"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/controllers/storefront/user_controller/profile_controller"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up all user profile routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/me", profile_controller.GetMe)
		user.GET("/overview", profile_controller.GetUserOverview)
		user.GET("/wallet", profile_controller.GetWallet)
		user.PATCH("/preferences", profile_controller.UpdatePreferences)
		user.POST("/avatar", profile_controller.UploadAvatar)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
		user.GET("/orders/:id/tracking", order_controller.GetOrderTracking)
		user.GET("/orders/:id/invoice", order_controller.DownloadInvoice)
	}
}
