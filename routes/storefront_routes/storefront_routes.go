package storefront_routes

import (
	"github.com/Sadhana-Cart/sadhana-storefront-backend/controllers/storefront/banner_controller"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/controllers/storefront/product_controller"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/controllers/storefront/search_controller"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes sets up the public catalog, search and banner routes
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	// Category carousel sections
	sections := store.Group("/sections")
	{
		sections.GET("", product_controller.GetSections)
		sections.GET("/:slug/products", product_controller.GetSectionProducts)
	}

	store.GET("/products/:id", product_controller.GetProductByID)

	store.GET("/banners", banner_controller.GetBanners)

	// Search routes: anonymous visitors get a client_id cookie so their
	// recent searches survive across requests; signed-in users get theirs
	// keyed by account.
	search := store.Group("/search")
	search.Use(middleware.OptionalAuth(), middleware.ClientID())
	{
		search.GET("/suggestions", search_controller.GetSuggestions)
		search.GET("/recent", search_controller.GetRecentSearches)
		search.POST("/recent", search_controller.AddRecentSearch)
		search.DELETE("/recent", search_controller.DeleteRecentSearches)
	}
}
