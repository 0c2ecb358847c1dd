package search_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/middleware"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetRecentSearches godoc
// @Summary List the visitor's recent searches
// @Description Up to 5 unique queries, newest first
// @Tags Storefront - Search
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Failure 500 {object} models.ApiResponse
// @Router /store/search/recent [get]
func GetRecentSearches(c *gin.Context) {
	owner := middleware.SearchOwnerKey(c)
	list, err := loadRecent(c.Request.Context(), owner)
	if err != nil {
		log.Printf("❌ Failed to load recent searches for %s: %v", owner, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load recent searches"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recent searches fetched successfully", list))
}

// AddRecentSearch godoc
// @Summary Record a submitted search query
// @Description Dedupes case-insensitively, prepends, and caps the list at 5. Blank queries are rejected without a write.
// @Tags Storefront - Search
// @Accept json
// @Produce json
// @Param body body models.AddRecentSearchRequest true "Submitted query"
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Failure 400 {object} models.ApiResponse "Blank query"
// @Failure 500 {object} models.ApiResponse
// @Router /store/search/recent [post]
func AddRecentSearch(c *gin.Context) {
	var req models.AddRecentSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query is required"))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query is required"))
		return
	}

	owner := middleware.SearchOwnerKey(c)
	ctx := c.Request.Context()

	list, err := loadRecent(ctx, owner)
	if err != nil {
		log.Printf("❌ Failed to load recent searches for %s: %v", owner, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record search"))
		return
	}

	list = pushRecent(list, req.Query)
	if err := storeRecent(ctx, owner, list); err != nil {
		log.Printf("❌ Failed to store recent searches for %s: %v", owner, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record search"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search recorded successfully", list))
}

// DeleteRecentSearches godoc
// @Summary Delete one recent search or clear the whole list
// @Description With ?q= removes that entry; without it clears everything
// @Tags Storefront - Search
// @Produce json
// @Param q query string false "Exact query to remove (case-insensitive)"
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Failure 500 {object} models.ApiResponse
// @Router /store/search/recent [delete]
func DeleteRecentSearches(c *gin.Context) {
	owner := middleware.SearchOwnerKey(c)
	ctx := c.Request.Context()
	query := c.Query("q")

	if query == "" {
		if err := clearRecent(ctx, owner); err != nil {
			log.Printf("❌ Failed to clear recent searches for %s: %v", owner, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear recent searches"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Recent searches cleared successfully", []string{}))
		return
	}

	list, err := loadRecent(ctx, owner)
	if err != nil {
		log.Printf("❌ Failed to load recent searches for %s: %v", owner, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete recent search"))
		return
	}

	list = removeRecent(list, query)
	if err := storeRecent(ctx, owner, list); err != nil {
		log.Printf("❌ Failed to store recent searches for %s: %v", owner, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete recent search"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recent search deleted successfully", list))
}
