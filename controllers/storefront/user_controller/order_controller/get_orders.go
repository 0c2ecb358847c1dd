package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary Get order history
// @Description Returns the signed-in user's orders, newest first, with item counts
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Printf("❌ Failed to count orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	var orders []models.OrderHistoryResponse
	err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT
			o.id::text AS id,
			o.order_number,
			o.status,
			o.total_amount,
			COUNT(oi.id)::int AS item_count,
			o.created_at
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = ?
		GROUP BY o.id, o.order_number, o.status, o.total_amount, o.created_at
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset).Scan(&orders).Error
	if err != nil {
		log.Printf("❌ Failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	if orders == nil {
		orders = []models.OrderHistoryResponse{}
	}

	meta := models.NewPagination(page, limit, int(total))

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders, meta))
}
