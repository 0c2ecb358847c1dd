package order_controller

import (
	"errors"
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTracking godoc
// @Summary Get the shipment timeline for an order
// @Description Returns the milestone steps, with the current step highlighted
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.TrackingResponse}
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /user/orders/{id}/tracking [get]
func GetOrderTracking(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.StoreGorm.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch tracking"))
		return
	}

	steps := order.Timeline()
	current := models.CurrentStepIndex(steps)

	resp := models.TrackingResponse{
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Steps:       steps,
		CurrentStep: current,
	}
	if len(steps) > 0 {
		resp.CurrentStepLabel = steps[current].Label
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tracking fetched successfully", resp))
}
