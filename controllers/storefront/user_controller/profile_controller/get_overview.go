package profile_controller

import (
	"log"
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserOverview godoc
// @Summary Get the header badge summary
// @Description Profile plus order counts and wallet, in one round trip for the navigation shell
// @Tags User - Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.UserOverviewResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse
// @Router /user/overview [get]
func GetUserOverview(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
		return
	}

	var counts struct {
		Total int `gorm:"column:total"`
		Open  int `gorm:"column:open"`
	}
	err = config.StoreGorm.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)::int AS total,
			COUNT(*) FILTER (WHERE status NOT IN ('delivered', 'cancelled'))::int AS open
		FROM orders
		WHERE user_id = ?
	`, userID).Scan(&counts).Error
	if err != nil {
		log.Printf("❌ Failed to count orders for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch overview"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Overview fetched successfully", models.UserOverviewResponse{
		Profile:     user.ToResponse(),
		TotalOrders: counts.Total,
		OpenOrders:  counts.Open,
		Wallet: models.WalletResponse{
			Balance: user.WalletBalance,
			Coins:   user.WalletCoins,
		},
	}))
}
