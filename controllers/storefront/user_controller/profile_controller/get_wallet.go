package profile_controller

import (
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetWallet godoc
// @Summary Get wallet balance
// @Description Returns the signed-in user's wallet balance and coin count
// @Tags User - Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.WalletResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/wallet [get]
func GetWallet(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).
		Select("wallet_balance", "wallet_coins").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wallet fetched successfully", models.WalletResponse{
		Balance: user.WalletBalance,
		Coins:   user.WalletCoins,
	}))
}
