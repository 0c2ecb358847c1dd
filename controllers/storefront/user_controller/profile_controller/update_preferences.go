package profile_controller

import (
	"net/http"
	"strings"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdatePreferences godoc
// @Summary Update profile preferences
// @Description Updates the user's display name and/or theme. Theme must be "light" or "dark".
// @Tags User - Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body models.UpdatePreferencesRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse "Invalid theme"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse
// @Router /user/preferences [patch]
func UpdatePreferences(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name cannot be empty"))
			return
		}
		updates["name"] = name
	}
	if req.Theme != nil {
		theme := strings.ToLower(strings.TrimSpace(*req.Theme))
		if theme != "light" && theme != "dark" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Theme must be light or dark"))
			return
		}
		updates["theme"] = theme
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update preferences"))
		return
	}

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch updated profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preferences updated successfully", user.ToResponse()))
}
