package profile_controller

import (
	"log"
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20 // 5 MB

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Description Uploads an avatar image to Cloudinary and stores the delivery URL on the profile
// @Tags User - Profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Image file (max 5MB)"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse "Missing or oversized file"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse
// @Router /user/avatar [post]
func UploadAvatar(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Avatar file is required"))
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Avatar must be smaller than 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read avatar file"))
		return
	}
	defer file.Close()

	cld := services.GetCloudinaryService()
	if cld == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	url, err := cld.UploadAvatar(c.Request.Context(), file, userID.(string))
	if err != nil {
		log.Printf("❌ Avatar upload failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload avatar"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save avatar"))
		return
	}

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch updated profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Avatar uploaded successfully", user.ToResponse()))
}
