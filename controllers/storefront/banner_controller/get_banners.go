package banner_controller

import (
	"log"
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// maxBanners bounds the hero carousel; only three positions are ever styled
// visible client-side, so more slides just add rotation time.
const maxBanners = 5

// GetBanners godoc
// @Summary Get active promotional banners
// @Description Up to 5 active banners in display order. Fetch failures degrade to an empty list.
// @Tags Storefront - Banners
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.PromoBanner}
// @Router /store/banners [get]
func GetBanners(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	banners := make([]models.PromoBanner, 0)
	if err := config.StoreGorm.WithContext(ctx).
		Where("active = ?", true).
		Order("position ASC").
		Limit(maxBanners).
		Find(&banners).Error; err != nil {
		// Same empty-state path as no banners; the client renders its
		// fallback hero either way.
		log.Printf("❌ Failed to fetch banners: %v", err)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Banners fetched successfully", []models.PromoBanner{}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Banners fetched successfully", banners))
}
