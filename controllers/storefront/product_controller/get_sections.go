package product_controller

import (
	"log"
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetSections godoc
// @Summary List homepage carousel sections
// @Description Get all configured carousel sections in display order (config only, no products)
// @Tags Storefront - Sections
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CarouselSection}
// @Failure 500 {object} models.ApiResponse
// @Router /store/sections [get]
func GetSections(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sections := make([]models.CarouselSection, 0)
	if err := config.StoreGorm.WithContext(ctx).
		Order("position ASC").
		Find(&sections).Error; err != nil {
		log.Printf("❌ Failed to fetch carousel sections: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch sections"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sections fetched successfully", sections))
}
