package product_controller

import (
	"errors"
	"log"
	"net/http"

	section_cache "github.com/Sadhana-Cart/sadhana-storefront-backend/cache"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSectionProducts godoc
// @Summary Get the sampled product grid of one carousel section
// @Description Fetch the section's category slice, shuffle, cap at 4 cards, and pad with placeholders when the category is sparse. Sections flagged as cached serve a 5-minute snapshot.
// @Tags Storefront - Sections
// @Produce json
// @Param slug path string true "Section slug"
// @Success 200 {object} models.ApiResponse{data=models.SectionResponse}
// @Failure 404 {object} models.ApiResponse "Section not found"
// @Failure 500 {object} models.ApiResponse
// @Router /store/sections/{slug}/products [get]
func GetSectionProducts(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var section models.CarouselSection
	if err := config.StoreGorm.WithContext(ctx).
		Where("slug = ?", slug).
		First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Section not found"))
			return
		}
		log.Printf("❌ Failed to fetch section %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch section"))
		return
	}

	// Cached sections serve the previous shuffle until the TTL lapses
	if section.Cached {
		if cards, ok := section_cache.Get(section.Slug); ok {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Section products fetched successfully", sectionResponse(&section, cards)))
			return
		}
	}

	products := make([]models.Product, 0)
	if err := config.StoreGorm.WithContext(ctx).
		Where("category = ? AND status = ?", section.CategoryLabel, "Active").
		Find(&products).Error; err != nil {
		log.Printf("❌ Failed to fetch products for section %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch section products"))
		return
	}

	cards := shuffleAndCap(toCards(products))
	cards = backfillPlaceholders(cards, section.CategoryLabel)

	if section.Cached {
		section_cache.Set(section.Slug, cards)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section products fetched successfully", sectionResponse(&section, cards)))
}

func sectionResponse(section *models.CarouselSection, cards []models.ProductCard) models.SectionResponse {
	return models.SectionResponse{
		Slug:          section.Slug,
		Title:         section.Title,
		CategoryLabel: section.CategoryLabel,
		Background:    section.Background,
		Foreground:    section.Foreground,
		Accent:        section.Accent,
		Products:      cards,
	}
}
