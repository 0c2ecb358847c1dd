package banner_controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBannerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
		CREATE TABLE promo_banners (
			id text PRIMARY KEY,
			title text NOT NULL,
			image_url text NOT NULL,
			target_url text,
			active numeric DEFAULT 1,
			position integer NOT NULL DEFAULT 0,
			display_seconds integer NOT NULL DEFAULT 5,
			created_at datetime,
			updated_at datetime
		)
	`).Error)
	return db
}

func TestGetBannersCapsActiveListAtFive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.StoreGorm = newBannerDB(t)

	for i := 1; i <= 7; i++ {
		banner := models.PromoBanner{
			Title:          fmt.Sprintf("Sale %d", i),
			ImageURL:       fmt.Sprintf("https://cdn.example.com/sale-%d.jpg", i),
			Active:         true,
			Position:       i,
			DisplaySeconds: 5,
		}
		require.NoError(t, config.StoreGorm.Create(&banner).Error)
	}
	hidden := models.PromoBanner{
		Title:          "Draft",
		ImageURL:       "https://cdn.example.com/draft.jpg",
		Position:       8,
		DisplaySeconds: 5,
	}
	require.NoError(t, config.StoreGorm.Create(&hidden).Error)
	// Active has a true default the insert path keeps, so flip it directly
	require.NoError(t, config.StoreGorm.Model(&models.PromoBanner{}).
		Where("id = ?", hidden.ID).
		UpdateColumn("active", false).Error)

	router := gin.New()
	router.GET("/store/banners", GetBanners)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/store/banners", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string               `json:"message"`
		Data    []models.PromoBanner `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data, 5)
	for i, banner := range resp.Data {
		assert.Equal(t, fmt.Sprintf("Sale %d", i+1), banner.Title, "banners must keep display order")
	}
}
