package search_controller

import (
	"fmt"
	"testing"
	"time"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func windowOf(names ...string) []models.Product {
	out := make([]models.Product, len(names))
	for i, n := range names {
		out[i] = models.Product{Name: n, Brand: "Sadhana"}
	}
	return out
}

func TestMatchWindowNameSubstring(t *testing.T) {
	window := windowOf("Kanchipuram Silk Saree", "Linen Shirt", "Cotton Saree")
	matched := matchWindow(window, "saree")

	assert.Len(t, matched, 2)
	assert.Equal(t, "Kanchipuram Silk Saree", matched[0].Name)
	assert.Equal(t, "Cotton Saree", matched[1].Name)
}

func TestMatchWindowCaseInsensitive(t *testing.T) {
	window := windowOf("Pattu Pavadai")
	assert.Len(t, matchWindow(window, "PATTU"), 1)
}

func TestMatchWindowBrand(t *testing.T) {
	window := []models.Product{{Name: "Temple Necklace", Brand: "Sadhana Adornments"}}
	matched := matchWindow(window, "adorn")
	assert.Len(t, matched, 1)
}

func TestMatchWindowCapsAtLimit(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("Saree %d", i)
	}
	matched := matchWindow(windowOf(names...), "saree")
	assert.Len(t, matched, suggestionLimit)
}

func TestMatchWindowNoMatch(t *testing.T) {
	matched := matchWindow(windowOf("Linen Shirt"), "lehenga")
	assert.Empty(t, matched)
}

// newCatalogDB opens an in-memory database with a products table matching
// the production columns. The JSON columns are blobs so the list scanners
// see raw bytes.
func newCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
		CREATE TABLE products (
			id text PRIMARY KEY,
			name text NOT NULL,
			brand text NOT NULL DEFAULT '',
			category text NOT NULL,
			sub_category text,
			price numeric NOT NULL,
			original_price numeric NOT NULL DEFAULT 0,
			images blob,
			search_keywords blob,
			status text NOT NULL,
			views integer DEFAULT 0,
			created_at datetime,
			updated_at datetime
		)
	`).Error)
	return db
}

func TestFetchTrendingNewestActiveFive(t *testing.T) {
	config.StoreGorm = newCatalogDB(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 1; i <= 6; i++ {
		product := models.Product{
			Name:      fmt.Sprintf("Saree %d", i),
			Brand:     "Sadhana",
			Category:  "Sarees",
			Price:     1499,
			Images:    models.ImageList{{URL: fmt.Sprintf("https://cdn.example.com/saree-%d.jpg", i)}},
			Status:    "Active",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, config.StoreGorm.Create(&product).Error)
	}
	draft := models.Product{
		Name:      "Unlisted Lehenga",
		Brand:     "Sadhana",
		Category:  "Lehengas",
		Price:     2999,
		Status:    "Draft",
		CreatedAt: base.Add(24 * time.Hour),
	}
	require.NoError(t, config.StoreGorm.Create(&draft).Error)

	trending := fetchTrending()

	require.Len(t, trending, trendingLimit)
	for i, s := range trending {
		assert.Equal(t, fmt.Sprintf("Saree %d", 6-i), s.Name, "newest active first")
		assert.NotEmpty(t, s.Image)
	}
}
