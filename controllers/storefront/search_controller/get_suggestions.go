package search_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/middleware"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

const (
	suggestionLimit = 6
	fallbackWindow  = 20
	trendingLimit   = 5
)

// GetSuggestions godoc
// @Summary Autocomplete suggestions for the search box
// @Description Keyword-indexed lookup capped at 6 results, with a substring fallback scan over a fixed 20-row window when the index has no match. An empty query returns trending products and the caller's recent searches instead. The rev token is echoed verbatim so clients can discard stale responses.
// @Tags Storefront - Search
// @Produce json
// @Param q query string false "Partial query"
// @Param rev query string false "Client request token, echoed back"
// @Success 200 {object} models.ApiResponse{data=models.SuggestionsResponse}
// @Router /store/search/suggestions [get]
func GetSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	rev := c.Query("rev")

	// Empty input: trending products + the visitor's recent searches
	if query == "" {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Trending fetched successfully", models.SuggestionsResponse{
			Rev:      rev,
			Query:    query,
			Trending: fetchTrending(),
			Recent:   fetchRecentForRequest(c),
		}))
		return
	}

	suggestions := lookupSuggestions(query)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched successfully", models.SuggestionsResponse{
		Rev:         rev,
		Query:       query,
		Suggestions: suggestions,
	}))
}

// lookupSuggestions runs the indexed keyword match first and falls back to a
// substring scan over a fixed window when it comes back empty. Any error
// degrades to no suggestions.
func lookupSuggestions(query string) []models.SearchSuggestion {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	token := strings.ToLower(query)
	tokenJSON, _ := json.Marshal([]string{token})

	rows := make([]models.Product, 0)
	err := config.StoreGorm.WithContext(ctx).
		Where("status = ? AND search_keywords @> ?::jsonb", "Active", string(tokenJSON)).
		Limit(suggestionLimit).
		Find(&rows).Error
	if err != nil {
		log.Printf("❌ Suggestion lookup failed for %q: %v", query, err)
		return []models.SearchSuggestion{}
	}

	if len(rows) > 0 {
		return toSuggestions(rows)
	}

	// Fallback: fetch a fixed window and substring-match in process. Entries
	// outside the window are invisible to this path.
	window := make([]models.Product, 0)
	err = config.StoreGorm.WithContext(ctx).
		Where("status = ?", "Active").
		Limit(fallbackWindow).
		Find(&window).Error
	if err != nil {
		log.Printf("❌ Suggestion fallback failed for %q: %v", query, err)
		return []models.SearchSuggestion{}
	}

	matched := matchWindow(window, query)
	return toSuggestions(matched)
}

// matchWindow keeps rows whose name or brand contains the query,
// case-insensitively, capped at the suggestion limit.
func matchWindow(window []models.Product, query string) []models.Product {
	needle := strings.ToLower(query)
	matched := make([]models.Product, 0, suggestionLimit)
	for i := range window {
		if strings.Contains(strings.ToLower(window[i].Name), needle) ||
			strings.Contains(strings.ToLower(window[i].Brand), needle) {
			matched = append(matched, window[i])
			if len(matched) == suggestionLimit {
				break
			}
		}
	}
	return matched
}

// fetchTrending returns the newest active products as stand-in trending
// suggestions.
func fetchTrending() []models.SearchSuggestion {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows := make([]models.Product, 0)
	if err := config.StoreGorm.WithContext(ctx).
		Where("status = ?", "Active").
		Order("created_at DESC").
		Limit(trendingLimit).
		Find(&rows).Error; err != nil {
		log.Printf("❌ Trending lookup failed: %v", err)
		return []models.SearchSuggestion{}
	}
	return toSuggestions(rows)
}

func fetchRecentForRequest(c *gin.Context) []string {
	owner := middleware.SearchOwnerKey(c)
	if owner == "" {
		return []string{}
	}
	list, err := loadRecent(c.Request.Context(), owner)
	if err != nil {
		log.Printf("❌ Recent search load failed for %s: %v", owner, err)
		return []string{}
	}
	return list
}

func toSuggestions(rows []models.Product) []models.SearchSuggestion {
	out := make([]models.SearchSuggestion, 0, len(rows))
	for i := range rows {
		out = append(out, models.SearchSuggestion{
			ID:    rows[i].ID.String(),
			Name:  rows[i].Name,
			Brand: rows[i].Brand,
			Price: rows[i].Price,
			Image: rows[i].PrimaryImage(),
		})
	}
	return out
}
