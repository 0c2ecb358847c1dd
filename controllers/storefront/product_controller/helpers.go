package product_controller

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Sampling helpers
// ─────────────────────────────────────────────────────────────

// gridSize is the fixed card count every section renders.
const gridSize = 4

// shuffleAndCap applies a Fisher-Yates in-place shuffle and truncates to the
// grid size, so every qualifying product has equal selection probability on
// each fetch.
func shuffleAndCap(cards []models.ProductCard) []models.ProductCard {
	for i := len(cards) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	if len(cards) > gridSize {
		cards = cards[:gridSize]
	}
	return cards
}

// placeholderTemplates are the deterministic card shells used to pad sparse
// categories up to the full grid. Prices and discounts are re-rolled per
// request.
var placeholderTemplates = []struct {
	Name  string
	Image string
}{
	{"Classic Pick", "/static/placeholders/classic.jpg"},
	{"Festive Special", "/static/placeholders/festive.jpg"},
	{"Everyday Essential", "/static/placeholders/everyday.jpg"},
	{"Premium Weave", "/static/placeholders/premium.jpg"},
}

// backfillPlaceholders pads the grid to exactly gridSize cards. A category
// too sparse to fill its section still renders a stable 4-card grid.
func backfillPlaceholders(cards []models.ProductCard, category string) []models.ProductCard {
	for i := 0; len(cards) < gridSize; i++ {
		t := placeholderTemplates[i%len(placeholderTemplates)]

		original := float64(499 + rand.Intn(2000))
		discount := 10 + rand.Intn(50)
		price := math.Round(original * float64(100-discount)) / 100

		cards = append(cards, models.ProductCard{
			ID:              fmt.Sprintf("placeholder-%d", i),
			Name:            fmt.Sprintf("%s %s", category, t.Name),
			Price:           price,
			OriginalPrice:   original,
			DiscountPercent: models.DiscountPercent(price, original),
			Image:           t.Image,
			Placeholder:     true,
		})
	}
	return cards
}

func toCards(products []models.Product) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(products))
	for i := range products {
		cards = append(cards, products[i].ToCard())
	}
	return cards
}
