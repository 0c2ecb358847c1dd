package product_controller

import (
	"fmt"
	"testing"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCards(n int) []models.ProductCard {
	cards := make([]models.ProductCard, n)
	for i := range cards {
		cards[i] = models.ProductCard{ID: fmt.Sprintf("p-%d", i), Name: fmt.Sprintf("Product %d", i)}
	}
	return cards
}

func TestShuffleAndCapTruncates(t *testing.T) {
	cards := shuffleAndCap(makeCards(12))
	assert.Len(t, cards, gridSize)

	// Every survivor must be one of the originals, no duplicates
	seen := map[string]bool{}
	for _, c := range cards {
		assert.False(t, seen[c.ID], "duplicate card %s", c.ID)
		seen[c.ID] = true
	}
}

func TestShuffleAndCapSmallInput(t *testing.T) {
	assert.Len(t, shuffleAndCap(makeCards(2)), 2)
	assert.Len(t, shuffleAndCap(makeCards(0)), 0)
	assert.Len(t, shuffleAndCap(makeCards(gridSize)), gridSize)
}

func TestBackfillPlaceholdersPadsToGrid(t *testing.T) {
	cards := backfillPlaceholders(makeCards(1), "Kurti")
	require.Len(t, cards, gridSize)

	assert.False(t, cards[0].Placeholder)
	for i := 1; i < gridSize; i++ {
		card := cards[i]
		assert.True(t, card.Placeholder)
		assert.Contains(t, card.Name, "Kurti")
		assert.Equal(t, fmt.Sprintf("placeholder-%d", i-1), card.ID)

		// Placeholder pricing always shows a believable discount badge
		assert.Greater(t, card.OriginalPrice, card.Price)
		assert.GreaterOrEqual(t, card.DiscountPercent, 10)
		assert.LessOrEqual(t, card.DiscountPercent, 59)
	}
}

func TestBackfillPlaceholdersEmptyCategory(t *testing.T) {
	cards := backfillPlaceholders(nil, "Lehenga")
	require.Len(t, cards, gridSize)
	for _, c := range cards {
		assert.True(t, c.Placeholder)
	}
}

func TestBackfillPlaceholdersFullGridUntouched(t *testing.T) {
	in := makeCards(gridSize)
	out := backfillPlaceholders(in, "Shirt")
	assert.Equal(t, in, out)
}
