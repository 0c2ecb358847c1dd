package section_cache

import (
	"testing"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	t.Cleanup(Invalidate)

	cards := []models.ProductCard{{ID: "p-1", Name: "Pattu Saree"}}
	Set("pattu-sarees", cards)

	got, ok := Get("pattu-sarees")
	require.True(t, ok)
	assert.Equal(t, cards, got)
}

func TestGetMiss(t *testing.T) {
	t.Cleanup(Invalidate)

	_, ok := Get("no-such-section")
	assert.False(t, ok)
}

func TestInvalidateDropsEverything(t *testing.T) {
	Set("kurtis", []models.ProductCard{{ID: "p-2"}})
	Invalidate()

	_, ok := Get("kurtis")
	assert.False(t, ok)
}
