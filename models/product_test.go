package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		original float64
		want     int
	}{
		{"half price", 500, 1000, 50},
		{"rounds nearest", 667, 1000, 33},
		{"no strike-through price", 999, 0, 0},
		{"original equals price", 999, 999, 0},
		{"original below price", 1200, 999, 0},
		{"small discount", 950, 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercent(tt.price, tt.original))
		})
	}
}

func TestProductPrimaryImage(t *testing.T) {
	p := Product{Images: ImageList{{URL: "https://cdn.example.com/a.jpg"}, {URL: "https://cdn.example.com/b.jpg"}}}
	assert.Equal(t, "https://cdn.example.com/a.jpg", p.PrimaryImage())

	empty := Product{}
	assert.Equal(t, "", empty.PrimaryImage())
}

func TestProductToCard(t *testing.T) {
	p := Product{
		Name:          "Chettinad Cotton Saree",
		Brand:         "Sadhana Handlooms",
		Price:         899,
		OriginalPrice: 1499,
		Images:        ImageList{{URL: "https://cdn.example.com/saree.jpg"}},
	}

	card := p.ToCard()
	assert.Equal(t, "Chettinad Cotton Saree", card.Name)
	assert.Equal(t, 40, card.DiscountPercent)
	assert.Equal(t, "https://cdn.example.com/saree.jpg", card.Image)
	assert.False(t, card.Placeholder)
}
