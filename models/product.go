package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type ProductImage struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

// Create custom types for slices (so we can add methods)
type (
	ImageList   []ProductImage
	KeywordList []string
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID             uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string      `json:"name" gorm:"not null;index"`
	Brand          string      `json:"brand" gorm:"not null;default:''"`
	Category       string      `json:"category" gorm:"not null;index:idx_products_category"`
	SubCategory    *string     `json:"sub_category,omitempty"`
	Price          float64     `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice  float64     `json:"original_price" gorm:"type:numeric(12,2);not null;default:0"`
	Images         ImageList   `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	SearchKeywords KeywordList `json:"search_keywords" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Status         string      `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	Views          int         `json:"views" gorm:"default:0"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// DiscountPercent computes the badge percentage from the strike-through price.
// An original price at or below the selling price yields 0 (no badge).
func (p *Product) DiscountPercent() int {
	return DiscountPercent(p.Price, p.OriginalPrice)
}

func DiscountPercent(price, originalPrice float64) int {
	if originalPrice <= price || originalPrice <= 0 {
		return 0
	}
	return int(math.Round((originalPrice - price) / originalPrice * 100))
}

// PrimaryImage returns the first image URL, or "" for an imageless product.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ProductCard is the thin shape rendered inside a carousel grid.
type ProductCard struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand,omitempty"`
	Price           float64 `json:"price"`
	OriginalPrice   float64 `json:"original_price"`
	DiscountPercent int     `json:"discount_percent"`
	Image           string  `json:"image"`
	Placeholder     bool    `json:"placeholder,omitempty"`
}

func (p *Product) ToCard() ProductCard {
	return ProductCard{
		ID:              p.ID.String(),
		Name:            p.Name,
		Brand:           p.Brand,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		Image:           p.PrimaryImage(),
	}
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// ImageList methods
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ProductImage{})
	}
	return json.Marshal(l)
}

// KeywordList methods
func (k *KeywordList) Scan(value interface{}) error {
	if value == nil {
		*k = make(KeywordList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan KeywordList")
	}
	return json.Unmarshal(bytes, k)
}

func (k KeywordList) Value() (driver.Value, error) {
	if k == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(k)
}
