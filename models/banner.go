package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromoBanner is one slide of the homepage hero carousel.
type PromoBanner struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string    `json:"title" gorm:"type:varchar(255);not null"`
	ImageURL       string    `json:"image_url" gorm:"type:text;not null"`
	TargetURL      *string   `json:"target_url,omitempty" gorm:"type:text"`
	Active         bool      `json:"active" gorm:"default:true;index"`
	Position       int       `json:"position" gorm:"not null;default:0"`
	DisplaySeconds int       `json:"display_seconds" gorm:"not null;default:5"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PromoBanner) TableName() string {
	return "promo_banners"
}

func (b *PromoBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
