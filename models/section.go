package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarouselSection is one themed homepage carousel, configured as data.
// The storefront used to ship one hand-written component per section; here
// every section runs through the same handler and differs only in this row.
type CarouselSection struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Slug          string    `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	Title         string    `json:"title" gorm:"type:varchar(255);not null"`
	CategoryLabel string    `json:"category_label" gorm:"type:varchar(100);not null;index"`
	Background    string    `json:"background" gorm:"type:varchar(50);not null;default:'#ffffff'"`
	Foreground    string    `json:"foreground" gorm:"type:varchar(50);not null;default:'#111111'"`
	Accent        string    `json:"accent" gorm:"type:varchar(50);not null;default:'#e63946'"`
	Cached        bool      `json:"cached" gorm:"default:false"`
	Position      int       `json:"position" gorm:"not null;default:0;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (CarouselSection) TableName() string {
	return "carousel_sections"
}

func (s *CarouselSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// SectionResponse is the section config plus its sampled product grid.
type SectionResponse struct {
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	CategoryLabel string        `json:"category_label"`
	Background    string        `json:"background"`
	Foreground    string        `json:"foreground"`
	Accent        string        `json:"accent"`
	Products      []ProductCard `json:"products"`
}
