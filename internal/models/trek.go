package models

import (
	"gorm.io/gorm"
)

// ItineraryDay is one entry of a trek's day-by-day plan.
type ItineraryDay struct {
	Day           int    `json:"day"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Meals         string `json:"meals"`
	Accommodation string `json:"accommodation"`
}

type Trek struct {
	gorm.Model
	Slug            string         `json:"slug" gorm:"uniqueIndex"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Overview        string         `json:"overview"`
	DurationDays    int            `json:"duration_days"`
	DifficultyLevel string         `json:"difficulty_level"` // easy, moderate, strenuous
	BasePrice       float64        `json:"base_price"`
	MaxAltitude     int            `json:"max_altitude"`
	BestSeason      []string       `json:"best_season" gorm:"serializer:json"`
	Highlights      []string       `json:"highlights" gorm:"serializer:json"`
	Inclusions      []string       `json:"inclusions" gorm:"serializer:json"`
	Exclusions      []string       `json:"exclusions" gorm:"serializer:json"`
	Itinerary       []ItineraryDay `json:"itinerary" gorm:"serializer:json"`
	FeaturedImage   string         `json:"featured_image"`
	GalleryImages   []string       `json:"gallery_images" gorm:"serializer:json"`
	IsActive        bool           `json:"is_active"`
	IsFeatured      bool           `json:"is_featured"`
	MinGroupSize    int            `json:"min_group_size"`
	MaxGroupSize    int            `json:"max_group_size"`
}
