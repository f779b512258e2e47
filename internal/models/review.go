package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID       uint     `json:"user_id"`
	TrekID       uint     `json:"trek_id"`
	Trek         Trek     `json:"trek" gorm:"foreignKey:TrekID"`
	BookingID    uint     `json:"booking_id"`
	Rating       int      `json:"rating"`
	ReviewTitle  string   `json:"review_title"`
	ReviewText   string   `json:"review_text"`
	Photos       []string `json:"photos" gorm:"serializer:json"`
	IsVerified   bool     `json:"is_verified"`
	IsPublished  bool     `json:"is_published"`
	HelpfulCount int      `json:"helpful_count"`
}
