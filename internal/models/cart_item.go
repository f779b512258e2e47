package models

import (
	"gorm.io/gorm"
)

// CartItem holds one trek in a user's cart. PriceSnapshot is the per-person
// price captured at add-to-cart time; it is never recomputed from the live
// trek price for an existing row.
type CartItem struct {
	gorm.Model
	UserID            uint     `json:"user_id" gorm:"uniqueIndex:idx_user_trek_date"`
	TrekID            uint     `json:"trek_id" gorm:"uniqueIndex:idx_user_trek_date"`
	Trek              Trek     `json:"trek" gorm:"foreignKey:TrekID"`
	SelectedDate      string   `json:"selected_date" gorm:"uniqueIndex:idx_user_trek_date"`
	ParticipantsCount int      `json:"participants_count"`
	PackageType       string   `json:"package_type"`
	AddOns            []string `json:"add_ons" gorm:"serializer:json"`
	PriceSnapshot     float64  `json:"price_snapshot"`
}
