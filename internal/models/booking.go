package models

import (
	"time"

	"gorm.io/gorm"
)

// Participant is one traveler on a booking.
type Participant struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
}

type Booking struct {
	gorm.Model
	UserID             uint          `json:"user_id"`
	TrekID             uint          `json:"trek_id"`
	Trek               Trek          `json:"trek" gorm:"foreignKey:TrekID"`
	BookingReference   string        `json:"booking_reference" gorm:"uniqueIndex"`
	BookingDate        time.Time     `json:"booking_date"`
	TrekStartDate      string        `json:"trek_start_date"`
	TrekEndDate        string        `json:"trek_end_date"`
	Participants       []Participant `json:"participants" gorm:"serializer:json"`
	ParticipantsCount  int           `json:"participants_count"`
	PackageType        string        `json:"package_type"`
	AddOns             []string      `json:"add_ons" gorm:"serializer:json"`
	BaseAmount         float64       `json:"base_amount"`
	AddOnsAmount       float64       `json:"add_ons_amount"`
	TotalAmount        float64       `json:"total_amount"`
	PaymentStatus      string        `json:"payment_status"` // pending, paid, refunded
	PaymentID          string        `json:"payment_id"`
	PaymentGateway     string        `json:"payment_gateway"`
	BookingStatus      string        `json:"booking_status"` // confirmed, cancelled, completed
	SpecialRequests    string        `json:"special_requests"`
	CancellationReason string        `json:"cancellation_reason"`
	CancelledAt        *time.Time    `json:"cancelled_at"`
}
