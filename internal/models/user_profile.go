package models

import (
	"gorm.io/gorm"
)

type UserProfile struct {
	gorm.Model
	UserID                uint   `json:"user_id" gorm:"uniqueIndex"`
	FullName              string `json:"full_name"`
	Phone                 string `json:"phone"`
	DateOfBirth           string `json:"date_of_birth"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	TrekkingExperience    string `json:"trekking_experience"` // beginner, intermediate, advanced
	MedicalConditions     string `json:"medical_conditions"`
	DietaryPreferences    string `json:"dietary_preferences"`
	AvatarURL             string `json:"avatar_url"`
}
