package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	GoogleID     string `gorm:"index" json:"-"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	Avatar       string `json:"avatar"`
}
