package models

import (
	"time"

	"gorm.io/gorm"
)

// APIKey is a personal access credential for integrations that cannot hold a
// session cookie, e.g. travel-agent tooling pulling bookings. The stored key
// carries the hatk_ prefix and is returned in full only at creation; list
// responses mask it.
type APIKey struct {
	gorm.Model
	UserID     uint       `json:"user_id"`
	User       User       `json:"user"`
	Key        string     `json:"key" gorm:"uniqueIndex"`
	Name       string     `json:"name"`
	ExpiresAt  *time.Time `json:"expires_at"` // nil means the key never expires
	LastUsedAt *time.Time `json:"last_used_at"`
}
