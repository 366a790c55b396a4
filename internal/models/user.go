package models

import "time"

// User represents an application user. Password holds a bcrypt hash for
// registered accounts; seeded demo accounts may still carry a legacy
// plain-text value, distinguished by the "$2" hash prefix at login.
type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Username  string `gorm:"size:64;uniqueIndex;not null"`
	Email     string `gorm:"size:128;uniqueIndex;not null"`
	Password  string `gorm:"size:128;not null"`
	Avatar    string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
