package models

import "time"

// Task priorities. Anything else ranks as medium when sorting.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a single to-do item owned by exactly one user.
// OwnerID carries no foreign-key constraint: deleting a user keeps their
// tasks around (matching the product's current behavior).
type Task struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"size:1024"`
	Priority    string `gorm:"size:16;not null;default:medium"`
	Completed   bool   `gorm:"not null;default:false"`
	DueDate     *time.Time
	OwnerID     string `gorm:"size:36;index;not null"`
	// set only by the seeder, never through the update API
	IsOriginalDemo bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
