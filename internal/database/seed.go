package database

import (
	"fmt"
	"time"

	"github.com/singhalaadi/taskly-capstone-project/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DEMO DATA ONLY - NOT REAL USERS OR PASSWORDS.
// Demo accounts are seeded with plain-text passwords on purpose: they
// exercise the legacy credential path in the login handler.
var demoUsers = []models.User{
	{
		Username: "demoUser",
		Email:    "demoUser@example.com",
		Password: "demoUserPass",
	},
	{
		Username: "demo1",
		Email:    "demo1@example.com",
		Password: "demo456",
	},
}

type demoTask struct {
	title       string
	description string
	completed   bool
	priority    string
}

var demoTasks = []demoTask{
	{
		title:       "Demo Task: Complete project report",
		description: "Finish the final report for the project by end of the week.",
		completed:   false,
		priority:    models.PriorityHigh,
	},
	{
		title:       "Demo Task: Prepare presentation slides",
		description: "Create slides for the upcoming presentation next Monday.",
		completed:   false,
		priority:    models.PriorityMedium,
	},
	{
		title:       "Demo Task: Team meeting",
		description: "Schedule a team meeting to discuss project updates.",
		completed:   true,
		priority:    models.PriorityLow,
	},
}

// Seed inserts the demo users and their original demo tasks. Users that
// already exist are left alone, so seeding is safe to repeat.
func Seed(db *gorm.DB) error {
	for _, u := range demoUsers {
		var count int64
		if err := db.Model(&models.User{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check demo user %s: %w", u.Email, err)
		}
		if count > 0 {
			continue
		}

		user := u
		user.ID = uuid.New().String()
		user.Avatar = "/assets/default-user-avatar.png"
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create demo user %s: %w", u.Email, err)
		}

		due := time.Now().AddDate(0, 0, 1)
		for _, t := range demoTasks {
			d := due
			task := models.Task{
				ID:             uuid.New().String(),
				Title:          t.title,
				Description:    t.description,
				Completed:      t.completed,
				Priority:       t.priority,
				DueDate:        &d,
				OwnerID:        user.ID,
				IsOriginalDemo: true,
			}
			if err := db.Create(&task).Error; err != nil {
				return fmt.Errorf("create demo task %q: %w", t.title, err)
			}
		}
	}
	return nil
}
