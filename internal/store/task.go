package store

import (
	"strings"
	"time"

	"github.com/singhalaadi/taskly-capstone-project/internal/apperr"
	"github.com/singhalaadi/taskly-capstone-project/internal/models"
	"github.com/singhalaadi/taskly-capstone-project/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStore is the CRUD surface over task records scoped to an owning user.
// Ownership is part of every lookup predicate (id AND owner), so a foreign
// task is indistinguishable from a missing one.
type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// CreateInput carries the fields accepted at task creation.
type CreateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
	Completed   bool
}

// Create persists a new task for the owner and returns its id.
// Priority defaults to medium; isOriginalDemo is never settable here.
func (s *TaskStore) Create(ownerID string, in CreateInput) (string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return "", apperr.BadRequest("Task title is required")
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}

	task := models.Task{
		ID:             uuid.New().String(),
		Title:          in.Title,
		Description:    in.Description,
		Priority:       in.Priority,
		Completed:      in.Completed,
		DueDate:        in.DueDate,
		OwnerID:        ownerID,
		IsOriginalDemo: false,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return "", apperr.Internal(err)
	}
	return task.ID, nil
}

// GetByID returns a task only if it belongs to the owner.
func (s *TaskStore) GetByID(ownerID, taskID string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ? AND owner_id = ?", taskID, ownerID).
		First(&task).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Task not found")
		}
		return nil, apperr.Internal(err)
	}
	return &task, nil
}

// ListByOwner returns all of a user's tasks in store order. Filtering,
// sorting and pagination belong to the taskquery engine.
func (s *TaskStore) ListByOwner(ownerID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("owner_id = ?", ownerID).Find(&tasks).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return tasks, nil
}

// UpdateFields names the task attributes a partial update may touch.
// Nil pointers are left unchanged; the demo flag and ownership are not
// reachable from here.
type UpdateFields struct {
	Title       *string
	Description *string
	Priority    *string
	Completed   *bool
	DueDate     *time.Time
	ClearDue    bool
}

// Update merges the supplied fields into the owner's task.
func (s *TaskStore) Update(ownerID, taskID string, in UpdateFields) error {
	updates := map[string]interface{}{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return apperr.BadRequest("Task title is required")
		}
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Priority != nil {
		updates["priority"] = *in.Priority
	}
	if in.Completed != nil {
		updates["completed"] = *in.Completed
	}
	if in.DueDate != nil {
		updates["due_date"] = *in.DueDate
	} else if in.ClearDue {
		updates["due_date"] = gorm.Expr("NULL")
	}

	if len(updates) == 0 {
		return apperr.BadRequest("No data provided for update")
	}

	res := s.db.Model(&models.Task{}).
		Where("id = ? AND owner_id = ?", taskID, ownerID).
		Updates(updates)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Task not found")
	}
	return nil
}

// Delete removes the owner's task, running the demo-account policy first:
// demo users cannot delete original demo tasks.
func (s *TaskStore) Delete(ownerID, ownerEmail, taskID string) error {
	if util.IsDemoUser(ownerEmail) {
		task, err := s.GetByID(ownerID, taskID)
		if err != nil {
			return err
		}
		if task.IsOriginalDemo {
			return apperr.DemoForbidden()
		}
	}

	res := s.db.Where("id = ? AND owner_id = ?", taskID, ownerID).
		Delete(&models.Task{})
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Task not found")
	}
	return nil
}
