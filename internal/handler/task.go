package handler

import (
	"strconv"
	"time"

	"github.com/singhalaadi/taskly-capstone-project/internal/apperr"
	"github.com/singhalaadi/taskly-capstone-project/internal/middleware"
	"github.com/singhalaadi/taskly-capstone-project/internal/models"
	"github.com/singhalaadi/taskly-capstone-project/internal/store"
	"github.com/singhalaadi/taskly-capstone-project/internal/taskquery"
	"github.com/singhalaadi/taskly-capstone-project/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler serves task CRUD and the derived list view.
type TaskHandler struct {
	Tasks *store.TaskStore
}

func NewTaskHandler(tasks *store.TaskStore) *TaskHandler {
	return &TaskHandler{Tasks: tasks}
}

func validTaskID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// taskResp is the wire form of a task. Due date and timestamps are IST
// locale strings; a missing due date serializes as null.
type taskResp struct {
	ID             string  `json:"_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Priority       string  `json:"priority"`
	Completed      bool    `json:"completed"`
	DueDate        *string `json:"dueDate"`
	Owner          string  `json:"owner"`
	IsOriginalDemo bool    `json:"isOriginalDemo"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func toTaskResp(t *models.Task) taskResp {
	var due *string
	if t.DueDate != nil {
		s := util.FormatIST(*t.DueDate)
		due = &s
	}
	return taskResp{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       t.Priority,
		Completed:      t.Completed,
		DueDate:        due,
		Owner:          t.OwnerID,
		IsOriginalDemo: t.IsOriginalDemo,
		CreatedAt:      util.FormatIST(t.CreatedAt),
		UpdatedAt:      util.FormatIST(t.UpdatedAt),
	}
}

// parseDueDate accepts the date shapes the form and the API clients send.
func parseDueDate(s string) (*time.Time, error) {
	layouts := []string{
		time.RFC3339,          // 2025-12-03T00:00:00+05:30
		"2006-01-02T15:04:05", // 2025-12-03T00:00:00
		"2006-01-02",          // 2025-12-03
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, apperr.BadRequest("Invalid due date format")
}

type createTaskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
}

// Create adds a task owned by the current user.
func (h *TaskHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("Task title is required"))
		return
	}

	var due *time.Time
	if req.DueDate != "" {
		parsed, err := parseDueDate(req.DueDate)
		if err != nil {
			_ = c.Error(err)
			return
		}
		due = parsed
	}

	taskID, err := h.Tasks.Create(identity.ID, store.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     due,
		Completed:   req.Completed,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	util.Created(c, util.Response{
		"message": "Task created successfully",
		"taskId":  taskID,
	})
}

// ListByUser returns the user's tasks. Optional status, orderBy and page
// query params run the shared query engine server-side; without them the
// full set comes back and the client derives its own view with the same
// rules.
func (h *TaskHandler) ListByUser(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	userID := c.Param("id")

	if !validUserID(userID) {
		_ = c.Error(apperr.BadRequest("Invalid user ID"))
		return
	}
	if userID != identity.ID {
		_ = c.Error(apperr.Forbidden("You can only view your own tasks"))
		return
	}

	tasks, err := h.Tasks.ListByOwner(userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := c.Query("status")
	orderBy := c.Query("orderBy")
	derived := taskquery.Sort(taskquery.Filter(tasks, status), orderBy)
	total := len(derived)

	body := util.Response{}
	if pageStr := c.Query("page"); pageStr != "" {
		page, convErr := strconv.Atoi(pageStr)
		if convErr != nil || page < 1 {
			page = 1
		}
		derived, total = taskquery.Paginate(derived, page)
		body["page"] = page
	}

	out := make([]taskResp, 0, len(derived))
	for i := range derived {
		out = append(out, toTaskResp(&derived[i]))
	}
	body["tasks"] = out
	body["total"] = total
	util.OK(c, body)
}

// Get returns a single owned task plus whether the caller is a demo user,
// so the client can explain restricted deletes up front.
func (h *TaskHandler) Get(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	taskID := c.Param("id")

	if !validTaskID(taskID) {
		_ = c.Error(apperr.BadRequest("Invalid task ID"))
		return
	}

	task, err := h.Tasks.GetByID(identity.ID, taskID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	util.OK(c, util.Response{
		"task": toTaskResp(task),
		"userInfo": gin.H{
			"isDemoUser": util.IsDemoUser(identity.Email),
		},
	})
}

type updateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"dueDate"`
}

// Update merges the supplied fields into an owned task. An explicit empty
// dueDate clears it; the demo flag is not reachable from here.
func (h *TaskHandler) Update(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	taskID := c.Param("id")

	if !validTaskID(taskID) {
		_ = c.Error(apperr.BadRequest("Invalid task ID"))
		return
	}

	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("No data provided for update"))
		return
	}

	fields := store.UpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			fields.ClearDue = true
		} else {
			due, err := parseDueDate(*req.DueDate)
			if err != nil {
				_ = c.Error(err)
				return
			}
			fields.DueDate = due
		}
	}

	if err := h.Tasks.Update(identity.ID, taskID, fields); err != nil {
		_ = c.Error(err)
		return
	}

	util.OK(c, util.Response{"message": "Task updated successfully"})
}

// Delete removes an owned task, subject to the demo-account policy.
func (h *TaskHandler) Delete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	taskID := c.Param("id")

	if !validTaskID(taskID) {
		_ = c.Error(apperr.BadRequest("Invalid task ID"))
		return
	}

	if err := h.Tasks.Delete(identity.ID, identity.Email, taskID); err != nil {
		_ = c.Error(err)
		return
	}

	util.OK(c, util.Response{"message": "Task deleted successfully"})
}
