package handler

import (
	"github.com/singhalaadi/taskly-capstone-project/internal/apperr"
	"github.com/singhalaadi/taskly-capstone-project/internal/middleware"
	"github.com/singhalaadi/taskly-capstone-project/internal/store"
	"github.com/singhalaadi/taskly-capstone-project/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler serves profile reads, updates and account deletion.
type UserHandler struct {
	Users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

func validUserID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Me returns the current session's user record.
func (h *UserHandler) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	user, err := h.Users.GetByID(identity.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	util.OK(c, util.Response{"user": toUserResp(user)})
}

// List returns all users, passwords stripped.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.All()
	if err != nil {
		_ = c.Error(err)
		return
	}
	out := make([]userResp, 0, len(users))
	for i := range users {
		out = append(out, toUserResp(&users[i]))
	}
	util.OK(c, util.Response{"users": out})
}

// Get returns a single user, password stripped.
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !validUserID(id) {
		_ = c.Error(apperr.BadRequest("Invalid user ID format"))
		return
	}
	user, err := h.Users.GetByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	util.OK(c, util.Response{"user": toUserResp(user)})
}

type updateUserReq struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Avatar   *string `json:"avatar"`
}

// Update applies a partial profile update. Users can only update their own
// account; a supplied empty password means "no change".
func (h *UserHandler) Update(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	id := c.Param("id")

	if identity.ID != id {
		_ = c.Error(apperr.Forbidden("You can only update your own account"))
		return
	}
	if !validUserID(id) {
		_ = c.Error(apperr.BadRequest("Invalid user ID format"))
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("No data provided for update"))
		return
	}

	if err := h.Users.Update(id, store.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	}); err != nil {
		_ = c.Error(err)
		return
	}

	util.OK(c, util.Response{"message": "User updated successfully"})
}

// Delete removes the user's own account. Their tasks stay behind.
func (h *UserHandler) Delete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	id := c.Param("id")

	if identity.ID != id {
		_ = c.Error(apperr.Forbidden("You can only delete your own account"))
		return
	}
	if !validUserID(id) {
		_ = c.Error(apperr.BadRequest("Invalid user ID format"))
		return
	}

	if err := h.Users.Delete(id); err != nil {
		_ = c.Error(err)
		return
	}

	util.OK(c, util.Response{"message": "User deleted successfully"})
}
