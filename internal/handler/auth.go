package handler

import (
	"net/http"

	"github.com/singhalaadi/taskly-capstone-project/internal/apperr"
	"github.com/singhalaadi/taskly-capstone-project/internal/middleware"
	"github.com/singhalaadi/taskly-capstone-project/internal/models"
	"github.com/singhalaadi/taskly-capstone-project/internal/store"
	"github.com/singhalaadi/taskly-capstone-project/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	Users        *store.UserStore
	JWTSecret    string
	PublicURL    string
	SecureCookie bool
}

func NewAuthHandler(users *store.UserStore, jwtSecret, publicURL string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		Users:        users,
		JWTSecret:    jwtSecret,
		PublicURL:    publicURL,
		SecureCookie: secureCookie,
	}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResp is the wire form of a user: password stripped, timestamps as
// IST locale strings.
type userResp struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserResp(u *models.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: util.FormatIST(u.CreatedAt),
		UpdatedAt: util.FormatIST(u.UpdatedAt),
	}
}

// setSessionCookie delivers the token as an HTTP-only, SameSite-Strict
// cookie so client-side script never sees it.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, token, int(util.SessionTTL.Seconds()), "/", "", h.SecureCookie, true)
}

// Register creates a user, hashes the password and issues a session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("Username, email, and password are required"))
		return
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = h.PublicURL + "/assets/default-user-avatar.png"
	}

	user, err := h.Users.Register(store.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   avatar,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Username, util.SessionTTL)
	if err != nil {
		_ = c.Error(apperr.Internal(err))
		return
	}

	h.setSessionCookie(c, token)
	util.Created(c, util.Response{
		"message": "User registered successfully",
		"user":    toUserResp(user),
		"token":   token,
	})
}

// Login verifies credentials and issues a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("Email and password are required"))
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Username, util.SessionTTL)
	if err != nil {
		_ = c.Error(apperr.Internal(err))
		return
	}

	h.setSessionCookie(c, token)
	util.OK(c, util.Response{
		"message": "Login successful",
		"user":    toUserResp(user),
		"token":   token,
	})
}

// Logout clears the session cookie. Idempotent: succeeds with or without a
// live session.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.SecureCookie, true)
	util.OK(c, util.Response{
		"message": "Logout successful",
	})
}
