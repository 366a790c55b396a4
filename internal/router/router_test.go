package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/singhalaadi/taskly-capstone-project/internal/config"
	"github.com/singhalaadi/taskly-capstone-project/internal/database"
	"github.com/singhalaadi/taskly-capstone-project/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		Server: config.ServerConfig{
			Mode:          gin.TestMode,
			PublicURL:     "http://localhost:3000",
			AllowedOrigin: "http://localhost:5173",
		},
		JWT:    config.JWTConfig{Secret: "test-secret"},
		Upload: config.UploadConfig{Dir: t.TempDir()},
	}
	return SetupRouter(cfg, db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, r *gin.Engine, username, email string) (userID, token string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/users/register", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	user := body["user"].(map[string]interface{})
	return user["_id"].(string), body["token"].(string)
}

func TestRegister_SetsSessionCookieAndStripsPassword(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users/register", gin.H{
		"username": "alice",
		"email":    "alice@company.org",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "password must never be serialized")

	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "taskzy_token" {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie, "session cookie not set")
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, sessionCookie.SameSite)
}

func TestRegister_ValidationAndConflict(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users/register", gin.H{
		"username": "alice", "email": "alice@company.org", "password": "12345",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	registerUser(t, r, "alice", "alice@company.org")

	w = doJSON(t, r, http.MethodPost, "/api/v1/users/register", gin.H{
		"username": "alice2", "email": "alice@company.org", "password": "secret123",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

// Wrong password and unknown email must produce identical bodies.
func TestLogin_FailureBodiesIndistinguishable(t *testing.T) {
	r, _ := newTestServer(t)
	registerUser(t, r, "alice", "alice@company.org")

	w1 := doJSON(t, r, http.MethodPost, "/api/v1/users/login", gin.H{
		"email": "alice@company.org", "password": "wrong",
	}, "")
	w2 := doJSON(t, r, http.MethodPost, "/api/v1/users/login", gin.H{
		"email": "ghost@company.org", "password": "whatever",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.JSONEq(t, w1.Body.String(), w2.Body.String())
}

func TestProtected_MissingTokenIs401InvalidTokenIs403(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/me", nil, "not.a.jwt")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTask_CreateAndReadBack(t *testing.T) {
	r, _ := newTestServer(t)
	userID, token := registerUser(t, r, "alice", "alice@company.org")

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/create", gin.H{
		"title": "T", "priority": "high",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	taskID := decode(t, w)["taskId"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/"+taskID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	taskBody := body["task"].(map[string]interface{})
	assert.Equal(t, "T", taskBody["title"])
	assert.Equal(t, "high", taskBody["priority"])
	assert.Equal(t, false, taskBody["completed"])
	assert.Equal(t, false, taskBody["isOriginalDemo"])
	assert.Equal(t, userID, taskBody["owner"])
	userInfo := body["userInfo"].(map[string]interface{})
	assert.Equal(t, false, userInfo["isDemoUser"])
}

func TestTask_CreateWithoutTitle(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerUser(t, r, "alice", "alice@company.org")

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/create", gin.H{
		"description": "no title",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTask_CrossUserFetchIsNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	_, aliceToken := registerUser(t, r, "alice", "alice@company.org")
	_, bobToken := registerUser(t, r, "bob", "bob@company.org")

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/create", gin.H{"title": "Private"}, aliceToken)
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := decode(t, w)["taskId"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/"+taskID, nil, bobToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTask_ListPaginatesServerSide(t *testing.T) {
	r, _ := newTestServer(t)
	userID, token := registerUser(t, r, "alice", "alice@company.org")

	for i := 0; i < 12; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/create", gin.H{"title": "Task"}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks/user/"+userID+"?page=2", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(12), body["total"])
	assert.Len(t, body["tasks"].([]interface{}), 2)

	// page beyond the last is empty, not an error
	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/user/"+userID+"?page=9", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Len(t, body["tasks"].([]interface{}), 0)
}

func TestTask_DemoUserDeleteRefusalCarriesFlag(t *testing.T) {
	r, db := newTestServer(t)
	demoID, token := registerUser(t, r, "demoUser", "demoUser@example.com")

	seeded := models.Task{
		ID:             "33333333-3333-3333-3333-333333333333",
		Title:          "Demo Task: Team meeting",
		Priority:       models.PriorityLow,
		OwnerID:        demoID,
		IsOriginalDemo: true,
	}
	require.NoError(t, db.Create(&seeded).Error)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/tasks/"+seeded.ID, nil, token)
	require.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["isDemoUser"])
	assert.NotEmpty(t, body["message"])

	// the same demo user deleting their own creation succeeds
	w = doJSON(t, r, http.MethodPost, "/api/v1/tasks/create", gin.H{"title": "Mine"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	ownID := decode(t, w)["taskId"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/tasks/"+ownID, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUser_UpdateIsSelfOnly(t *testing.T) {
	r, _ := newTestServer(t)
	aliceID, _ := registerUser(t, r, "alice", "alice@company.org")
	_, bobToken := registerUser(t, r, "bob", "bob@company.org")

	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/update/"+aliceID, gin.H{
		"username": "hacked",
	}, bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users/logout", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cleared *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "taskzy_token" {
			cleared = ck
		}
	}
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}
