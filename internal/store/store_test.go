package store

import (
	"testing"

	"github.com/singhalaadi/taskly-capstone-project/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))
	return db
}

func mustRegister(t *testing.T, users *UserStore, username, email, password string) *models.User {
	t.Helper()
	u, err := users.Register(RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		Avatar:   "http://localhost:3000/assets/default-user-avatar.png",
	})
	require.NoError(t, err)
	return u
}
