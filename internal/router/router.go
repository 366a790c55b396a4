package router

import (
	"net/http"

	"github.com/singhalaadi/taskly-capstone-project/internal/config"
	"github.com/singhalaadi/taskly-capstone-project/internal/handler"
	"github.com/singhalaadi/taskly-capstone-project/internal/middleware"
	"github.com/singhalaadi/taskly-capstone-project/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires stores, handlers and middleware into the gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(
		gin.Logger(),
		gin.Recovery(),
		middleware.CORS(cfg.Server.AllowedOrigin),
		middleware.Errors(),
	)

	// static files: default avatar assets and stored uploads
	r.Static("/assets", "./web/assets")
	r.Static("/uploads", cfg.Upload.Dir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the server!"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})

	users := store.NewUserStore(db)
	tasks := store.NewTaskStore(db)

	secureCookie := cfg.Server.Mode == gin.ReleaseMode
	authHandler := handler.NewAuthHandler(users, cfg.JWT.Secret, cfg.Server.PublicURL, secureCookie)
	userHandler := handler.NewUserHandler(users)
	taskHandler := handler.NewTaskHandler(tasks)
	uploadHandler := handler.NewUploadHandler(cfg.Upload.Dir, cfg.Server.PublicURL)
	exportHandler := handler.NewExportHandler(tasks)

	api := r.Group("/api/v1")

	// session issuance (no auth required)
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)
	api.POST("/users/logout", authHandler.Logout)

	// everything below requires a valid session
	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWT.Secret))

	protected.GET("/users", userHandler.List)
	protected.GET("/users/me", userHandler.Me)
	protected.GET("/users/:id", userHandler.Get)
	protected.PATCH("/users/update/:id", userHandler.Update)
	protected.DELETE("/users/delete/:id", userHandler.Delete)

	protected.POST("/tasks/create", taskHandler.Create)
	protected.GET("/tasks/user/:id", taskHandler.ListByUser)
	protected.GET("/tasks/export/csv", exportHandler.ExportCSV)
	protected.GET("/tasks/export/xlsx", exportHandler.ExportXLSX)
	protected.GET("/tasks/:id", taskHandler.Get)
	protected.PATCH("/tasks/:id", taskHandler.Update)
	protected.DELETE("/tasks/:id", taskHandler.Delete)

	protected.POST("/image/upload", uploadHandler.AddImage)

	return r
}
