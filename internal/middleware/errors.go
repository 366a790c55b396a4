package middleware

import (
	"log"
	"runtime/debug"

	"github.com/singhalaadi/taskly-capstone-project/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Errors is the single top-level error handler: handlers and stores attach
// apperr values with c.Error, and this middleware maps the last one to an
// HTTP status plus a JSON {error, message} body. A stack trace is included
// only outside release mode, and unexpected errors never leak internals.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperr.From(c.Errors.Last().Err)
		if appErr.Err != nil {
			log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
		}

		body := gin.H{"error": appErr.Message}
		if appErr.IsDemoUser {
			body["isDemoUser"] = true
		}
		if appErr.Friendly != "" {
			body["message"] = appErr.Friendly
		}
		if gin.Mode() != gin.ReleaseMode && appErr.Err != nil {
			body["details"] = appErr.Err.Error()
			body["stack"] = string(debug.Stack())
		}

		c.JSON(appErr.Status, body)
	}
}
