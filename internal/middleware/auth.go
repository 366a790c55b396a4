package middleware

import (
	"strings"

	"github.com/singhalaadi/taskly-capstone-project/internal/apperr"
	"github.com/singhalaadi/taskly-capstone-project/internal/util"

	"github.com/gin-gonic/gin"
)

// CookieName is where the session token lives on the browser side.
const CookieName = "taskzy_token"

const identityKey = "identity"

// Identity is the verified session identity, taken from token claims only.
// Sessions are stateless: validity is purely signature + expiry, no lookup.
type Identity struct {
	ID       string
	Email    string
	Username string
}

// Auth verifies the session token and puts the identity into the context.
// Missing token -> 401; present but invalid or expired -> 403.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Cookie
		if cookie, err := c.Cookie(CookieName); err == nil {
			tokenStr = cookie
		}

		// 2) Header: Authorization: Bearer xxx (for cookie-less clients)
		if tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenStr = parts[1]
				}
			}
		}

		if tokenStr == "" {
			abortWith(c, apperr.Unauthorized("Authentication required"))
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			abortWith(c, apperr.Forbidden("Invalid or expired session"))
			return
		}

		c.Set(identityKey, &Identity{
			ID:       claims.UserID,
			Email:    claims.Email,
			Username: claims.Username,
		})
		c.Next()
	}
}

// CurrentIdentity returns the identity set by Auth, or nil outside it.
func CurrentIdentity(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return id
}

func abortWith(c *gin.Context, err *apperr.Error) {
	_ = c.Error(err)
	c.Abort()
}
