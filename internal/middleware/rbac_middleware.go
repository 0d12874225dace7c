package middleware

import (
	"net/http"

	"github.com/3DBotics/attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Enforcer is the slice of casbin this middleware needs.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// Authorize gates a route on (role, resource, action). AuthMiddleware must
// run first so the role claim is on the context.
func Authorize(e Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := e.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to perform this action", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
