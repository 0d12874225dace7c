package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/3DBotics/attendance/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	group := r.Group("/settings")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", middleware.Authorize(enforcer, "settings", "read"), h.Get)
		group.PUT("", middleware.Authorize(enforcer, "settings", "write"), h.Update)
	}
}
