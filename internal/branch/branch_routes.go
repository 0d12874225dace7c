package branch

import (
	"github.com/3DBotics/attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	branches := r.Group("/branches")
	branches.Use(middleware.AuthMiddleware())
	{
		branches.GET("", middleware.Authorize(enforcer, "branches", "read"), h.GetAll)
		branches.POST("", middleware.Authorize(enforcer, "branches", "write"), h.Create)
		branches.POST("/:id/gps", middleware.Authorize(enforcer, "branches", "write"), h.SetGPS)
		branches.DELETE("/:id", middleware.Authorize(enforcer, "branches", "write"), h.Delete)
	}
}

// RegisterKioskRoutes exposes the unauthenticated location check used by
// tablet stations.
func RegisterKioskRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/validate-location", h.ValidateLocation)
}
