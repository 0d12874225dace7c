package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/3DBotics/attendance/internal/middleware"
)

// RegisterKioskRoutes exposes the recording endpoints the kiosk hits
// without an admin session.
func RegisterKioskRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/time-in", h.TimeIn)
	r.POST("/time-out", h.TimeOut)
	r.GET("/attendance/:employeeID/today", h.TodayStatus)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	att := r.Group("/attendance")
	att.Use(middleware.AuthMiddleware())
	{
		att.GET("/:employeeID", middleware.Authorize(enforcer, "attendance", "read"), h.ListByRange)
		att.DELETE("/:id", middleware.Authorize(enforcer, "attendance", "write"), h.Delete)
	}
}
