package employee

import (
	"github.com/3DBotics/attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(enforcer, "employees", "read"), h.GetAll)
		employees.POST("", middleware.Authorize(enforcer, "employees", "write"), h.Create)
		employees.PATCH("/:id", middleware.Authorize(enforcer, "employees", "write"), h.Update)
		// Status transitions are master-admin only; "admins" is not granted
		// to staff in the policy table.
		employees.POST("/:id/status", middleware.Authorize(enforcer, "admins", "write"), h.ChangeStatus)
		employees.POST("/:id/resign", middleware.Authorize(enforcer, "admins", "write"), h.Resign)
	}
}

func RegisterKioskRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/employees", h.ListActive)
	r.POST("/verify-pin", h.VerifyPIN)
}
