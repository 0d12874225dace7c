package admin

import (
	"github.com/3DBotics/attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	r.POST("/auth/login", h.Login)

	admins := r.Group("/admins")
	admins.Use(middleware.AuthMiddleware())
	admins.Use(middleware.Authorize(enforcer, "admins", "write"))
	{
		admins.GET("", h.GetAll)
		admins.POST("", h.Create)
		admins.PATCH("/:id", h.Update)
		admins.POST("/:id/password", h.UpdatePassword)
		admins.DELETE("/:id", h.Delete)
	}
}
