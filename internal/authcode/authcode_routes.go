package authcode

import (
	"github.com/3DBotics/attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer) {
	codes := r.Group("/auth-codes")
	codes.Use(middleware.AuthMiddleware())
	{
		codes.GET("", middleware.Authorize(enforcer, "authcodes", "read"), h.GetAll)
		codes.POST("", middleware.Authorize(enforcer, "authcodes", "write"), h.Create)
		codes.POST("/generate", middleware.Authorize(enforcer, "authcodes", "write"), h.Generate)
		codes.DELETE("/:id", middleware.Authorize(enforcer, "authcodes", "write"), h.Delete)
	}
}

func RegisterKioskRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/verify-auth-code", h.Verify)
}
