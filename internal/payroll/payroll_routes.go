package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/3DBotics/attendance/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer middleware.Enforcer, rdb *redis.Client) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	{
		payroll.GET("/periods", middleware.Authorize(enforcer, "payroll", "read"), h.ListPeriods)
		payroll.POST("/periods", middleware.Authorize(enforcer, "payroll", "write"), h.CreatePeriod)
		payroll.GET("/periods/:id/records", middleware.Authorize(enforcer, "payroll", "read"), h.Records)
		payroll.GET("/records/:recordID/deductions", middleware.Authorize(enforcer, "payroll", "read"), h.RecordItems)
		payroll.GET("/thirteenth-month", middleware.Authorize(enforcer, "payroll", "read"), h.ThirteenthMonth)

		// Generation retries safely, but replays of the same request
		// should not rerun the batch.
		payroll.POST("/periods/:id/generate",
			middleware.Authorize(enforcer, "payroll", "write"),
			middleware.Idempotency(rdb),
			h.Generate,
		)
		payroll.POST("/periods/:id/lock", middleware.Authorize(enforcer, "payroll", "write"), h.Lock)
	}
}
