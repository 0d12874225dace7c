package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/3DBotics/attendance/internal/admin"
	"github.com/3DBotics/attendance/internal/attendance"
	"github.com/3DBotics/attendance/internal/authcode"
	"github.com/3DBotics/attendance/internal/branch"
	"github.com/3DBotics/attendance/internal/clock"
	"github.com/3DBotics/attendance/internal/employee"
	"github.com/3DBotics/attendance/internal/holiday"
	"github.com/3DBotics/attendance/internal/messaging/kafka"
	"github.com/3DBotics/attendance/internal/middleware"
	"github.com/3DBotics/attendance/internal/payroll"
	"github.com/3DBotics/attendance/internal/rbac"
	"github.com/3DBotics/attendance/internal/settings"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	clk clock.Clock,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	adminRepo := admin.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	authCodeRepo := authcode.NewRepository(db)
	branchRepo := branch.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	holidayRepo := holiday.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(db)
	settingsRepo := settings.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	adminService := admin.NewService(adminRepo, clk)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo, holidayRepo, settingsRepo, clk)
	authCodeService := authcode.NewService(authCodeRepo, clk)
	branchService := branch.NewService(branchRepo)
	employeeService := employee.NewService(employeeRepo)
	payrollService := payroll.NewService(db, payrollRepo, attendanceRepo, employeeRepo, settingsRepo, outboxRepo, clk)

	// --- Handlers ---
	adminHandler := admin.NewHandler(adminService)
	attendanceHandler := attendance.NewHandler(attendanceService, authCodeService)
	authCodeHandler := authcode.NewHandler(authCodeService, authCodeRepo)
	branchHandler := branch.NewHandler(branchService)
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayRepo)
	payrollHandler := payroll.NewHandler(payrollService)
	settingsHandler := settings.NewHandler(settingsRepo)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		admin.RegisterRoutes(api, adminHandler, enforcer)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer)
		authcode.RegisterRoutes(api, authCodeHandler, enforcer)
		branch.RegisterRoutes(api, branchHandler, enforcer)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		holiday.RegisterRoutes(api, holidayHandler, enforcer)
		payroll.RegisterRoutes(api, payrollHandler, enforcer, rdb)
		settings.RegisterRoutes(api, settingsHandler, enforcer)
	}

	// Kiosk endpoints authenticate with the employee PIN flow instead of
	// an admin session; rate limiting keeps a misbehaving tablet in check.
	kiosk := router.Group("/api/v1/kiosk")
	kiosk.Use(middleware.RateLimitByIP(rate.Limit(5), 10))
	{
		attendance.RegisterKioskRoutes(kiosk, attendanceHandler)
		authcode.RegisterKioskRoutes(kiosk, authCodeHandler)
		branch.RegisterKioskRoutes(kiosk, branchHandler)
		employee.RegisterKioskRoutes(kiosk, employeeHandler)
	}

	return nil
}
