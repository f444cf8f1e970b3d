package app

import (
	"database/sql"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/attendance"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/deduction"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/loan"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/messaging/kafka"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/payroll"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/schedule"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)

	// --- Services ---
	policy := period.SemiMonthly{}
	settingsService := settings.NewService(settingsRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, settingsService, policy)
	deductionService := deduction.NewService(db, deductionRepo, employeeRepo)
	loanService := loan.NewService(db, loanRepo)
	scheduleService := schedule.NewService(db, scheduleRepo)

	engine := payroll.NewEngine(attendanceRepo, deductionRepo, loanRepo, payrollRepo)
	payrollService := payroll.NewService(db, payrollRepo, engine, employeeRepo, settingsService, policy)
	releaser := payroll.NewReleaseOrchestrator(
		db, payrollRepo, engine, employeeRepo, loanRepo,
		settingsService, outboxRepo, counterRepo, policy,
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	deductionHandler := deduction.NewHandler(deductionService)
	loanHandler := loan.NewHandler(loanService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, releaser, rdb)
	scheduleHandler := schedule.NewHandler(scheduleService)
	settingsHandler := settings.NewHandler(settingsService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler)
		deduction.RegisterRoutes(api, deductionHandler)
		loan.RegisterRoutes(api, loanHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		schedule.RegisterRoutes(api, scheduleHandler)
		settings.RegisterRoutes(api, settingsHandler)
	}

	return nil
}
