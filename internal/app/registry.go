package app

import (
	"database/sql"

	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payslip"
	"go-payroll/internal/rbac"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	salaryService := salary.NewService(salaryRepo, employeeRepo, salary.WithLogger(logger))
	payrollService := payroll.NewService(payrollRepo, salaryService, payroll.WithLogger(logger))
	payslipService := payslip.NewService(db, payslipRepo, salaryRepo, outboxRepo, payslip.WithLogger(logger))

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		salary.RegisterRoutes(api, salaryHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, logger)
		payslip.RegisterRoutes(api, payslipHandler, rbacService, logger, rdb)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
