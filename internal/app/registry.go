package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PADMANABAN5/hrms/internal/auth"
	"github.com/PADMANABAN5/hrms/internal/document"
	"github.com/PADMANABAN5/hrms/internal/employee"
	"github.com/PADMANABAN5/hrms/internal/hruser"
	"github.com/PADMANABAN5/hrms/internal/leave"
	"github.com/PADMANABAN5/hrms/internal/mailer"
	"github.com/PADMANABAN5/hrms/internal/messaging/kafka"
	"github.com/PADMANABAN5/hrms/internal/payslip"
	"github.com/PADMANABAN5/hrms/internal/rbac"
	"github.com/PADMANABAN5/hrms/internal/rbac/infra"
	"github.com/PADMANABAN5/hrms/internal/shared/counter"
)

func registerModules(router *gin.Engine, gormDB *gorm.DB, redisClient *redis.Client, logger *zap.Logger) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	counterRepo := counter.NewRepository(gormDB)

	hruserRepo := hruser.NewRepository(gormDB)
	hruserService := hruser.NewService(hruserRepo)
	hruserHandler := hruser.NewHandler(hruserService, logger)

	authService := auth.NewService(hruserRepo)
	authHandler := auth.NewHandler(authService)

	employeeRepo := employee.NewRepository(gormDB)
	employeeService := employee.NewService(employeeRepo, counterRepo, redisClient, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	leaveRepo := leave.NewRepository(gormDB)
	leaveService := leave.NewService(leaveRepo)
	leaveHandler := leave.NewHandler(leaveService, logger)

	payslipService := payslip.NewService(
		sqlDB,
		payslip.NewRepository(gormDB),
		payslip.NewDraftStore(redisClient),
		kafka.NewOutboxRepository(sqlDB),
		employeeService,
		leaveService,
		document.NewPDFRenderer(),
		mailer.NewSMTPMailerFromEnv(logger),
		logger,
	)
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, redisClient, logger)

	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, authHandler, logger)
	hruser.RegisterRoutes(api, hruserHandler, rbacService, logger)
	employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
	leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
	payslip.RegisterRoutes(api, payslipHandler, rbacService, redisClient, logger)

	logger.Info("route registration complete")
	return nil
}
