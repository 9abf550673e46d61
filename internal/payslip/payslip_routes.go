package payslip

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/PADMANABAN5/hrms/internal/middleware"
	"github.com/PADMANABAN5/hrms/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	payslips.Use(middleware.ExtractUserID())
	payslips.Use(middleware.ContextLogger(logger))
	{
		payslips.POST("/draft",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			handler.StartDraft,
		)

		payslips.GET("/draft/:employee_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			handler.GetDraft,
		)

		payslips.PUT("/draft/:employee_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			handler.UpdateDraft,
		)

		payslips.POST("/draft/:employee_id/generate",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)

		payslips.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payslip", "read"),
			handler.GetAll,
		)

		payslips.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "payslip", "export"),
			handler.Export,
		)

		payslips.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payslip", "read"),
			handler.GetByID,
		)

		payslips.GET("/:id/download",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "payslip", "read"),
			handler.Download,
		)

		payslips.POST("/:id/email",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payslip", "email"),
			handler.Email,
		)
	}
}
