package hruser

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PADMANABAN5/hrms/internal/middleware"
	"github.com/PADMANABAN5/hrms/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	users := r.Group("/hr-users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ExtractUserID())
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "hruser", "read"),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "hruser", "read"),
			handler.GetByID,
		)

		users.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "hruser", "create"),
			handler.Create,
		)

		users.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "hruser", "update"),
			handler.Update,
		)

		users.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "hruser", "update"),
			handler.ToggleStatus,
		)

		users.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "hruser", "delete"),
			handler.Delete,
		)
	}
}
