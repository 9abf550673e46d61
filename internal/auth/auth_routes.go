package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PADMANABAN5/hrms/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.ContextLogger(logger))
	{
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		authGroup.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.Refresh)
		authGroup.POST("/logout", handler.Logout)

		authGroup.GET("/me", middleware.AuthMiddleware(), handler.Me)
		authGroup.POST("/change-password",
			middleware.AuthMiddleware(),
			middleware.RateLimitByUser(0.5, 2),
			handler.ChangePassword,
		)
	}
}
