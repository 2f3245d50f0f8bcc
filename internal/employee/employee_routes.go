package employee

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	can := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, action)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.ContextLogger(logger))

	employees.GET("", middleware.RateLimitByUser(3, 10), can(rbac.ActionRead), handler.GetAll)
	employees.GET("/options", middleware.RateLimitByUser(5, 20), can(rbac.ActionRead), handler.GetOptions)
	employees.GET("/:id", middleware.RateLimitByUser(3, 10), can(rbac.ActionRead), handler.GetById)
	employees.POST("", middleware.RateLimitByUser(0.5, 2), can(rbac.ActionCreate), handler.Create)
	employees.PUT("/:id", middleware.RateLimitByUser(0.5, 2), can(rbac.ActionUpdate), handler.Update)
	employees.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), can(rbac.ActionDelete), handler.Delete)
}
