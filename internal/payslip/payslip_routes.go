package payslip

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	payslips.Use(middleware.ContextLogger(logger))
	{
		issue := []gin.HandlerFunc{
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionIssue),
		}
		if redisClient != nil {
			issue = append(issue, middleware.Idempotency(redisClient))
		}
		payslips.POST("", append(issue, handler.Issue)...)

		payslips.POST("/bulk",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionIssue),
			handler.BulkIssue,
		)
		payslips.GET("/employee/:employee_id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionRead),
			handler.History,
		)
		payslips.GET("/:id/download",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePayslip, rbac.ActionRead),
			handler.Download,
		)
	}
}
