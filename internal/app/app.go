package app

import (
	"context"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the database and redis, optionally migrates the schema and
// mounts every module on router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if cfg.DBAutoMigrate {
		if err := Migrate(context.Background(), gormDB); err != nil {
			return err
		}
		logger.Info("database schema migrated")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	router.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(20, 40),
	)

	return registerModules(router, sqlDB, gormDB, redisClient, zap.L())
}
