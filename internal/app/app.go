package app

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/config"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/middleware"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects infrastructure and registers every feature module
// on the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	return registerModules(router, sqlDB, gormDB, redisClient)
}
