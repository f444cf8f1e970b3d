package payroll

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	group := r.Group("/payrolls")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/preview", handler.Preview)
		group.POST("/release",
			middleware.RequireRole(middleware.RoleAdmin),
			middleware.Idempotency(rdb),
			handler.Release,
		)
		group.GET("", handler.GetAll)
		group.GET("/:id", handler.GetByID)
		group.GET("/:id/breakdown", handler.GetBreakdown)
		group.POST("/:id/archive", middleware.RequireRole(middleware.RoleAdmin), handler.Archive)
	}
}
