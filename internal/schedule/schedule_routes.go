package schedule

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/schedules")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/active", handler.GetActive)
		group.POST("", middleware.RequireRole(middleware.RoleAdmin), handler.Create)
		group.POST("/deactivate", middleware.RequireRole(middleware.RoleAdmin), handler.Deactivate)
	}
}
