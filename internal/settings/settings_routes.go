package settings

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/settings/attendance")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", handler.Get)
		group.PUT("", middleware.RequireRole(middleware.RoleAdmin), handler.Update)
	}
}
