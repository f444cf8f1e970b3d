package loan

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/loans")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", handler.GetByEmployee)
		group.POST("", middleware.RequireRole(middleware.RoleAdmin), handler.Create)
		group.POST("/:id/cancel", middleware.RequireRole(middleware.RoleAdmin), handler.Cancel)
	}
}
