package deduction

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	types := r.Group("/deduction-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", handler.ListTypes)
		types.POST("", middleware.RequireRole(middleware.RoleAdmin), handler.CreateType)
		types.PUT("/:id", middleware.RequireRole(middleware.RoleAdmin), handler.UpdateType)
	}

	records := r.Group("/deductions")
	records.Use(middleware.AuthMiddleware())
	{
		records.GET("", handler.ListRecords)
		records.POST("", middleware.RequireRole(middleware.RoleAdmin), handler.ApplyRecord)
		records.DELETE("/:id", middleware.RequireRole(middleware.RoleAdmin), handler.ArchiveRecord)
	}
}
