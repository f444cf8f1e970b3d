package attendance

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/attendance")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/punch-in", handler.PunchIn)
		group.POST("/punch-out", handler.PunchOut)
		group.GET("", handler.List)
	}
}
