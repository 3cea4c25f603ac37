package routes

import (
	"lovebae-backend/handlers/support"
	"lovebae-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SupportRoutes(r *gin.Engine, h *support.Handler) {
	r.POST("/support", h.Create)

	adminRoutes := r.Group("/api/admin/support")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("", h.List)
	}
}
