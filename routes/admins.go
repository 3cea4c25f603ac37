package routes

import (
	"lovebae-backend/handlers/admins"
	"lovebae-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AdminsRoutes(r *gin.Engine, h *admins.Handler) {
	adminRoutes := r.Group("/api/admin/users")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("", h.List)
		adminRoutes.POST("", h.Create)
		adminRoutes.GET(":id", h.GetByID)
		adminRoutes.PUT(":id", h.Update)
		adminRoutes.DELETE(":id", h.Delete)
	}
}
