package routes

import (
	"lovebae-backend/handlers/waitlist"
	"lovebae-backend/middleware"

	"github.com/gin-gonic/gin"
)

func WaitlistRoutes(r *gin.Engine, h *waitlist.Handler) {
	r.POST("/waitlist", h.Join)

	adminRoutes := r.Group("/api/admin/waitlist")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("", h.List)
		adminRoutes.PATCH("/:id/status", h.UpdateStatus)
		adminRoutes.DELETE("/:id", h.Delete)
	}
}
