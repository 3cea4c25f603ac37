package routes

import (
	"lovebae-backend/handlers/creators"
	"lovebae-backend/middleware"

	"github.com/gin-gonic/gin"
)

func CreatorsRoutes(r *gin.Engine, h *creators.Handler) {
	// Public application and self-service code lookup
	r.POST("/creators", h.Apply)
	r.GET("/creators", h.Lookup)

	adminRoutes := r.Group("/api/admin/creators")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("", h.List)
		adminRoutes.GET("/:id", h.GetByID)
		adminRoutes.PATCH("/:id", h.Update)
		adminRoutes.DELETE("/:id", h.Delete)
	}
}
