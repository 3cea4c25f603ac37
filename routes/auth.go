package routes

import (
	"lovebae-backend/handlers/auth"
	"lovebae-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, h *auth.Handler) {
	r.POST("/api/admin/login", h.Login)
	r.POST("/api/admin/logout", h.Logout)

	verifyRoutes := r.Group("/api/admin/verify-auth")
	verifyRoutes.Use(middleware.AdminAuth())
	{
		verifyRoutes.GET("", h.VerifyAuth)
	}
}
