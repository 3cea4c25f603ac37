package routes

import (
	"lovebae-backend/handlers/newsletter"

	"github.com/gin-gonic/gin"
)

func NewsletterRoutes(r *gin.Engine, h *newsletter.Handler) {
	r.POST("/newsletter", h.Subscribe)
	r.POST("/newsletter/unsubscribe", h.Unsubscribe)
}
