package routes

import (
	"time"

	"lovebae-backend/handlers/admins"
	"lovebae-backend/handlers/auth"
	"lovebae-backend/handlers/creators"
	"lovebae-backend/handlers/newsletter"
	"lovebae-backend/handlers/ping"
	"lovebae-backend/handlers/support"
	"lovebae-backend/handlers/waitlist"
	"lovebae-backend/middleware"
	"lovebae-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers carries every constructed handler into the router
type Handlers struct {
	Creators   *creators.Handler
	Waitlist   *waitlist.Handler
	Newsletter *newsletter.Handler
	Support    *support.Handler
	Auth       *auth.Handler
	Admins     *admins.Handler
	Ping       *ping.Handler
}

func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()))
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	PingRoutes(r, h.Ping)
	AuthRoutes(r, h.Auth)
	AdminsRoutes(r, h.Admins)
	CreatorsRoutes(r, h.Creators)
	WaitlistRoutes(r, h.Waitlist)
	NewsletterRoutes(r, h.Newsletter)
	SupportRoutes(r, h.Support)

	return r
}
