package main

import (
	"log"
	"os"

	"lovebae-backend/db"
	"lovebae-backend/handlers/admins"
	"lovebae-backend/handlers/auth"
	"lovebae-backend/handlers/creators"
	"lovebae-backend/handlers/newsletter"
	"lovebae-backend/handlers/ping"
	"lovebae-backend/handlers/support"
	"lovebae-backend/handlers/waitlist"
	"lovebae-backend/repository"
	"lovebae-backend/routes"
	"lovebae-backend/services/referrals"
	"lovebae-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Lovebae Back-office API
// @version 1.0
// @description Creator referral program, waitlist and admin panel API for the Lovebae marketing site
// @host localhost:8080
// @BasePath /
func main() {
	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, relying on system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("The environment variable DB_URL must be defined")
	}

	gormDB, err := db.Connect(dsn)
	if err != nil {
		log.Fatal("Could not connect to the database: ", err)
	}

	creatorRepo := repository.NewCreatorRepository(gormDB)
	referralRepo := repository.NewReferralRepository(gormDB)
	waitlistRepo := repository.NewWaitlistRepository(gormDB)
	newsletterRepo := repository.NewNewsletterRepository(gormDB)
	supportRepo := repository.NewSupportRepository(gormDB)
	adminRepo := repository.NewAdminUserRepository(gormDB)

	referralService := referrals.NewService(gormDB)

	r := routes.SetupRouter(routes.Handlers{
		Creators:   creators.New(creatorRepo, referralRepo, referralService),
		Waitlist:   waitlist.New(waitlistRepo),
		Newsletter: newsletter.New(newsletterRepo),
		Support:    support.New(supportRepo),
		Auth:       auth.New(adminRepo),
		Admins:     admins.New(adminRepo),
		Ping:       ping.New(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server: ", err)
	}
}
