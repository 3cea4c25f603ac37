package db

import (
	"lovebae-backend/models"
	"lovebae-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The returned
// handle is constructed once in main and passed down explicitly; there is no
// package-level connection state.
func Connect(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         utils.GetGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&models.Creator{},
		&models.Referral{},
		&models.WaitlistEntry{},
		&models.NewsletterSubscriber{},
		&models.SupportRequest{},
		&models.AdminUser{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		return nil, err
	}

	utils.LogSuccess("Database connection successful")
	return gormDB, nil
}
