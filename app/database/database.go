package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"driveconn/app/config"
	"driveconn/app/observability/logger"
)

func Connect(c *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	logger.Named("database").Debug("connected to database")

	return db, nil
}
