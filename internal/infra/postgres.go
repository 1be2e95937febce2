package infra

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tourline/internal/models/db_models"
)

func InitPostgresql(cfg Config) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to database")
	}

	if err := AutoMigrate(connectionPool); err != nil {
		logrus.WithError(err).Fatal("Error migrating database schema")
	}

	return connectionPool
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Group{},
		&db_models.Traveler{},
		&db_models.CheckIn{},
		&db_models.Hotel{},
		&db_models.Spot{},
		&db_models.Itinerary{},
		&db_models.ItineraryDay{},
		&db_models.ItineraryActivity{},
		&db_models.LedgerEntry{},
		&db_models.SOSAlert{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("PostgreSQL database connection closed")
	}
}
