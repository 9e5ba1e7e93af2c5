package database

import (
	"fmt"
	"log"

	config "github.com/jngeno/stablemate/configs"
	"github.com/jngeno/stablemate/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		// Duplicate-key errors must surface as gorm.ErrDuplicatedKey so the
		// achievement grant path can treat a lost insert race as benign.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Horse{},
		&models.TrainingSession{},
		&models.Competition{},
		&models.HealthLog{},
		&models.Goal{},
		&models.Milestone{},
		&models.Reminder{},
		&models.Document{},
		&models.UserAchievement{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}
