package database

import (
	"log"
	"nutriwise/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.DailyLog{},
		&models.Meal{},
		&models.Dish{},
		&models.SavedRecipe{},
		&models.CommunityRecipe{},
		&models.Verification{},
		&models.ResetPassword{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
