package main

import (
	"log"

	"nutriwise/database"
	"nutriwise/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedDishes(database.DB); err != nil {
		log.Fatalf("Failed to seed dishes: %v", err)
	}
}
