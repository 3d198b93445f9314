package utils

import (
	"errors"
	"log"

	"nutriwise/internal/models"

	"gorm.io/gorm"
)

// DefaultDishes is the starter dish catalog loaded by cmd/seed. Nutrient
// values are per single portion.
var DefaultDishes = []models.Dish{
	{
		Name:        "Masala Dosa",
		Description: "Crispy fermented rice crepe with spiced potato filling",
		Region:      models.RegionIndianSubcontinent,
		Nutrients: models.Nutrients{
			Calories: 387, Protein: 8, Carbs: 60, Fats: 12, Fiber: 4,
			Iron: 2.5, Calcium: 90, Potassium: 420, VitaminA: 310, VitaminC: 9,
		},
	},
	{
		Name:        "Grilled Chicken Salad",
		Description: "Mixed greens, grilled chicken breast, olive oil dressing",
		Region:      models.RegionNorthAmerican,
		Nutrients: models.Nutrients{
			Calories: 320, Protein: 34, Carbs: 10, Fats: 16, Fiber: 4,
			Iron: 1.8, Calcium: 85, Potassium: 640, VitaminA: 4200, VitaminC: 35,
		},
	},
	{
		Name:        "Ratatouille",
		Description: "Provençal stewed vegetables with herbs",
		Region:      models.RegionEuropean,
		Nutrients: models.Nutrients{
			Calories: 180, Protein: 4, Carbs: 22, Fats: 9, Fiber: 7,
			Iron: 1.6, Calcium: 60, Potassium: 820, VitaminA: 2900, VitaminC: 58,
		},
	},
	{
		Name:        "Feijoada",
		Description: "Brazilian black bean stew with pork",
		Region:      models.RegionSouthAmerican,
		Nutrients: models.Nutrients{
			Calories: 540, Protein: 30, Carbs: 42, Fats: 27, Fiber: 12,
			Iron: 5.2, Calcium: 110, Potassium: 980, VitaminA: 120, VitaminC: 14,
		},
	},
	{
		Name:        "Oatmeal with Berries",
		Description: "Rolled oats cooked in milk, topped with mixed berries",
		Region:      models.RegionNorthAmerican,
		Nutrients: models.Nutrients{
			Calories: 290, Protein: 11, Carbs: 49, Fats: 6, Fiber: 8,
			Iron: 2.8, Calcium: 220, Potassium: 430, VitaminA: 280, VitaminC: 22,
		},
	},
	{
		Name:        "Chana Masala",
		Description: "Chickpeas simmered in tomato and onion gravy",
		Region:      models.RegionIndianSubcontinent,
		Nutrients: models.Nutrients{
			Calories: 360, Protein: 14, Carbs: 52, Fats: 11, Fiber: 13,
			Iron: 4.6, Calcium: 105, Potassium: 700, VitaminA: 540, VitaminC: 26,
		},
	},
	{
		Name:        "Greek Yogurt Parfait",
		Description: "Greek yogurt layered with honey and granola",
		Region:      models.RegionEuropean,
		Nutrients: models.Nutrients{
			Calories: 250, Protein: 17, Carbs: 34, Fats: 6, Fiber: 2,
			Iron: 0.8, Calcium: 240, Potassium: 320, VitaminA: 150, VitaminC: 2,
		},
	},
	{
		Name:        "Quinoa Bowl",
		Description: "Quinoa with roasted vegetables and avocado",
		Region:      models.RegionSouthAmerican,
		Nutrients: models.Nutrients{
			Calories: 420, Protein: 13, Carbs: 55, Fats: 17, Fiber: 10,
			Iron: 3.4, Calcium: 75, Potassium: 890, VitaminA: 1800, VitaminC: 42,
		},
	},
}

// SeedDishes inserts the default dish catalog, skipping dishes that
// already exist by name.
func SeedDishes(db *gorm.DB) error {
	seeded := 0
	for _, dish := range DefaultDishes {
		var existing models.Dish
		err := db.Where("name = ?", dish.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := db.Create(&dish).Error; err != nil {
			return err
		}
		seeded++
	}

	log.Printf("Seeded %d dishes (%d already present)", seeded, len(DefaultDishes)-seeded)
	return nil
}
