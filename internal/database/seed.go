package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedIfEmpty seeds the database only when it holds no restaurants and no pizzas.
// It reports whether seeding took place.
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, err
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, err
	}
	if restaurants > 0 || pizzas > 0 {
		log.WithFields(logrus.Fields{
			"restaurants": restaurants,
			"pizzas":      pizzas,
		}).Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	if err := Seed(db); err != nil {
		return false, err
	}
	return true, nil
}

// Seed replaces all rows with the initial restaurants, pizzas and offerings
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		log.Info("Clearing existing offerings, restaurants and pizzas")
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}

		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("failed to seed restaurants: %w", err)
		}

		pizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("failed to seed pizzas: %w", err)
		}

		offerings := []models.RestaurantPizza{
			{Price: 1, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
			{Price: 4, RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID},
			{Price: 5, RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID},
		}
		if err := tx.Omit("Pizza", "Restaurant").Create(&offerings).Error; err != nil {
			return fmt.Errorf("failed to seed offerings: %w", err)
		}

		log.WithFields(logrus.Fields{
			"restaurants": len(restaurants),
			"pizzas":      len(pizzas),
			"offerings":   len(offerings),
		}).Info("Database seeded successfully")
		return nil
	})
}
