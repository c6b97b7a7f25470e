package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPizzaOrRestaurantNotFound is returned when an offering references a missing pizza or restaurant
var ErrPizzaOrRestaurantNotFound = errors.New("pizza or restaurant not found")

// RestaurantPizzaService provides methods to manage restaurant offerings
type RestaurantPizzaService interface {
	// CreateRestaurantPizza stores a new offering and returns it with its pizza and restaurant loaded.
	// Nil IDs are treated as references to missing rows.
	CreateRestaurantPizza(price int, pizzaID, restaurantID *uint) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(price int, pizzaID, restaurantID *uint) (models.RestaurantPizza, error) {
	if pizzaID == nil || restaurantID == nil {
		return models.RestaurantPizza{}, ErrPizzaOrRestaurantNotFound
	}

	var created models.RestaurantPizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, *pizzaID).Error; err != nil {
			return translateNotFound(err, ErrPizzaOrRestaurantNotFound)
		}
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, *restaurantID).Error; err != nil {
			return translateNotFound(err, ErrPizzaOrRestaurantNotFound)
		}

		offering := models.RestaurantPizza{
			Price:        price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&offering).Error; err != nil {
			return fmt.Errorf("creating offering: %w", err)
		}

		offering.Pizza = pizza
		offering.Restaurant = restaurant
		created = offering
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}
