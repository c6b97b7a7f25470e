package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// ErrRestaurantNotFound is returned when no restaurant has the requested ID
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their offerings
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its offerings, pizzas included
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and all of its offerings
	DeleteRestaurant(id uint) error
}

// restaurantService is the implementation of the RestaurantService interface
type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB {
			return db.Order("restaurant_pizzas.id")
		}).
		Preload("RestaurantPizzas.Pizza").
		Preload("RestaurantPizzas.Restaurant").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, translateNotFound(err, ErrRestaurantNotFound)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return translateNotFound(err, ErrRestaurantNotFound)
		}

		// Offerings go first so the restaurant row never leaves orphans behind,
		// whether or not the store enforces the cascade itself.
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("deleting offerings of restaurant %d: %w", restaurant.ID, err)
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("deleting restaurant %d: %w", restaurant.ID, err)
		}
		return nil
	})
}

// translateNotFound replaces gorm's record-not-found error with a domain error
func translateNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
