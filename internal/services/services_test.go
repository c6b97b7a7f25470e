package services

import (
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
	require.NoError(t, err)

	return db
}

func seedOffering(t *testing.T, db *gorm.DB, restaurantName, pizzaName string, price int) models.RestaurantPizza {
	t.Helper()
	restaurant := models.Restaurant{Name: restaurantName, Address: "somewhere"}
	require.NoError(t, db.Create(&restaurant).Error)
	pizza := models.Pizza{Name: pizzaName, Ingredients: "Dough"}
	require.NoError(t, db.Create(&pizza).Error)
	offering := models.RestaurantPizza{Price: price, RestaurantID: restaurant.ID, PizzaID: pizza.ID}
	require.NoError(t, db.Omit("Pizza", "Restaurant").Create(&offering).Error)
	return offering
}

func TestGetAllRestaurantsInInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	seedOffering(t, db, "First", "Emma", 3)
	seedOffering(t, db, "Second", "Geri", 4)

	restaurants, err := NewRestaurantService(db).GetAllRestaurants()

	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "First", restaurants[0].Name)
	assert.Equal(t, "Second", restaurants[1].Name)
	assert.Empty(t, restaurants[0].RestaurantPizzas)
}

func TestGetRestaurantByIDPreloadsOfferings(t *testing.T) {
	db := setupTestDB(t)
	offering := seedOffering(t, db, "First", "Emma", 3)

	restaurant, err := NewRestaurantService(db).GetRestaurantByID(offering.RestaurantID)

	require.NoError(t, err)
	require.Len(t, restaurant.RestaurantPizzas, 1)
	assert.Equal(t, "Emma", restaurant.RestaurantPizzas[0].Pizza.Name)
	assert.Equal(t, "First", restaurant.RestaurantPizzas[0].Restaurant.Name)
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewRestaurantService(db).GetRestaurantByID(42)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDeleteRestaurant(t *testing.T) {
	db := setupTestDB(t)
	deleted := seedOffering(t, db, "First", "Emma", 3)
	kept := seedOffering(t, db, "Second", "Geri", 4)

	err := NewRestaurantService(db).DeleteRestaurant(deleted.RestaurantID)
	require.NoError(t, err)

	var offerings []models.RestaurantPizza
	require.NoError(t, db.Find(&offerings).Error)
	require.Len(t, offerings, 1)
	assert.Equal(t, kept.ID, offerings[0].ID)

	var pizzas int64
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	assert.Equal(t, int64(2), pizzas, "pizzas are not removed with the restaurant")

	err = NewRestaurantService(db).DeleteRestaurant(deleted.RestaurantID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestGetAllPizzas(t *testing.T) {
	db := setupTestDB(t)
	seedOffering(t, db, "First", "Emma", 3)
	seedOffering(t, db, "Second", "Geri", 4)

	pizzas, err := NewPizzaService(db).GetAllPizzas()

	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	assert.Equal(t, "Emma", pizzas[0].Name)
	assert.Equal(t, "Geri", pizzas[1].Name)
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	existing := seedOffering(t, db, "First", "Emma", 3)

	created, err := NewRestaurantPizzaService(db).CreateRestaurantPizza(12, &existing.PizzaID, &existing.RestaurantID)

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 12, created.Price)
	assert.Equal(t, "Emma", created.Pizza.Name)
	assert.Equal(t, "First", created.Restaurant.Name)

	var stored models.RestaurantPizza
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, 12, stored.Price)
}

func TestCreateRestaurantPizzaMissingReferences(t *testing.T) {
	db := setupTestDB(t)
	existing := seedOffering(t, db, "First", "Emma", 3)
	missing := uint(999)
	service := NewRestaurantPizzaService(db)

	testCases := []struct {
		name         string
		pizzaID      *uint
		restaurantID *uint
	}{
		{"nil pizza id", nil, &existing.RestaurantID},
		{"nil restaurant id", &existing.PizzaID, nil},
		{"unknown pizza", &missing, &existing.RestaurantID},
		{"unknown restaurant", &existing.PizzaID, &missing},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateRestaurantPizza(10, tt.pizzaID, tt.restaurantID)
			assert.ErrorIs(t, err, ErrPizzaOrRestaurantNotFound)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRestaurantPizzaPriceCheckConstraint(t *testing.T) {
	db := setupTestDB(t)
	existing := seedOffering(t, db, "First", "Emma", 3)

	_, err := NewRestaurantPizzaService(db).CreateRestaurantPizza(31, &existing.PizzaID, &existing.RestaurantID)

	assert.Error(t, err)
}
