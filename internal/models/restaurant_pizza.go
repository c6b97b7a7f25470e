package models

// RestaurantPizza is the priced offering of one pizza at one restaurant.
// Prices range from 1 to 30.
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey"`
	Price        int  `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30"`
	PizzaID      uint `gorm:"not null;index"`
	RestaurantID uint `gorm:"not null;index"`

	Pizza      Pizza
	Restaurant Restaurant
}

// TableName sets the table name for this struct type
func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}
