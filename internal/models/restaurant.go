package models

// Restaurant represents a restaurant and the pizzas it offers
type Restaurant struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Address string `gorm:"not null"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TableName sets the table name for this struct type
func (Restaurant) TableName() string {
	return "restaurants"
}
