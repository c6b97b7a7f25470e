package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Ingredients string `gorm:"not null"`

	// Pizzas referenced by an offering cannot be removed
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// TableName sets the table name for this struct type
func (Pizza) TableName() string {
	return "pizzas"
}
