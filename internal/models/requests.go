package models

// CreateRestaurantPizzaRequest is the body accepted when adding a pizza to a restaurant.
// The IDs are pointers so that missing keys can be told apart from zero values.
type CreateRestaurantPizzaRequest struct {
	Price        *int  `json:"price" binding:"required,min=1,max=30" example:"5"`
	PizzaID      *uint `json:"pizza_id" example:"1"`
	RestaurantID *uint `json:"restaurant_id" example:"3"`
}
