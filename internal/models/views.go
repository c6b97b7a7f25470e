package models

// RestaurantSummary is the list view of a restaurant, without its offerings
type RestaurantSummary struct {
	ID      uint   `json:"id" example:"1"`
	Name    string `json:"name" example:"Karen's Pizza Shack"`
	Address string `json:"address" example:"address1"`
}

// RestaurantDetail is the detail view of a restaurant, including every pizza it offers
type RestaurantDetail struct {
	ID               uint                  `json:"id" example:"1"`
	Name             string                `json:"name" example:"Karen's Pizza Shack"`
	Address          string                `json:"address" example:"address1"`
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// PizzaView is the serialized form of a pizza
type PizzaView struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"Emma"`
	Ingredients string `json:"ingredients" example:"Dough, Tomato Sauce, Cheese"`
}

// RestaurantPizzaView is the serialized form of an offering. The nested
// restaurant uses the summary view so offerings never recurse.
type RestaurantPizzaView struct {
	ID           uint              `json:"id" example:"1"`
	PizzaID      uint              `json:"pizza_id" example:"1"`
	RestaurantID uint              `json:"restaurant_id" example:"3"`
	Price        int               `json:"price" example:"5"`
	Pizza        PizzaView         `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// NewRestaurantSummary maps a restaurant to its list view
func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	return RestaurantSummary{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// NewRestaurantSummaries maps restaurants to their list views, keeping order
func NewRestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	views := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, NewRestaurantSummary(r))
	}
	return views
}

// NewRestaurantDetail maps a restaurant and its preloaded offerings to the detail view
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	offerings := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		offerings = append(offerings, NewRestaurantPizzaView(rp))
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: offerings,
	}
}

// NewPizzaView maps a pizza to its serialized form
func NewPizzaView(p Pizza) PizzaView {
	return PizzaView{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}

// NewPizzaViews maps pizzas to their serialized form, keeping order
func NewPizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, NewPizzaView(p))
	}
	return views
}

// NewRestaurantPizzaView maps an offering with its preloaded pizza and restaurant
func NewRestaurantPizzaView(rp RestaurantPizza) RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Price:        rp.Price,
		Pizza:        NewPizzaView(rp.Pizza),
		Restaurant:   NewRestaurantSummary(rp.Restaurant),
	}
}
