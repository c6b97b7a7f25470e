package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant offerings
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a priced pizza to a restaurant
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant
// @Description Create a restaurant offering. The price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.CreateRestaurantPizzaRequest true "Offering to create"
// @Success 201 {object} models.RestaurantPizzaView
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var request models.CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		switch {
		case isValidationError(err):
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		case isReferenceTypeError(err):
			// an id that cannot name a row is unknown, but the price is still checked first
			if binding.Validator.ValidateStruct(&request) != nil {
				ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
				return
			}
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaOrRestaurantNotFound))
		default:
			ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgInvalidRequestBody))
		}
		return
	}

	offering, err := c.service.CreateRestaurantPizza(*request.Price, request.PizzaID, request.RestaurantID)
	if errors.Is(err, services.ErrPizzaOrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgPizzaOrRestaurantNotFound))
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "Failed to create restaurant pizza")
		return
	}

	log.WithFields(log.Fields{
		"restaurant_pizza_id": offering.ID,
		"restaurant_id":       offering.RestaurantID,
		"pizza_id":            offering.PizzaID,
		"price":               offering.Price,
	}).Info("Restaurant pizza created")
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaView(offering))
}

// isValidationError reports whether a binding error comes from the price
// rather than from malformed JSON
func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return true
	}
	var typeError *json.UnmarshalTypeError
	return errors.As(err, &typeError) && typeError.Field == "price"
}

// isReferenceTypeError reports whether pizza_id or restaurant_id held a value
// that is not an unsigned integer, such as -1 or "abc"
func isReferenceTypeError(err error) bool {
	var typeError *json.UnmarshalTypeError
	if !errors.As(err, &typeError) {
		return false
	}
	return typeError.Field == "pizza_id" || typeError.Field == "restaurant_id"
}
