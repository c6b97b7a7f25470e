package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router := SetupRouter(db, Options{Logger: logger, CORSAllowedOrigins: []string{"*"}})
	return router, db
}

func serve(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIndexPage(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Code challenge</h1>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, ServiceName, body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	serve(router, http.MethodGet, "/pizzas", nil)

	w := serve(router, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{code="200",handler="/pizzas",method="GET"}`)
}

func TestResponsesCarryRequestID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, http.MethodGet, "/restaurants", nil)

	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestSeededPizzas(t *testing.T) {
	router, db := setupTestRouter(t)

	var pizzas []models.Pizza
	require.NoError(t, db.Order("id").Find(&pizzas).Error)

	w := serve(router, http.MethodGet, "/pizzas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	expected, err := json.Marshal(models.NewPizzaViews(pizzas))
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), w.Body.String())
}

func TestRestaurantLifecycle(t *testing.T) {
	router, db := setupTestRouter(t)

	var restaurant models.Restaurant
	require.NoError(t, db.Order("id").First(&restaurant).Error)
	var pizza models.Pizza
	require.NoError(t, db.Order("id desc").First(&pizza).Error)
	restaurantPath := fmt.Sprintf("/restaurants/%d", restaurant.ID)

	// associate a new pizza with the restaurant
	body, err := json.Marshal(map[string]interface{}{
		"price":         15,
		"pizza_id":      pizza.ID,
		"restaurant_id": restaurant.ID,
	})
	require.NoError(t, err)
	w := serve(router, http.MethodPost, "/restaurant_pizzas", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.RestaurantPizzaView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, pizza.Name, created.Pizza.Name)
	assert.Equal(t, restaurant.Name, created.Restaurant.Name)

	// the detail view lists it
	w = serve(router, http.MethodGet, restaurantPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.RestaurantDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Len(t, detail.RestaurantPizzas, 2)
	assert.Contains(t, detail.RestaurantPizzas, created)

	// deleting removes the restaurant and its offerings
	w = serve(router, http.MethodDelete, restaurantPath, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var orphans int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	w = serve(router, http.MethodGet, restaurantPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/restaurants", nil)
	var summaries []models.RestaurantSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 2)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, http.MethodGet, "/burgers", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
