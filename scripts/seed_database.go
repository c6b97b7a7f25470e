package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	uri := flag.String("uri", "", "Database URI (defaults to DB_URI or "+config.DefaultDatabaseURI+")")
	force := flag.Bool("force", false, "Replace existing rows instead of seeding only an empty database")
	flag.Parse()

	loadDotenvFile()
	if *uri == "" {
		*uri = config.GetEnvWithDefault("DB_URI", config.DefaultDatabaseURI)
	}

	dbConfig, err := database.ParseURI(*uri)
	if err != nil {
		log.Fatal("Invalid database URI:", err)
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *force {
		if err := database.Seed(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		fmt.Println("✓ Database reseeded")
	} else {
		seeded, err := database.SeedIfEmpty(db)
		if err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		if !seeded {
			fmt.Println("Database already has data, use -force to replace it")
		} else {
			fmt.Println("✓ Database seeded")
		}
	}

	printSummary(db)
}

// loadDotenvFile loads a .env file when present and warns when it is not
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

// printSummary lists every restaurant with the pizzas it offers
func printSummary(db *gorm.DB) {
	var restaurants []models.Restaurant
	err := db.Preload("RestaurantPizzas.Pizza").Order("id").Find(&restaurants).Error
	if err != nil {
		log.Printf("Failed to load restaurants: %v", err)
		return
	}

	for _, restaurant := range restaurants {
		fmt.Printf("\n%s (ID: %d, %s)\n", restaurant.Name, restaurant.ID, restaurant.Address)
		for _, offering := range restaurant.RestaurantPizzas {
			fmt.Printf("  - %s: $%d\n", offering.Pizza.Name, offering.Price)
		}
	}
}
