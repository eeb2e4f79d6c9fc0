package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/config"
	"github.com/spicetable/pos/internal/domain"
	"github.com/spicetable/pos/internal/repository/postgres"
)

type menuItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/import-catalog/main.go <menu.json>")
		fmt.Println("Example: go run cmd/import-catalog/main.go menu.json")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read menu file: %v\n", err)
		os.Exit(1)
	}

	var items []menuItem
	if err := json.Unmarshal(data, &items); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse menu file: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	products := make([]domain.Product, 0, len(items))
	for i, it := range items {
		if it.Name == "" || it.Price < 0 {
			fmt.Fprintf(os.Stderr, "Skipping invalid menu item %d: %+v\n", i, it)
			continue
		}
		products = append(products, domain.Product{
			Name:     it.Name,
			Price:    it.Price,
			Category: it.Category,
		})
	}

	repos := postgres.NewRepositories(db, logger)
	if err := repos.Product.CreateBatch(context.Background(), products); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to import products: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d products.\n", len(products))
}
