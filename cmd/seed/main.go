// Command seed populates the product catalog with sample data.
// Existing catalog contents are replaced.
package main

import (
	"context"
	"flag"

	"github.com/shopeasy/backend/internal/domain/catalog"
	"github.com/shopeasy/backend/internal/infrastructure/logger"
	"github.com/shopeasy/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "data", "directory holding the JSON collections")
	flag.Parse()

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	samples := []struct {
		name        string
		description string
		price       string
		quantity    int
		category    string
		image       string
	}{
		{
			name:        "Wireless Headphones",
			description: "High-quality wireless headphones with noise cancellation",
			price:       "99.99",
			quantity:    50,
			category:    "Electronics",
			image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		},
		{
			name:        "Smart Watch",
			description: "Fitness tracker with heart rate monitor",
			price:       "149.99",
			quantity:    30,
			category:    "Electronics",
			image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
		},
		{
			name:        "Python Programming Book",
			description: "Complete guide to Python programming",
			price:       "39.99",
			quantity:    100,
			category:    "Books",
			image:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400",
		},
	}

	products := make([]catalog.Product, 0, len(samples))
	for _, s := range samples {
		product, err := catalog.NewProduct(s.name, s.description,
			decimal.RequireFromString(s.price), s.quantity, s.category, s.image)
		if err != nil {
			log.Fatal("Invalid sample product", zap.String("name", s.name), zap.Error(err))
		}
		products = append(products, *product)
	}

	repo, err := persistence.NewFileProductRepository(*dir)
	if err != nil {
		log.Fatal("Failed to open product collection", zap.Error(err))
	}

	if err := repo.Reset(context.Background(), products); err != nil {
		log.Fatal("Failed to seed products", zap.Error(err))
	}

	log.Info("Sample products written",
		zap.String("dir", *dir),
		zap.Int("count", len(products)))
}
