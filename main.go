package main

import (
	"log"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DBow899/tdd-bdd-final-project/internal/config"
	"github.com/DBow899/tdd-bdd-final-project/internal/database"
	"github.com/DBow899/tdd-bdd-final-project/internal/models"
	"github.com/DBow899/tdd-bdd-final-project/internal/repositories"
	"github.com/DBow899/tdd-bdd-final-project/internal/services"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	db, err := database.Connect(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}

	productRepo := repositories.NewGORMProductRepository(db, logger)
	catalog := services.NewCatalogService(productRepo)

	products, err := catalog.ListProducts()
	if err != nil {
		logger.Fatal("failed to list products", zap.Error(err))
	}
	if len(products) == 0 {
		seedProducts(catalog, logger)
		if products, err = catalog.ListProducts(); err != nil {
			logger.Fatal("failed to list products", zap.Error(err))
		}
	}

	logger.Info("catalog ready", zap.Int("products", len(products)))
}

// newLogger builds a production zap logger at the configured level. An
// unknown level falls back to info.
func newLogger(level string) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}

// seedProducts populates an empty catalog with some initial data.
func seedProducts(catalog *services.CatalogService, logger *zap.Logger) {
	products := []models.Product{
		{Name: "Fedora", Description: "A red hat", Price: decimal.RequireFromString("12.50"), Available: true, Category: models.Cloths},
		{Name: "Banana", Description: "A ripe banana", Price: decimal.RequireFromString("0.75"), Available: true, Category: models.Food},
		{Name: "Kitchen Towels", Description: "A pack of cotton towels", Price: decimal.RequireFromString("7.99"), Available: false, Category: models.Housewares},
		{Name: "Hammer", Description: "A claw hammer", Price: decimal.RequireFromString("24.00"), Available: true, Category: models.Tools},
	}

	for i := range products {
		if err := catalog.CreateProduct(&products[i]); err != nil {
			logger.Error("failed to seed product", zap.String("name", products[i].Name), zap.Error(err))
			continue
		}
		logger.Info("seeded product", zap.String("name", products[i].Name), zap.Uint("id", products[i].ID))
	}
}
