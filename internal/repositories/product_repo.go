package repositories

import (
	"github.com/DBow899/tdd-bdd-final-project/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// Create assigns the engine-generated id; Update requires a persisted record
// and fails with models.ErrDataValidation when the id is 0. Find returns
// (nil, nil) when no record exists. FindByPrice accepts a decimal.Decimal or
// a numeric string; both normalize to the same stored decimal before
// comparison.
type ProductRepository interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	All() ([]models.Product, error)
	Find(id uint) (*models.Product, error)
	FindByName(name string) ([]models.Product, error)
	FindByCategory(category models.Category) ([]models.Product, error)
	FindByPrice(price any) ([]models.Product, error)
	FindByAvailability(available bool) ([]models.Product, error)
}
