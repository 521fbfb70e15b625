package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/DBow899/tdd-bdd-final-project/internal/models"
	"github.com/DBow899/tdd-bdd-final-project/internal/repositories"
)

// CatalogService handles business logic related to products. It validates
// records before they reach storage, so the repository only ever fails on
// storage-layer errors.
type CatalogService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListProducts retrieves all products.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.repo.All()
}

// GetProduct retrieves a single product by its id, or nil if none exists.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.Find(id)
}

// CreateProduct validates and persists a new product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", models.ErrDataValidation, err)
	}
	return s.repo.Create(product)
}

// UpdateProduct validates and persists changes to an existing product.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("%w: %v", models.ErrDataValidation, err)
	}
	return s.repo.Update(product)
}

// DeleteProduct removes a product by its id.
func (s *CatalogService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}

// FindProductsByName retrieves products with an exact name match.
func (s *CatalogService) FindProductsByName(name string) ([]models.Product, error) {
	return s.repo.FindByName(name)
}

// FindProductsByCategory retrieves products tagged with the given category.
func (s *CatalogService) FindProductsByCategory(category models.Category) ([]models.Product, error) {
	return s.repo.FindByCategory(category)
}

// FindProductsByPrice retrieves products with the given price, accepting a
// decimal or a numeric string.
func (s *CatalogService) FindProductsByPrice(price any) ([]models.Product, error) {
	return s.repo.FindByPrice(price)
}

// FindProductsByAvailability retrieves products with the given availability.
func (s *CatalogService) FindProductsByAvailability(available bool) ([]models.Product, error) {
	return s.repo.FindByAvailability(available)
}
