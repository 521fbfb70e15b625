package repositories

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DBow899/tdd-bdd-final-project/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB, log *zap.Logger) *GORMProductRepository {
	return &GORMProductRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new product row. The id is always assigned by the storage
// engine; any id already set on the record is discarded first.
func (r *GORMProductRepository) Create(product *models.Product) error {
	r.log.Info("creating product", zap.String("name", product.Name))
	product.ID = 0
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists in-place changes to an existing product, keyed by id.
// Calling it on a transient record is a programming error and fails with
// models.ErrDataValidation.
func (r *GORMProductRepository) Update(product *models.Product) error {
	r.log.Info("updating product", zap.Uint("id", product.ID))
	if product.ID == 0 {
		return fmt.Errorf("%w: update called with empty id field", models.ErrDataValidation)
	}
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return nil
}

// Delete removes the product row with the given id. Deleting an id that is
// already absent is not an error; the post-condition is simply that the row
// does not exist.
func (r *GORMProductRepository) Delete(id uint) error {
	r.log.Info("deleting product", zap.Uint("id", id))
	if err := r.db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

// All retrieves every product. Order is not guaranteed.
func (r *GORMProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Find retrieves a single product by its id. A missing row yields (nil, nil)
// rather than an error.
func (r *GORMProductRepository) Find(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product %d: %w", id, err)
	}
	return &product, nil
}

// FindByName retrieves all products with an exact name match.
func (r *GORMProductRepository) FindByName(name string) ([]models.Product, error) {
	r.log.Info("querying products by name", zap.String("name", name))
	var products []models.Product
	if err := r.db.Where("name = ?", name).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by name %q: %w", name, err)
	}
	return products, nil
}

// FindByCategory retrieves all products tagged with the given category.
func (r *GORMProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	r.log.Info("querying products by category", zap.Stringer("category", category))
	var products []models.Product
	if err := r.db.Where("category = ?", int(category)).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by category %s: %w", category, err)
	}
	return products, nil
}

// FindByPrice retrieves all products with the given price. The price may be a
// decimal.Decimal or a numeric string; both normalize to the same stored
// decimal, so equivalent inputs return identical result sets.
func (r *GORMProductRepository) FindByPrice(price any) ([]models.Product, error) {
	value, err := models.ToDecimal(price)
	if err != nil {
		return nil, err
	}
	r.log.Info("querying products by price", zap.String("price", value.String()))
	var products []models.Product
	if err := r.db.Where("price = ?", value).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by price %s: %w", value, err)
	}
	return products, nil
}

// FindByAvailability retrieves all products with the given availability.
func (r *GORMProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	r.log.Info("querying products by availability", zap.Bool("available", available))
	var products []models.Product
	if err := r.db.Where("available = ?", available).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by availability %t: %w", available, err)
	}
	return products, nil
}
