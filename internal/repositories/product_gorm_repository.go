package repositories

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"catalog/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create persists a new product. The id is assigned by the store; any
// pre-set id is cleared first so it can never leak into the insert.
func (r *GORMProductRepository) Create(product *models.Product) error {
	product.ID = 0
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the current field values for the product's id.
func (r *GORMProductRepository) Update(product *models.Product) error {
	if product.ID == 0 {
		return models.NewDataValidationError("update called with empty id field")
	}
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"available":   product.Available,
		"category":    product.Category,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record identified by the product's id.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	res := r.db.Delete(&models.Product{}, product.ID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", product.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// All retrieves every product from the database.
func (r *GORMProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Find retrieves a single product by its id.
func (r *GORMProductRepository) Find(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}
	return &product, nil
}

// FindByName retrieves all products with exactly the given name.
func (r *GORMProductRepository) FindByName(name string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("name = ?", name).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by name %q: %w", name, err)
	}
	return products, nil
}

// FindByPrice retrieves all products with exactly the given price.
func (r *GORMProductRepository) FindByPrice(price decimal.Decimal) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("price = ?", price).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by price %s: %w", price, err)
	}
	return products, nil
}

// FindByPriceString parses the price from its string form before filtering.
func (r *GORMProductRepository) FindByPriceString(raw string) ([]models.Product, error) {
	price, err := models.ParsePrice(raw)
	if err != nil {
		return nil, err
	}
	return r.FindByPrice(price)
}

// FindByAvailability retrieves all products matching the availability flag.
func (r *GORMProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("available = ?", available).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by availability %t: %w", available, err)
	}
	return products, nil
}

// FindByCategory retrieves all products in the given category.
func (r *GORMProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by category %s: %w", category, err)
	}
	return products, nil
}
