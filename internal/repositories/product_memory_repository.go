package repositories

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository, used when no database DSN is configured.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// Create adds a new product, assigning the next surrogate id.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	if product.ID == 0 {
		return models.NewDataValidationError("update called with empty id field")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return ErrNotFound
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its id.
func (r *MemoryProductRepository) Delete(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return ErrNotFound
	}
	delete(r.products, product.ID)
	return nil
}

// All returns all products ordered by id.
func (r *MemoryProductRepository) All() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(models.Product) bool { return true }), nil
}

// Find returns a product by its id.
func (r *MemoryProductRepository) Find(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// FindByName returns all products with exactly the given name.
func (r *MemoryProductRepository) FindByName(name string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(p models.Product) bool { return p.Name == name }), nil
}

// FindByPrice returns all products with exactly the given price.
func (r *MemoryProductRepository) FindByPrice(price decimal.Decimal) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(p models.Product) bool { return p.Price.Equal(price) }), nil
}

// FindByPriceString parses the price from its string form before filtering.
func (r *MemoryProductRepository) FindByPriceString(raw string) ([]models.Product, error) {
	price, err := models.ParsePrice(raw)
	if err != nil {
		return nil, err
	}
	return r.FindByPrice(price)
}

// FindByAvailability returns all products matching the availability flag.
func (r *MemoryProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(p models.Product) bool { return p.Available == available }), nil
}

// FindByCategory returns all products in the given category.
func (r *MemoryProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(p models.Product) bool { return p.Category == category }), nil
}

// filter must be called with the lock held.
func (r *MemoryProductRepository) filter(match func(models.Product) bool) []models.Product {
	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if match(p) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}
