package repositories

import (
	"errors"

	"github.com/shopspring/decimal"

	"catalog/internal/models"
)

// ErrNotFound is returned when no product exists for the requested id.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// All Find* methods are pure reads with no side effects.
type ProductRepository interface {
	// Create persists a new product. Any pre-set id is discarded and a
	// fresh one is assigned by the store.
	Create(product *models.Product) error
	// Update persists the current field values for the product's id.
	// A zero id is a validation error; a missing row is ErrNotFound.
	Update(product *models.Product) error
	// Delete removes the record identified by the product's id.
	// Deleting an id that is already absent returns ErrNotFound.
	Delete(product *models.Product) error
	// All returns every stored product in store-defined order.
	All() ([]models.Product, error)
	// Find returns the product for the id, or ErrNotFound.
	Find(id uint) (*models.Product, error)
	// FindByName matches names by exact, case-sensitive equality.
	FindByName(name string) ([]models.Product, error)
	// FindByPrice matches prices by exact decimal equality.
	FindByPrice(price decimal.Decimal) ([]models.Product, error)
	// FindByPriceString parses a price string, tolerating surrounding
	// quotes and whitespace, before matching by exact equality.
	FindByPriceString(raw string) ([]models.Product, error)
	// FindByAvailability matches the availability flag exactly.
	FindByAvailability(available bool) ([]models.Product, error)
	// FindByCategory matches the category variant exactly.
	FindByCategory(category models.Category) ([]models.Product, error)
}
