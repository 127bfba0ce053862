package services

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// Product lifecycle event names published after successful mutations.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher publishes product lifecycle events to a message broker.
type EventPublisher interface {
	PublishProductEvent(event string, payload map[string]interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	validate  *validator.Validate
	publisher EventPublisher
}

// NewProductService creates a new ProductService. The publisher may be
// nil, in which case lifecycle events are not emitted.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		validate:  validator.New(),
		publisher: publisher,
	}
}

// CreateProduct validates and persists a new product. The store assigns
// the id; any pre-set id on the argument is discarded.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.validateProduct(product); err != nil {
		return err
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish(EventProductCreated, product)
	return nil
}

// UpdateProduct validates and persists changes to an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.validateProduct(product); err != nil {
		return err
	}
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publish(EventProductUpdated, product)
	return nil
}

// DeleteProduct removes a product from the store.
func (s *ProductService) DeleteProduct(product *models.Product) error {
	if err := s.repo.Delete(product); err != nil {
		return err
	}
	s.publish(EventProductDeleted, product)
	return nil
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.All()
}

// GetProduct retrieves a single product by its id.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.Find(id)
}

// FindProductsByName retrieves all products with exactly the given name.
func (s *ProductService) FindProductsByName(name string) ([]models.Product, error) {
	return s.repo.FindByName(name)
}

// FindProductsByPrice retrieves all products with exactly the given price.
func (s *ProductService) FindProductsByPrice(price decimal.Decimal) ([]models.Product, error) {
	return s.repo.FindByPrice(price)
}

// FindProductsByPriceString retrieves all products matching a price
// given in string form.
func (s *ProductService) FindProductsByPriceString(raw string) ([]models.Product, error) {
	return s.repo.FindByPriceString(raw)
}

// FindProductsByAvailability retrieves all products matching the flag.
func (s *ProductService) FindProductsByAvailability(available bool) ([]models.Product, error) {
	return s.repo.FindByAvailability(available)
}

// FindProductsByCategory retrieves all products in the given category.
func (s *ProductService) FindProductsByCategory(category models.Category) ([]models.Product, error) {
	return s.repo.FindByCategory(category)
}

// validateProduct enforces the field constraints (required fields,
// name and description length limits) before any store round trip.
func (s *ProductService) validateProduct(product *models.Product) error {
	err := s.validate.Struct(product)
	if err == nil {
		return nil
	}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return models.NewDataValidationError("invalid field %s: failed %s constraint", first.Field(), first.Tag())
	}
	return models.NewDataValidationError("invalid product: %v", err)
}

// publish emits a lifecycle event if a publisher is configured. Events
// are best effort; the store is the source of truth, so a publish
// failure is logged and not propagated.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(event, product.Serialize()); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
