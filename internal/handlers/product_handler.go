package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns all products, optionally narrowed by a
// single equality filter. Filters are checked in order: name, category,
// available, price; the first one present wins.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var (
		products []models.Product
		err      error
	)

	switch {
	case c.Query("name") != "":
		products, err = h.service.FindProductsByName(c.Query("name"))
	case c.Query("category") != "":
		var category models.Category
		category, err = models.ParseCategory(c.Query("category"))
		if err == nil {
			products, err = h.service.FindProductsByCategory(category)
		}
	case c.Query("available") != "":
		var available bool
		available, err = strconv.ParseBool(c.Query("available"))
		if err != nil {
			err = models.NewDataValidationError("invalid available flag: %s", c.Query("available"))
		} else {
			products, err = h.service.FindProductsByAvailability(available)
		}
	case c.Query("price") != "":
		products, err = h.service.FindProductsByPriceString(c.Query("price"))
	default:
		products, err = h.service.GetAllProducts()
	}

	if err != nil {
		return respondError(c, err, "Could not retrieve products")
	}

	results := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		results = append(results, products[i].Serialize())
	}
	return c.JSON(results)
}

// HandleGetProduct retrieves a single product by its id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return respondError(c, err, "Invalid product id")
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return respondError(c, err, "Could not retrieve product")
	}
	return c.JSON(product.Serialize())
}

// HandleCreateProduct creates a new product from the request payload.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err, "Invalid request body")
	}

	product := &models.Product{}
	if err := product.Deserialize(payload); err != nil {
		return respondError(c, err, "Invalid product payload")
	}

	if err := h.service.CreateProduct(product); err != nil {
		return respondError(c, err, "Could not create product")
	}

	c.Location(fmt.Sprintf("/products/%d", product.ID))
	return c.Status(fiber.StatusCreated).JSON(product.Serialize())
}

// HandleUpdateProduct replaces the fields of an existing product with
// the values from the request payload.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return respondError(c, err, "Invalid product id")
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return respondError(c, err, "Could not retrieve product")
	}

	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err, "Invalid request body")
	}
	if err := product.Deserialize(payload); err != nil {
		return respondError(c, err, "Invalid product payload")
	}

	if err := h.service.UpdateProduct(product); err != nil {
		return respondError(c, err, "Could not update product")
	}
	return c.JSON(product.Serialize())
}

// HandleDeleteProduct removes a product by its id.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return respondError(c, err, "Invalid product id")
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return respondError(c, err, "Could not retrieve product")
	}

	if err := h.service.DeleteProduct(product); err != nil {
		return respondError(c, err, "Could not delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseProductID reads the numeric product id from the request path.
func parseProductID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, models.NewDataValidationError("invalid product id: %s", c.Params("id"))
	}
	return uint(id), nil
}

// parsePayload decodes the JSON request body into a wire map.
func parsePayload(c *fiber.Ctx) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return nil, models.NewDataValidationError("invalid request body: %v", err)
	}
	return payload, nil
}

// respondError maps layer errors onto transport status codes:
// validation failures to 400, missing records to 404, everything else
// to 500.
func respondError(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	var validationErr *models.DataValidationError
	switch {
	case errors.As(err, &validationErr):
		status = fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	default:
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
