package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DataValidationError reports a payload that cannot be turned into a
// valid Product, or a mutation attempted on an invalid record.
type DataValidationError struct {
	Message string
}

// NewDataValidationError builds a DataValidationError from a format string.
func NewDataValidationError(format string, args ...interface{}) *DataValidationError {
	return &DataValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *DataValidationError) Error() string {
	return e.Message
}

// Product represents a product in the catalog.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Description string          `json:"description" gorm:"type:varchar(250);not null" validate:"required,max=250"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null" validate:"required"`
	Available   bool            `json:"available" gorm:"not null"`
	Category    Category        `json:"category" gorm:"type:varchar(20);not null;default:'UNKNOWN'"`
}

// Serialize converts a Product into its wire representation. The price
// is emitted as a decimal string so it survives the round trip without
// floating-point drift; the category is emitted by variant name.
func (p *Product) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates a Product from a wire payload. The ID field is
// never touched; ids are assigned by the store. The first violation
// found is reported and nothing else is inspected.
func (p *Product) Deserialize(data map[string]interface{}) error {
	name, err := stringField(data, "name")
	if err != nil {
		return err
	}
	description, err := stringField(data, "description")
	if err != nil {
		return err
	}
	rawPrice, ok := data["price"]
	if !ok {
		return NewDataValidationError("missing field: price")
	}
	price, err := ParsePrice(rawPrice)
	if err != nil {
		return err
	}
	rawAvailable, ok := data["available"]
	if !ok {
		return NewDataValidationError("missing field: available")
	}
	available, err := parseBool(rawAvailable)
	if err != nil {
		return err
	}
	categoryName, err := stringField(data, "category")
	if err != nil {
		return err
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category
	return nil
}

// ParsePrice converts a wire-level price value into an exact decimal.
// String forms tolerate surrounding quotes and whitespace.
func ParsePrice(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case string:
		price, err := decimal.NewFromString(strings.Trim(v, `" `))
		if err != nil {
			return decimal.Zero, NewDataValidationError("invalid price: %s", v)
		}
		return price, nil
	case json.Number:
		price, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, NewDataValidationError("invalid price: %s", v)
		}
		return price, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Zero, NewDataValidationError("invalid price: %v", value)
	}
}

func parseBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, NewDataValidationError("invalid available flag: %s", v)
		}
		return parsed, nil
	case float64:
		// JSON numbers decode as float64; only 0 and 1 are boolean-like.
		if v == 0 {
			return false, nil
		}
		if v == 1 {
			return true, nil
		}
		return false, NewDataValidationError("invalid available flag: %v", v)
	default:
		return false, NewDataValidationError("invalid available flag: %v", value)
	}
}

func stringField(data map[string]interface{}, key string) (string, error) {
	value, ok := data[key]
	if !ok {
		return "", NewDataValidationError("missing field: %s", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", NewDataValidationError("invalid value for field %s: %v", key, value)
	}
	return s, nil
}
