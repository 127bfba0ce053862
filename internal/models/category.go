package models

import (
	"database/sql/driver"
	"fmt"
)

// Category is the closed set of product classifications.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoriesByName = map[string]Category{
	"UNKNOWN":    CategoryUnknown,
	"CLOTHS":     CategoryCloths,
	"FOOD":       CategoryFood,
	"HOUSEWARES": CategoryHousewares,
	"AUTOMOTIVE": CategoryAutomotive,
	"TOOLS":      CategoryTools,
}

// String returns the variant name, e.g. "FOOD".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// ParseCategory resolves a variant name to its Category. Names are
// case-sensitive; an unrecognized name is a validation failure, never
// a silent fallback to UNKNOWN.
func ParseCategory(name string) (Category, error) {
	if category, ok := categoriesByName[name]; ok {
		return category, nil
	}
	return CategoryUnknown, NewDataValidationError("invalid category: %s", name)
}

// Value stores the category by variant name.
func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan reads a category back from its stored variant name.
func (c *Category) Scan(value interface{}) error {
	var name string
	switch v := value.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("cannot scan category from %T", value)
	}
	category, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = category
	return nil
}

// MarshalJSON emits the variant name rather than the numeric code.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON parses a quoted variant name.
func (c *Category) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return NewDataValidationError("invalid category: %s", string(data))
	}
	category, err := ParseCategory(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*c = category
	return nil
}
