package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrDataValidation is the single error kind returned for malformed input to
// Deserialize and for an update issued without an identifier. Storage failures
// are never wrapped in it; they propagate from the engine unchanged.
var ErrDataValidation = errors.New("data validation error")

// Category is a closed set of named values tagging a product's classification.
type Category int

const (
	Unknown Category = iota
	Cloths
	Food
	Housewares
	Automotive
	Tools
)

var categoryNames = map[Category]string{
	Unknown:    "UNKNOWN",
	Cloths:     "CLOTHS",
	Food:       "FOOD",
	Housewares: "HOUSEWARES",
	Automotive: "AUTOMOTIVE",
	Tools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	byName := make(map[string]Category, len(categoryNames))
	for category, name := range categoryNames {
		byName[name] = category
	}
	return byName
}()

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory resolves an enum name to its Category. The match is exact;
// an unrecognized name fails with ErrDataValidation.
func ParseCategory(name string) (Category, error) {
	category, ok := categoriesByName[name]
	if !ok {
		return Unknown, fmt.Errorf("%w: invalid category %q", ErrDataValidation, name)
	}
	return category, nil
}

// Product represents a catalog item in the store. An ID of 0 means the record
// is transient; the storage engine assigns the ID on create and it is never
// changed afterwards.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Description string          `json:"description" gorm:"type:varchar(250)" validate:"max=250"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null" validate:"required"`
	Available   bool            `json:"available" gorm:"not null"`
	Category    Category        `json:"category" gorm:"not null;default:0" validate:"gte=0,lte=5"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

func (p *Product) String() string {
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}

// Serialize renders the product as a plain key-value mapping. The price is a
// string with full decimal precision and the category is its enum name.
func (p *Product) Serialize() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product from a mapping produced by Serialize or
// decoded from a request body. Keys name, description, price, available and
// category are required. The available value must be a genuine bool; values
// like the string "yes" are rejected, not coerced. Deserialization is
// all-or-nothing: on any failure the product keeps its prior state, and ID is
// never touched.
func (p *Product) Deserialize(data map[string]any) error {
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
		return fmt.Errorf("%w: missing key %q", ErrDataValidation, "price")
	}
	price, err := ToDecimal(rawPrice)
	if err != nil {
		return err
	}

	rawAvailable, ok := data["available"]
	if !ok {
		return fmt.Errorf("%w: missing key %q", ErrDataValidation, "available")
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return fmt.Errorf("%w: invalid type for key %q: expected bool, got %T", ErrDataValidation, "available", rawAvailable)
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

// ToDecimal normalizes a price given as a decimal, a numeric string or a
// number into an exact decimal. Strings may carry surrounding spaces or
// quotes. An unparseable value fails with ErrDataValidation.
func ToDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		price, err := decimal.NewFromString(strings.Trim(v, ` "`))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: invalid price %q", ErrDataValidation, v)
		}
		return price, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: invalid type for key %q: expected decimal or string, got %T", ErrDataValidation, "price", value)
	}
}

func stringField(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", fmt.Errorf("%w: missing key %q", ErrDataValidation, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: invalid type for key %q: expected string, got %T", ErrDataValidation, key, raw)
	}
	return value, nil
}
