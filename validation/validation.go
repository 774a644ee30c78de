// Package validation holds the per-field checks behind the admin product
// form and the public contact form. Each check is a plain function that
// returns nil for a valid value or a FieldError naming the field and the
// reason, so callers can report errors field by field.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError is a validation failure on a single field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func fail(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Errors collects failures keyed by field for the JSON response.
type Errors []*FieldError

func (errs Errors) ByField() map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Reason
		}
	}
	return m
}

var (
	slugPattern       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	skuPattern        = regexp.MustCompile(`^[A-Z0-9-]+$`)
	dimensionsPattern = regexp.MustCompile(`^\d+(?:\.\d+)?x\d+(?:\.\d+)?x\d+(?:\.\d+)?$`)
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Limits count characters, not bytes: an accented name must not burn
// two units per letter.
func Name(v string) *FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	if n < 2 {
		return fail("name", "must have at least 2 characters")
	}
	if n > 200 {
		return fail("name", "must have at most 200 characters")
	}
	return nil
}

func Slug(v string) *FieldError {
	if v == "" {
		return fail("slug", "is required")
	}
	if utf8.RuneCountInString(v) > 200 {
		return fail("slug", "must have at most 200 characters")
	}
	if !slugPattern.MatchString(v) {
		return fail("slug", "must contain only lowercase letters, digits and hyphens")
	}
	return nil
}

func SKU(v string) *FieldError {
	if v == "" {
		return fail("sku", "is required")
	}
	if utf8.RuneCountInString(v) > 100 {
		return fail("sku", "must have at most 100 characters")
	}
	if !skuPattern.MatchString(v) {
		return fail("sku", "must contain only uppercase letters, digits and hyphens")
	}
	return nil
}

func Price(v float64) *FieldError {
	if v <= 0 {
		return fail("price", "must be greater than zero")
	}
	return nil
}

// ComparePrice is optional; when set it must exceed the sale price,
// otherwise the storefront would show a negative discount.
func ComparePrice(compare, price float64) *FieldError {
	if compare == 0 {
		return nil
	}
	if compare < 0 {
		return fail("compare_price", "must not be negative")
	}
	if compare <= price {
		return fail("compare_price", "must be greater than the sale price")
	}
	return nil
}

func CostPrice(v float64) *FieldError {
	if v < 0 {
		return fail("cost_price", "must not be negative")
	}
	return nil
}

func Stock(v int) *FieldError {
	if v < 0 {
		return fail("stock", "must not be negative")
	}
	return nil
}

func MinStockLevel(v int) *FieldError {
	if v < 0 {
		return fail("min_stock_level", "must not be negative")
	}
	return nil
}

func Weight(v float64) *FieldError {
	if v < 0 {
		return fail("weight", "must not be negative")
	}
	return nil
}

// Dimensions is optional; when set it must look like "10x20x30" (cm).
func Dimensions(v string) *FieldError {
	if v == "" {
		return nil
	}
	if utf8.RuneCountInString(v) > 50 {
		return fail("dimensions", "must have at most 50 characters")
	}
	if !dimensionsPattern.MatchString(v) {
		return fail("dimensions", "must look like LxAxP, e.g. 10x20x30")
	}
	return nil
}

func ShortDescription(v string) *FieldError {
	if utf8.RuneCountInString(v) > 500 {
		return fail("short_description", "must have at most 500 characters")
	}
	return nil
}

func Description(v string) *FieldError {
	if utf8.RuneCountInString(v) > 5000 {
		return fail("description", "must have at most 5000 characters")
	}
	return nil
}

func MetaTitle(v string) *FieldError {
	if utf8.RuneCountInString(v) > 70 {
		return fail("meta_title", "must have at most 70 characters")
	}
	return nil
}

func MetaDescription(v string) *FieldError {
	if utf8.RuneCountInString(v) > 160 {
		return fail("meta_description", "must have at most 160 characters")
	}
	return nil
}

func Email(v string) *FieldError {
	if v == "" {
		return fail("email", "is required")
	}
	if utf8.RuneCountInString(v) > 254 || !emailPattern.MatchString(v) {
		return fail("email", "is not a valid address")
	}
	return nil
}

func Rating(v int) *FieldError {
	if v < 1 || v > 5 {
		return fail("rating", "must be between 1 and 5")
	}
	return nil
}
