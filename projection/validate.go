package projection

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"foxy-admin/models"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 5000
	maxQuantity          = 999999
)

var maxPrice = decimal.RequireFromString("999999.99")

// ValidationError carries the message shown next to the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// ValidateProductForm checks a create/edit form and stops at the first violation.
// On success it returns the parsed price and quantity.
func ValidateProductForm(form models.ProductForm) (float64, int, error) {
	if strings.TrimSpace(form.Name) == "" {
		return 0, 0, invalid("name", "Product name cannot be empty")
	}
	if utf8.RuneCountInString(form.Name) > maxNameLength {
		return 0, 0, invalid("name", "Product name must be less than 255 characters")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(form.Price))
	if err != nil {
		return 0, 0, invalid("price", "Price must be a valid number")
	}
	if price.IsNegative() {
		return 0, 0, invalid("price", "Price cannot be negative")
	}
	if price.GreaterThan(maxPrice) {
		return 0, 0, invalid("price", "Price cannot exceed £999,999.99")
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(form.Quantity), 10, 32)
	if err != nil {
		return 0, 0, invalid("quantity", "Quantity must be a valid number")
	}
	if quantity < 0 {
		return 0, 0, invalid("quantity", "Quantity cannot be negative")
	}
	if quantity > maxQuantity {
		return 0, 0, invalid("quantity", "Quantity cannot exceed 999,999")
	}

	if utf8.RuneCountInString(form.Description) > maxDescriptionLength {
		return 0, 0, invalid("description", "Description must be less than 5,000 characters")
	}

	return price.InexactFloat64(), int(quantity), nil
}
