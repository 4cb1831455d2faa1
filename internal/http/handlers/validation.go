package handlers

import (
	"strings"
	"time"

	"github.com/stocktrack/inventory-api/internal/models"
)

type ItemValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateCreate checks a create payload, in which every field is required,
// id included. The payload is decoded into a patch so that an absent field can
// be told apart from a zero value.
func validateCreate(p models.ItemPatch) []ItemValidationError {
	errs := []ItemValidationError{}

	required := []struct {
		field  string
		absent bool
	}{
		{"id", p.ID == nil || strings.TrimSpace(*p.ID) == ""},
		{"name", p.Name == nil || strings.TrimSpace(*p.Name) == ""},
		{"category", p.Category == nil},
		{"quantity", p.Quantity == nil},
		{"unit", p.Unit == nil},
		{"expirationDate", p.ExpirationDate == nil},
		{"supplier", p.Supplier == nil},
		{"price", p.Price == nil},
		{"sku", p.SKU == nil},
		{"reorderLevel", p.ReorderLevel == nil},
		{"batchNumber", p.BatchNumber == nil},
	}
	for _, req := range required {
		if req.absent {
			errs = append(errs, ItemValidationError{Field: req.field, Description: req.field + " is required"})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	return append(errs, validateValues(p)...)
}

// validatePatch checks an update payload, in which any field may be absent but
// present fields must still be well formed.
func validatePatch(p models.ItemPatch) []ItemValidationError {
	errs := []ItemValidationError{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, ItemValidationError{Field: "name", Description: "name cannot be empty"})
	}
	return append(errs, validateValues(p)...)
}

func validateValues(p models.ItemPatch) []ItemValidationError {
	errs := []ItemValidationError{}
	if p.Quantity != nil && *p.Quantity < 0 {
		errs = append(errs, ItemValidationError{Field: "quantity", Description: "quantity cannot be negative"})
	}
	if p.ReorderLevel != nil && *p.ReorderLevel < 0 {
		errs = append(errs, ItemValidationError{Field: "reorderLevel", Description: "reorderLevel cannot be negative"})
	}
	if p.Price != nil && p.Price.IsNegative() {
		errs = append(errs, ItemValidationError{Field: "price", Description: "price cannot be negative"})
	}
	if p.ExpirationDate != nil {
		if _, err := time.Parse("2006-01-02", *p.ExpirationDate); err != nil {
			errs = append(errs, ItemValidationError{Field: "expirationDate", Description: "expirationDate must be a YYYY-MM-DD date"})
		}
	}
	return errs
}
