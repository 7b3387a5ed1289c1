// Package inventory contains the entity model of the nursery: plants,
// suppliers, per-field validation and the in-memory repositories that hold
// both collections while the program runs.
package inventory

import (
	"strconv"
	"strings"
)

// NoSupplier is the supplier reference of a plant without a linked
// supplier.
const NoSupplier = "No Supplier Assigned"

// Plant is a stock item of the nursery.
type Plant struct {
	// ID is a positive number, unique among plants at creation time.
	ID int
	// Name is a non-empty label, not required to be unique.
	Name string
	// Description is free text.
	Description string
	// Quantity is the number of plants in stock, never negative.
	Quantity int
	// GreenhouseRequired is true if the plant has to be moved to a
	// greenhouse during the cold season.
	GreenhouseRequired bool
	// SupplierRef is the name of a supplier or NoSupplier.
	SupplierRef string
}

// HasSupplier is false when the plant carries the NoSupplier sentinel.
func (p Plant) HasSupplier() bool {
	return p.SupplierRef != NoSupplier
}

// Validate checks every field of the plant.
func (p Plant) Validate() error {
	if p.ID <= 0 {
		return PlantValidationError(FieldID, "must be a positive integer")
	}
	if strings.TrimSpace(p.Name) == "" {
		return PlantValidationError(FieldName, "is required")
	}
	if p.Quantity < 0 {
		return PlantValidationError(FieldQuantity, "cannot be negative")
	}
	if strings.TrimSpace(p.SupplierRef) == "" {
		return PlantValidationError(FieldSupplier, "is required")
	}
	return nil
}

// With returns a copy of the plant with the field set from its text
// value. The value is parsed and validated the same way as on creation.
func (p Plant) With(f Field, value string) (Plant, error) {
	var err error
	res := p
	switch f {
	case FieldID:
		res.ID, err = ParseID(value)
	case FieldName:
		res.Name = strings.TrimSpace(value)
		if res.Name == "" {
			err = PlantValidationError(FieldName, "is required")
		}
	case FieldDescription:
		res.Description = value
	case FieldQuantity:
		res.Quantity, err = ParseQuantity(value)
	case FieldGreenhouse:
		res.GreenhouseRequired, err = ParseGreenhouse(value)
	case FieldSupplier:
		res.SupplierRef = strings.TrimSpace(value)
		if res.SupplierRef == "" {
			err = PlantValidationError(FieldSupplier, "is required")
		}
	default:
		err = PlantValidationError(f, "is not a plant field")
	}
	if err != nil {
		return p, err
	}
	return res, nil
}

// ParseID converts text to a plant ID.
func ParseID(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, PlantValidationError(FieldID, "must be an integer")
	}
	if i <= 0 {
		return 0, PlantValidationError(FieldID, "must be a positive integer")
	}
	return i, nil
}

// ParseQuantity converts text to a stock quantity.
func ParseQuantity(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, PlantValidationError(FieldQuantity, "must be an integer")
	}
	if i < 0 {
		return 0, PlantValidationError(FieldQuantity,
			"cannot be negative, please enter a non-negative integer")
	}
	return i, nil
}

// ParseGreenhouse converts "yes" or "no" to a greenhouse requirement.
// Case and surrounding whitespace are ignored.
func ParseGreenhouse(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, PlantValidationError(FieldGreenhouse,
			"please enter 'yes' or 'no'")
	}
}

// FormatGreenhouse converts a greenhouse requirement to "yes" or "no".
func FormatGreenhouse(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
