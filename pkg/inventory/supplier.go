package inventory

import "strings"

// Supplier is a company the nursery buys plants from.
type Supplier struct {
	// Name is the key plants refer to. Lookups return the first supplier
	// with a matching name.
	Name        string
	PhoneNumber string
	Address     string
	// PlantsServed lists IDs of plants referring to this supplier. It is a
	// derived view filled by the caller from the plant collection, never
	// persisted.
	PlantsServed []int
}

// Validate requires all text fields to be non-blank.
func (s Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return SupplierValidationError("name", "is required")
	}
	if s.Name == NoSupplier {
		return SupplierValidationError("name",
			"'"+NoSupplier+"' is reserved")
	}
	if strings.TrimSpace(s.PhoneNumber) == "" {
		return SupplierValidationError("phone number", "is required")
	}
	if strings.TrimSpace(s.Address) == "" {
		return SupplierValidationError("address", "is required")
	}
	return nil
}

// Normalize trims whitespace around the text fields.
func (s Supplier) Normalize() Supplier {
	s.Name = strings.TrimSpace(s.Name)
	s.PhoneNumber = strings.TrimSpace(s.PhoneNumber)
	s.Address = strings.TrimSpace(s.Address)
	return s
}
