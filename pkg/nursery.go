// Package nursery declares the core contracts of the nursery inventory:
// the operations available to a user interface and the storage they
// persist through.
package nursery

import (
	"github.com/root31/nursery/pkg/alert"
	"github.com/root31/nursery/pkg/inventory"
)

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is set by build flags.
	Build = "n/a"
)

// Nursery is the interface a user interface talks to. Every mutating
// operation validates its input before changing anything, updates alerts
// and persists both collections.
type Nursery interface {
	// Load reads both collections from storage and rebuilds stock and fleet
	// alerts. Malformed content is reported while the rest is kept.
	Load() error

	// Plants returns all plants in insertion order.
	Plants() []inventory.Plant

	// Suppliers returns all suppliers with PlantsServed filled in.
	Suppliers() []inventory.Supplier

	// Alerts returns the current alerts in the order they were raised.
	Alerts() []alert.Alert

	// CreatePlant adds a plant and resolves its supplier from the choice.
	CreatePlant(p inventory.Plant, choice SupplierChoice) (Result, error)

	// UpdatePlant sets one field of a plant from its text value.
	UpdatePlant(id int, f inventory.Field, value string) (Result, error)

	// DeletePlant removes a plant.
	DeletePlant(id int) (Result, error)

	// CreateSupplier adds a supplier.
	CreateSupplier(s inventory.Supplier) (Result, error)

	// UpdateSupplier replaces the supplier named key. A changed name is
	// propagated to every plant referring to the old one.
	UpdateSupplier(key string, s inventory.Supplier) (Result, error)

	// DeleteSupplier removes the supplier named key. Plants keep their
	// reference.
	DeleteSupplier(key string) (Result, error)

	// Save writes both collections to storage.
	Save() error

	// Synced is false if the last save failed.
	Synced() bool

	// Threshold is the quantity below which stock is low.
	Threshold() int

	// InSeason is true during the greenhouse season.
	InSeason() bool

	// Close flushes both collections and releases the storage.
	Close() error
}

// DataStore reads and writes whole snapshots of both collections.
type DataStore interface {
	// LoadPlants returns the plants that could be read. A non-nil error
	// together with plants means some records were skipped.
	LoadPlants() ([]inventory.Plant, error)

	// LoadSuppliers returns the suppliers that could be read.
	LoadSuppliers() ([]inventory.Supplier, error)

	// SavePlants overwrites stored plants.
	SavePlants(plants []inventory.Plant) error

	// SaveSuppliers overwrites stored suppliers.
	SaveSuppliers(suppliers []inventory.Supplier) error

	// Location describes where data is kept.
	Location() string

	// Close releases the storage.
	Close() error
}

// SupplierChoice resolves the supplier of a new plant. Exactly one
// of the fields is expected. With none set the choice is abandoned.
type SupplierChoice struct {
	// Name of an existing supplier.
	Name string
	// Create is a supplier to add before the plant.
	Create *inventory.Supplier
	// Abandoned leaves the plant without a supplier.
	Abandoned bool
}

// IsAbandoned is true when no supplier is chosen.
func (c SupplierChoice) IsAbandoned() bool {
	return c.Abandoned || (c.Name == "" && c.Create == nil)
}

// Result describes a successful operation.
type Result struct {
	// Message is a short summary for the user.
	Message string
	// Warnings are non-fatal remarks, like a duplicate supplier name.
	Warnings []string
	// PlantsChanged counts plants affected by the operation.
	PlantsChanged int
	// SuppliersChanged counts suppliers affected by the operation.
	SuppliersChanged int
}
