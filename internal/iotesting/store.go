package iotesting

import (
	"errors"

	"github.com/root31/nursery/internal/iostore"
	"github.com/root31/nursery/pkg/inventory"
)

// MemStore is a DataStore kept in memory. Setting Fail makes saves
// return a persistence error, LoadErr is returned by LoadPlants.
type MemStore struct {
	Plants    []inventory.Plant
	Suppliers []inventory.Supplier
	LoadErr   error
	Fail      bool
	// Saves counts successful saves of plants.
	Saves  int
	Closed bool
}

func (s *MemStore) LoadPlants() ([]inventory.Plant, error) {
	return s.Plants, s.LoadErr
}

func (s *MemStore) LoadSuppliers() ([]inventory.Supplier, error) {
	return s.Suppliers, nil
}

func (s *MemStore) SavePlants(plants []inventory.Plant) error {
	if s.Fail {
		return iostore.StoreWriteError(s.Location(), errors.New("disk full"))
	}
	s.Saves++
	s.Plants = plants
	return nil
}

func (s *MemStore) SaveSuppliers(suppliers []inventory.Supplier) error {
	if s.Fail {
		return iostore.StoreWriteError(s.Location(), errors.New("disk full"))
	}
	s.Suppliers = suppliers
	return nil
}

func (s *MemStore) Location() string { return "memory" }

func (s *MemStore) Close() error {
	s.Closed = true
	return nil
}
