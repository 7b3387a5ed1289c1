package inventory

import "slices"

// SupplierRepository keeps suppliers in insertion order. Names are not
// enforced unique, every lookup by name returns the first match.
type SupplierRepository struct {
	suppliers []Supplier
}

// NewSupplierRepository creates an empty repository.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{}
}

// Load replaces the content of the repository.
func (r *SupplierRepository) Load(suppliers []Supplier) {
	r.suppliers = slices.Clone(suppliers)
}

// Len returns the number of suppliers.
func (r *SupplierRepository) Len() int {
	return len(r.suppliers)
}

// List returns all suppliers in insertion order.
func (r *SupplierRepository) List() []Supplier {
	return slices.Clone(r.suppliers)
}

// Names returns supplier names in insertion order.
func (r *SupplierRepository) Names() []string {
	res := make([]string, len(r.suppliers))
	for i, s := range r.suppliers {
		res[i] = s.Name
	}
	return res
}

// Get returns the first supplier with the name.
func (r *SupplierRepository) Get(name string) (Supplier, error) {
	idx := r.index(name)
	if idx < 0 {
		return Supplier{}, SupplierNotFoundError(name)
	}
	return r.suppliers[idx], nil
}

// Exists is true if a supplier with the name is present.
func (r *SupplierRepository) Exists(name string) bool {
	return r.index(name) >= 0
}

// Count returns the number of suppliers sharing the name.
func (r *SupplierRepository) Count(name string) int {
	var res int
	for _, s := range r.suppliers {
		if s.Name == name {
			res++
		}
	}
	return res
}

// Create validates and appends a supplier.
func (r *SupplierRepository) Create(s Supplier) error {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return err
	}
	s.PlantsServed = nil
	r.suppliers = append(r.suppliers, s)
	return nil
}

// Update replaces the first supplier named key and returns its previous
// state. Nothing changes on error.
func (r *SupplierRepository) Update(key string, s Supplier) (Supplier, error) {
	idx := r.index(key)
	if idx < 0 {
		return Supplier{}, SupplierNotFoundError(key)
	}
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return r.suppliers[idx], err
	}
	s.PlantsServed = nil
	old := r.suppliers[idx]
	r.suppliers[idx] = s
	return old, nil
}

// Delete removes the first supplier named key and returns it.
func (r *SupplierRepository) Delete(key string) (Supplier, error) {
	idx := r.index(key)
	if idx < 0 {
		return Supplier{}, SupplierNotFoundError(key)
	}
	res := r.suppliers[idx]
	r.suppliers = slices.Delete(r.suppliers, idx, idx+1)
	return res, nil
}

func (r *SupplierRepository) index(name string) int {
	return slices.IndexFunc(r.suppliers, func(s Supplier) bool {
		return s.Name == name
	})
}
