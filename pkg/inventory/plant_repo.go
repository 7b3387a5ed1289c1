package inventory

import "slices"

// PlantRepository keeps plants in insertion order. Lookups by ID return
// the first match: IDs are unique at creation, but an ID update is not
// re-checked against other plants.
type PlantRepository struct {
	plants []Plant
}

// NewPlantRepository creates an empty repository.
func NewPlantRepository() *PlantRepository {
	return &PlantRepository{}
}

// Load replaces the content of the repository.
func (r *PlantRepository) Load(plants []Plant) {
	r.plants = slices.Clone(plants)
}

// Len returns the number of plants.
func (r *PlantRepository) Len() int {
	return len(r.plants)
}

// List returns all plants in insertion order.
func (r *PlantRepository) List() []Plant {
	return slices.Clone(r.plants)
}

// Get returns the first plant with the ID.
func (r *PlantRepository) Get(id int) (Plant, error) {
	idx := r.index(id)
	if idx < 0 {
		return Plant{}, PlantNotFoundError(id)
	}
	return r.plants[idx], nil
}

// Validate checks a new plant against its own rules and the IDs of
// existing plants without storing it.
func (r *PlantRepository) Validate(p Plant) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if r.index(p.ID) >= 0 {
		return PlantDuplicateIDError(p.ID)
	}
	return nil
}

// Create validates and appends a plant.
func (r *PlantRepository) Create(p Plant) error {
	if err := r.Validate(p); err != nil {
		return err
	}
	r.plants = append(r.plants, p)
	return nil
}

// Update sets one field of the plant from its text value and returns the
// plant before and after the change. Nothing changes on error.
func (r *PlantRepository) Update(
	id int,
	f Field,
	value string,
) (before, after Plant, err error) {
	idx := r.index(id)
	if idx < 0 {
		return Plant{}, Plant{}, PlantNotFoundError(id)
	}
	before = r.plants[idx]
	after, err = before.With(f, value)
	if err != nil {
		return before, before, err
	}
	r.plants[idx] = after
	return before, after, nil
}

// Delete removes the first plant with the ID and returns it.
func (r *PlantRepository) Delete(id int) (Plant, error) {
	idx := r.index(id)
	if idx < 0 {
		return Plant{}, PlantNotFoundError(id)
	}
	res := r.plants[idx]
	r.plants = slices.Delete(r.plants, idx, idx+1)
	return res, nil
}

// ByName returns plants carrying the name.
func (r *PlantRepository) ByName(name string) []Plant {
	var res []Plant
	for _, p := range r.plants {
		if p.Name == name {
			res = append(res, p)
		}
	}
	return res
}

// AnyGreenhouse is true if at least one plant requires a greenhouse.
func (r *PlantRepository) AnyGreenhouse() bool {
	return slices.ContainsFunc(r.plants, func(p Plant) bool {
		return p.GreenhouseRequired
	})
}

// ReassignSupplier rewrites every reference to supplier oldName with
// newName and returns the number of changed plants.
func (r *PlantRepository) ReassignSupplier(oldName, newName string) int {
	var count int
	for i := range r.plants {
		if r.plants[i].SupplierRef == oldName {
			r.plants[i].SupplierRef = newName
			count++
		}
	}
	return count
}

// IDsBySupplier returns IDs of plants referring to the supplier name.
func (r *PlantRepository) IDsBySupplier(name string) []int {
	var res []int
	for _, p := range r.plants {
		if p.SupplierRef == name {
			res = append(res, p.ID)
		}
	}
	return res
}

// TotalQuantity sums quantities of all plants.
func (r *PlantRepository) TotalQuantity() int {
	var res int
	for _, p := range r.plants {
		res += p.Quantity
	}
	return res
}

func (r *PlantRepository) index(id int) int {
	return slices.IndexFunc(r.plants, func(p Plant) bool {
		return p.ID == id
	})
}
