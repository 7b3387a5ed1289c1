// Package ionursery implements the Nursery interface. It keeps plants and
// suppliers consistent with each other, drives the alert engine and
// persists both collections after every change.
package ionursery

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	nursery "github.com/root31/nursery/pkg"
	"github.com/root31/nursery/pkg/alert"
	"github.com/root31/nursery/pkg/config"
	"github.com/root31/nursery/pkg/inventory"
)

// manager implements the Nursery interface.
type manager struct {
	cfg       *config.Config
	store     nursery.DataStore
	plants    *inventory.PlantRepository
	suppliers *inventory.SupplierRepository
	alerts    *alert.Engine
	now       func() time.Time
	synced    bool
}

// Option configures the manager.
type Option func(*manager)

// OptClock replaces the wall clock used for seasonal alerts.
func OptClock(now func() time.Time) Option {
	return func(m *manager) {
		m.now = now
	}
}

// New creates a Nursery on top of the store. Call Load to read the
// stored collections.
func New(
	cfg *config.Config,
	store nursery.DataStore,
	opts ...Option,
) nursery.Nursery {
	res := &manager{
		cfg:       cfg,
		store:     store,
		plants:    inventory.NewPlantRepository(),
		suppliers: inventory.NewSupplierRepository(),
		now:       time.Now,
		synced:    true,
	}
	for _, opt := range opts {
		opt(res)
	}
	res.alerts = alert.New(
		alert.OptThreshold(cfg.Alerts.LowStockThreshold),
		alert.OptClock(res.now),
	)
	return res
}

func (m *manager) Load() error {
	plants, pErr := m.store.LoadPlants()
	suppliers, sErr := m.store.LoadSuppliers()

	m.plants.Load(plants)
	m.suppliers.Load(suppliers)

	m.alerts.Reset()
	for _, p := range plants {
		m.alerts.EvaluateStock(p.Name, p.Quantity)
	}
	m.alerts.EvaluateFleet(m.plants.AnyGreenhouse())
	m.synced = true

	slog.Info("Collections loaded",
		"plants", m.plants.Len(),
		"suppliers", m.suppliers.Len(),
		"location", m.store.Location(),
	)
	return errors.Join(pErr, sErr)
}

func (m *manager) Plants() []inventory.Plant {
	return m.plants.List()
}

func (m *manager) Suppliers() []inventory.Supplier {
	res := m.suppliers.List()
	for i := range res {
		res[i].PlantsServed = m.plants.IDsBySupplier(res[i].Name)
	}
	return res
}

func (m *manager) Alerts() []alert.Alert {
	return m.alerts.List()
}

func (m *manager) Threshold() int {
	return m.alerts.Threshold()
}

func (m *manager) InSeason() bool {
	return m.alerts.InSeason()
}

func (m *manager) Synced() bool {
	return m.synced
}

// CreatePlant resolves the supplier of the plant from the choice, the
// SupplierRef of the plant is ignored. Nothing is created unless both the
// plant and an inline supplier are valid.
func (m *manager) CreatePlant(
	p inventory.Plant,
	choice nursery.SupplierChoice,
) (nursery.Result, error) {
	var res nursery.Result
	var newSupplier *inventory.Supplier
	p.Name = strings.TrimSpace(p.Name)

	switch {
	case choice.Create != nil:
		s := choice.Create.Normalize()
		if err := s.Validate(); err != nil {
			return res, err
		}
		newSupplier = &s
		p.SupplierRef = s.Name
	case choice.IsAbandoned():
		p.SupplierRef = inventory.NoSupplier
	default:
		name := strings.TrimSpace(choice.Name)
		if name != inventory.NoSupplier && !m.suppliers.Exists(name) {
			return res, inventory.SupplierNotFoundError(name)
		}
		p.SupplierRef = name
	}

	if err := m.plants.Validate(p); err != nil {
		return res, err
	}

	if newSupplier != nil {
		if m.suppliers.Exists(newSupplier.Name) {
			res.Warnings = append(res.Warnings, duplicateWarning(newSupplier.Name))
		}
		if err := m.suppliers.Create(*newSupplier); err != nil {
			return res, err
		}
		res.SuppliersChanged = 1
	}
	if err := m.plants.Create(p); err != nil {
		return res, err
	}
	res.PlantsChanged = 1

	m.alerts.EvaluateStock(p.Name, p.Quantity)
	if !p.HasSupplier() {
		m.alerts.RaiseMissingSupplier(p.Name)
	}
	m.alerts.EvaluateFleet(m.plants.AnyGreenhouse())

	res.Message = fmt.Sprintf("Plant '%s' (ID %d) added", p.Name, p.ID)
	if newSupplier != nil {
		res.Message += fmt.Sprintf(" with new supplier '%s'", newSupplier.Name)
	}
	slog.Info("Plant created", "id", p.ID, "name", p.Name,
		"supplier", p.SupplierRef)
	return res, m.persist()
}

// UpdatePlant changes one field. A Supplier value must name an existing
// supplier or be inventory.NoSupplier.
func (m *manager) UpdatePlant(
	id int,
	f inventory.Field,
	value string,
) (nursery.Result, error) {
	var res nursery.Result
	if f == inventory.FieldSupplier {
		name := strings.TrimSpace(value)
		if name != "" && name != inventory.NoSupplier &&
			!m.suppliers.Exists(name) {
			return res, inventory.SupplierNotFoundError(name)
		}
	}

	before, after, err := m.plants.Update(id, f, value)
	if err != nil {
		return res, err
	}
	res.PlantsChanged = 1

	switch f {
	case inventory.FieldName:
		if before.Name != after.Name {
			m.rename(before.Name, after)
		}
	case inventory.FieldQuantity:
		m.alerts.EvaluateStock(after.Name, after.Quantity)
	case inventory.FieldGreenhouse:
		m.alerts.GreenhouseTransition(
			after.Name, before.GreenhouseRequired, after.GreenhouseRequired,
		)
		m.alerts.EvaluateFleet(m.plants.AnyGreenhouse())
	case inventory.FieldSupplier:
		if after.HasSupplier() {
			m.alerts.ClearMissingSupplier(after.Name)
		} else {
			m.alerts.RaiseMissingSupplier(after.Name)
		}
	}

	res.Message = fmt.Sprintf("Plant %d: %s updated", after.ID, f)
	slog.Info("Plant updated", "id", id, "field", f.String(), "value", value)
	return res, m.persist()
}

// rename moves alerts of a plant to its new name. Plants still carrying
// the old name get their alerts derived again.
func (m *manager) rename(oldName string, p inventory.Plant) {
	m.alerts.Forget(oldName)
	m.rederive(p)
	for _, v := range m.plants.ByName(oldName) {
		m.rederive(v)
	}
}

func (m *manager) rederive(p inventory.Plant) {
	m.alerts.EvaluateStock(p.Name, p.Quantity)
	if !p.HasSupplier() {
		m.alerts.RaiseMissingSupplier(p.Name)
	}
}

func (m *manager) DeletePlant(id int) (nursery.Result, error) {
	var res nursery.Result
	p, err := m.plants.Delete(id)
	if err != nil {
		return res, err
	}
	res.PlantsChanged = 1

	m.alerts.Forget(p.Name)
	for _, v := range m.plants.ByName(p.Name) {
		m.rederive(v)
	}
	m.alerts.EvaluateFleet(m.plants.AnyGreenhouse())

	res.Message = fmt.Sprintf("Plant '%s' (ID %d) deleted", p.Name, p.ID)
	slog.Info("Plant deleted", "id", p.ID, "name", p.Name)
	return res, m.persist()
}

func (m *manager) CreateSupplier(s inventory.Supplier) (nursery.Result, error) {
	var res nursery.Result
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return res, err
	}
	if m.suppliers.Exists(s.Name) {
		res.Warnings = append(res.Warnings, duplicateWarning(s.Name))
	}
	if err := m.suppliers.Create(s); err != nil {
		return res, err
	}
	res.SuppliersChanged = 1
	res.Message = fmt.Sprintf("Supplier '%s' added", s.Name)
	slog.Info("Supplier created", "name", s.Name)
	return res, m.persist()
}

// UpdateSupplier replaces the supplier and, when its name changes,
// rewrites the supplier of every plant that referred to the old name.
func (m *manager) UpdateSupplier(
	key string,
	s inventory.Supplier,
) (nursery.Result, error) {
	var res nursery.Result
	s = s.Normalize()
	dup := s.Name != key && m.suppliers.Exists(s.Name)

	old, err := m.suppliers.Update(key, s)
	if err != nil {
		return res, err
	}
	res.SuppliersChanged = 1
	res.Message = fmt.Sprintf("Supplier '%s' updated", s.Name)
	if dup {
		res.Warnings = append(res.Warnings, duplicateWarning(s.Name))
	}

	if old.Name != s.Name {
		res.PlantsChanged = m.plants.ReassignSupplier(old.Name, s.Name)
		res.Message = fmt.Sprintf(
			"Supplier '%s' renamed to '%s', %d plant(s) updated",
			old.Name, s.Name, res.PlantsChanged,
		)
		if m.suppliers.Exists(old.Name) {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Another supplier is still named '%s'", old.Name,
			))
		}
		slog.Info("Supplier renamed", "from", old.Name, "to", s.Name,
			"plants", res.PlantsChanged)
	}
	return res, m.persist()
}

// DeleteSupplier removes the supplier. Plants referring to it keep the
// reference.
func (m *manager) DeleteSupplier(key string) (nursery.Result, error) {
	var res nursery.Result
	s, err := m.suppliers.Delete(key)
	if err != nil {
		return res, err
	}
	res.SuppliersChanged = 1
	res.Message = fmt.Sprintf("Supplier '%s' deleted", s.Name)

	if !m.suppliers.Exists(s.Name) {
		if n := len(m.plants.IDsBySupplier(s.Name)); n > 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"%d plant(s) still refer to '%s'", n, s.Name,
			))
		}
	}
	slog.Info("Supplier deleted", "name", s.Name)
	return res, m.persist()
}

func (m *manager) Save() error {
	return m.persist()
}

// Close saves changes that were not stored yet and closes the store.
func (m *manager) Close() error {
	var err error
	if !m.synced {
		err = m.persist()
	}
	return errors.Join(err, m.store.Close())
}

// persist writes both collections. Memory stays authoritative when it
// fails.
func (m *manager) persist() error {
	pErr := m.store.SavePlants(m.plants.List())
	sErr := m.store.SaveSuppliers(m.suppliers.List())
	err := errors.Join(pErr, sErr)
	m.synced = err == nil
	if err != nil {
		slog.Error("Cannot save collections", "error", err)
	}
	return err
}

func duplicateWarning(name string) string {
	return fmt.Sprintf(
		"Supplier name '%s' is already taken, lookups use the first one", name,
	)
}
