package ionursery_test

import (
	"errors"
	"testing"
	"time"

	"github.com/root31/nursery/internal/ionursery"
	"github.com/root31/nursery/internal/iostore"
	"github.com/root31/nursery/internal/iotesting"
	nursery "github.com/root31/nursery/pkg"
	"github.com/root31/nursery/pkg/alert"
	"github.com/root31/nursery/pkg/config"
	"github.com/root31/nursery/pkg/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(month time.Month) ionursery.Option {
	return ionursery.OptClock(func() time.Time {
		return time.Date(2024, month, 10, 9, 0, 0, 0, time.UTC)
	})
}

func greenCo() inventory.Supplier {
	return inventory.Supplier{
		Name: "GreenCo", PhoneNumber: "555-0101", Address: "1 Leaf Rd",
	}
}

func setup(
	t *testing.T,
	st *iotesting.MemStore,
	month time.Month,
) nursery.Nursery {
	t.Helper()
	n := ionursery.New(config.New(), st, clock(month))
	require.NoError(t, n.Load())
	return n
}

func texts(n nursery.Nursery) []string {
	var res []string
	for _, a := range n.Alerts() {
		res = append(res, a.Text)
	}
	return res
}

func countKind(n nursery.Nursery, k alert.Kind, subject string) int {
	var res int
	for _, a := range n.Alerts() {
		if a.Kind == k && a.Subject == subject {
			res++
		}
	}
	return res
}

func TestFernScenario(t *testing.T) {
	st := &iotesting.MemStore{Suppliers: []inventory.Supplier{greenCo()}}
	n := setup(t, st, time.July)

	fern := inventory.Plant{ID: 7, Name: "Fern", Quantity: 0}
	res, err := n.CreatePlant(fern, nursery.SupplierChoice{Name: "GreenCo"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.PlantsChanged)
	assert.Contains(t, texts(n),
		"CRITICAL ALERT: Plant 'Fern' is out of stock (Quantity: 0)")
	assert.Equal(t, 1, st.Saves)

	_, err = n.UpdatePlant(7, inventory.FieldQuantity, "10")
	require.NoError(t, err)
	assert.Empty(t, n.Alerts(), "no CRITICAL and no LOW")
	assert.Equal(t, 10, st.Plants[0].Quantity)
}

func TestStockProperty(t *testing.T) {
	st := &iotesting.MemStore{Plants: []inventory.Plant{{
		ID: 1, Name: "Fern", Quantity: 9, SupplierRef: "GreenCo",
	}}}
	n := setup(t, st, time.July)

	for _, q := range []string{"0", "1", "4", "5", "0", "12", "3"} {
		_, err := n.UpdatePlant(1, inventory.FieldQuantity, q)
		require.NoError(t, err)
		qty, _ := inventory.ParseQuantity(q)
		crit := countKind(n, alert.Critical, "Fern")
		low := countKind(n, alert.Low, "Fern")
		switch {
		case qty == 0:
			assert.Equal(t, []int{1, 0}, []int{crit, low}, q)
		case qty < 5:
			assert.Equal(t, []int{0, 1}, []int{crit, low}, q)
		default:
			assert.Equal(t, []int{0, 0}, []int{crit, low}, q)
		}
	}
}

func TestOrchidDecember(t *testing.T) {
	st := &iotesting.MemStore{Plants: []inventory.Plant{{
		ID: 3, Name: "Orchid", Quantity: 20, SupplierRef: "GreenCo",
	}}}
	n := setup(t, st, time.December)
	assert.Empty(t, n.Alerts())

	_, err := n.UpdatePlant(3, inventory.FieldGreenhouse, "yes")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"GREENHOUSE ALERT: Plant 'Orchid' now requires a greenhouse. " +
			"Consider moving it in.",
		"GREENHOUSE ALERT: Some plants require greenhouse. " +
			"Consider moving them in.",
	}, texts(n))

	_, err = n.UpdatePlant(3, inventory.FieldGreenhouse, "no")
	require.NoError(t, err)
	assert.Empty(t, n.Alerts())
}

func TestFleetProperty(t *testing.T) {
	for _, month := range []time.Month{time.January, time.June, time.October} {
		st := &iotesting.MemStore{Suppliers: []inventory.Supplier{greenCo()}}
		n := setup(t, st, month)
		inSeason := alert.InSeason(time.Date(2024, month, 1, 0, 0, 0, 0, time.UTC))

		check := func(msg string) {
			var anyGH bool
			for _, p := range n.Plants() {
				anyGH = anyGH || p.GreenhouseRequired
			}
			has := countKind(n, alert.Greenhouse, "") == 1
			assert.Equal(t, inSeason && anyGH, has, month.String()+": "+msg)
		}

		choice := nursery.SupplierChoice{Name: "GreenCo"}
		_, err := n.CreatePlant(inventory.Plant{
			ID: 1, Name: "Palm", Quantity: 8, GreenhouseRequired: true,
		}, choice)
		require.NoError(t, err)
		check("add greenhouse plant")

		_, err = n.CreatePlant(inventory.Plant{
			ID: 2, Name: "Pine", Quantity: 8,
		}, choice)
		require.NoError(t, err)
		check("add outdoor plant")

		_, err = n.UpdatePlant(1, inventory.FieldGreenhouse, "no")
		require.NoError(t, err)
		check("update greenhouse")

		_, err = n.UpdatePlant(2, inventory.FieldGreenhouse, "yes")
		require.NoError(t, err)
		check("update other")

		_, err = n.DeletePlant(2)
		require.NoError(t, err)
		check("delete")
	}
}

func TestFleetAfterLoad(t *testing.T) {
	st := &iotesting.MemStore{Plants: []inventory.Plant{{
		ID: 1, Name: "Palm", Quantity: 8, GreenhouseRequired: true,
		SupplierRef: "GreenCo",
	}}}
	n := setup(t, st, time.November)
	assert.Equal(t, []string{
		"GREENHOUSE ALERT: Some plants require greenhouse. " +
			"Consider moving them in.",
	}, texts(n))
}

func TestDeclinedSupplier(t *testing.T) {
	st := &iotesting.MemStore{}
	n := setup(t, st, time.July)

	p := inventory.Plant{ID: 4, Name: "Ivy", Quantity: 6}
	_, err := n.CreatePlant(p, nursery.SupplierChoice{Abandoned: true})
	require.NoError(t, err)

	require.Len(t, st.Plants, 1)
	assert.Equal(t, inventory.NoSupplier, st.Plants[0].SupplierRef)
	assert.Equal(t, []string{
		"Alert: Plant 'Ivy' has no supplier assigned.",
	}, texts(n))

	_, err = n.CreateSupplier(greenCo())
	require.NoError(t, err)
	_, err = n.UpdatePlant(4, inventory.FieldSupplier, "GreenCo")
	require.NoError(t, err)
	assert.Empty(t, n.Alerts())

	_, err = n.UpdatePlant(4, inventory.FieldSupplier, inventory.NoSupplier)
	require.NoError(t, err)
	assert.Equal(t, 1, countKind(n, alert.MissingSupplier, "Ivy"))
}

func TestCreatePlantInlineSupplier(t *testing.T) {
	st := &iotesting.MemStore{}
	n := setup(t, st, time.July)

	s := greenCo()
	res, err := n.CreatePlant(
		inventory.Plant{ID: 1, Name: "Fern", Quantity: 9},
		nursery.SupplierChoice{Create: &s},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuppliersChanged)
	assert.Len(t, n.Suppliers(), 1)
	assert.Equal(t, "GreenCo", n.Plants()[0].SupplierRef)
	assert.Equal(t, []int{1}, n.Suppliers()[0].PlantsServed)
}

func TestCreatePlantNoPartialMutation(t *testing.T) {
	st := &iotesting.MemStore{Suppliers: []inventory.Supplier{greenCo()}}
	n := setup(t, st, time.July)

	bad := inventory.Supplier{Name: "Leafy"}
	_, err := n.CreatePlant(
		inventory.Plant{ID: 1, Name: "Fern", Quantity: 9},
		nursery.SupplierChoice{Create: &bad},
	)
	assert.True(t, inventory.IsValidation(err))

	good := inventory.Supplier{Name: "Leafy", PhoneNumber: "1", Address: "x"}
	_, err = n.CreatePlant(
		inventory.Plant{ID: 1, Name: "Fern", Quantity: -3},
		nursery.SupplierChoice{Create: &good},
	)
	assert.True(t, inventory.IsValidation(err))

	_, err = n.CreatePlant(
		inventory.Plant{ID: 1, Name: "Fern", Quantity: 0},
		nursery.SupplierChoice{Name: "Nobody"},
	)
	assert.True(t, inventory.IsNotFound(err))

	assert.Empty(t, n.Plants())
	assert.Len(t, n.Suppliers(), 1)
	assert.Empty(t, n.Alerts())
	assert.Equal(t, 0, st.Saves)

	_, err = n.CreatePlant(
		inventory.Plant{ID: 1, Name: "Fern", Quantity: 9},
		nursery.SupplierChoice{Name: "GreenCo"},
	)
	require.NoError(t, err)
	_, err = n.CreatePlant(
		inventory.Plant{ID: 1, Name: "Rose", Quantity: 9},
		nursery.SupplierChoice{Name: "GreenCo"},
	)
	assert.True(t, inventory.IsValidation(err), "duplicate id")
	assert.Len(t, n.Plants(), 1)
}

func TestUpdatePlantErrors(t *testing.T) {
	st := &iotesting.MemStore{Plants: []inventory.Plant{{
		ID: 1, Name: "Fern", Quantity: 2, SupplierRef: "GreenCo",
	}}}
	n := setup(t, st, time.July)

	_, err := n.UpdatePlant(1, inventory.FieldSupplier, "Nobody")
	assert.True(t, inventory.IsNotFound(err))
	_, err = n.UpdatePlant(1, inventory.FieldQuantity, "-5")
	assert.True(t, inventory.IsValidation(err))
	_, err = n.UpdatePlant(2, inventory.FieldQuantity, "5")
	assert.True(t, inventory.IsNotFound(err))

	assert.Equal(t, 2, n.Plants()[0].Quantity)
	assert.Equal(t, "GreenCo", n.Plants()[0].SupplierRef)
	assert.Equal(t, 0, st.Saves)
}

func TestPlantRename(t *testing.T) {
	st := &iotesting.MemStore{Plants: []inventory.Plant{
		{ID: 1, Name: "Fern", Quantity: 0, SupplierRef: "GreenCo"},
		{ID: 2, Name: "Fern", Quantity: 3, SupplierRef: "GreenCo"},
	}}
	n := setup(t, st, time.December)

	p := inventory.Plant{ID: 3, Name: "Moss", Quantity: 1}
	_, err := n.CreatePlant(p, nursery.SupplierChoice{Abandoned: true})
	require.NoError(t, err)
	_, err = n.UpdatePlant(3, inventory.FieldGreenhouse, "yes")
	require.NoError(t, err)
	require.Equal(t, 1, countKind(n, alert.Greenhouse, "Moss"))

	_, err = n.UpdatePlant(3, inventory.FieldName, "Lichen")
	require.NoError(t, err)
	assert.Equal(t, 0, countKind(n, alert.MissingSupplier, "Moss"))
	assert.Equal(t, 0, countKind(n, alert.Low, "Moss"))
	assert.Equal(t, 0, countKind(n, alert.Greenhouse, "Moss"))
	assert.Equal(t, 1, countKind(n, alert.MissingSupplier, "Lichen"))
	assert.Equal(t, 1, countKind(n, alert.Low, "Lichen"))
	assert.Equal(t, 0, countKind(n, alert.Greenhouse, "Lichen"))
	assert.Equal(t, 1, countKind(n, alert.Greenhouse, ""))

	// the other Fern keeps a stock alert after one of them is renamed
	_, err = n.UpdatePlant(1, inventory.FieldName, "Bracken")
	require.NoError(t, err)
	assert.Equal(t, 1, countKind(n, alert.Critical, "Bracken"))
	assert.Equal(t, 1, countKind(n, alert.Low, "Fern"))
	assert.Equal(t, 0, countKind(n, alert.Critical, "Fern"))
}

func TestDeletePlant(t *testing.T) {
	st := &iotesting.MemStore{Plants: []inventory.Plant{
		{ID: 1, Name: "Fern", Quantity: 0, SupplierRef: "GreenCo"},
		{ID: 2, Name: "Fern", Quantity: 2, SupplierRef: inventory.NoSupplier},
		{ID: 3, Name: "Palm", Quantity: 9, GreenhouseRequired: true,
			SupplierRef: "GreenCo"},
	}}
	n := setup(t, st, time.March)
	require.Equal(t, 1, countKind(n, alert.Low, "Fern"), "last Fern wins")

	_, err := n.DeletePlant(2)
	require.NoError(t, err)
	assert.Equal(t, 1, countKind(n, alert.Critical, "Fern"))
	assert.Equal(t, 0, countKind(n, alert.Low, "Fern"))

	_, err = n.DeletePlant(3)
	require.NoError(t, err)
	assert.Equal(t, 0, countKind(n, alert.Greenhouse, ""))

	_, err = n.DeletePlant(1)
	require.NoError(t, err)
	assert.Empty(t, n.Alerts())

	_, err = n.DeletePlant(1)
	assert.True(t, inventory.IsNotFound(err))
}

func TestSupplierRename(t *testing.T) {
	st := &iotesting.MemStore{
		Plants: []inventory.Plant{
			{ID: 1, Name: "Fern", Quantity: 9, SupplierRef: "GreenCo"},
			{ID: 2, Name: "Rose", Quantity: 9, SupplierRef: "Leafy"},
			{ID: 3, Name: "Ivy", Quantity: 9, SupplierRef: "GreenCo"},
		},
		Suppliers: []inventory.Supplier{
			greenCo(),
			{Name: "Leafy", PhoneNumber: "2", Address: "y"},
		},
	}
	n := setup(t, st, time.July)

	upd := greenCo()
	upd.Name = "BlueCo"
	res, err := n.UpdateSupplier("GreenCo", upd)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PlantsChanged)
	assert.Len(t, n.Suppliers(), 2)

	refs := map[int]string{}
	for _, p := range n.Plants() {
		refs[p.ID] = p.SupplierRef
	}
	assert.Equal(t, map[int]string{1: "BlueCo", 2: "Leafy", 3: "BlueCo"}, refs)
	assert.Equal(t, "BlueCo", st.Plants[0].SupplierRef, "persisted")
	assert.Equal(t, "BlueCo", st.Suppliers[0].Name, "persisted")

	_, err = n.UpdateSupplier("GreenCo", upd)
	assert.True(t, inventory.IsNotFound(err))

	_, err = n.UpdateSupplier("BlueCo", inventory.Supplier{Name: "BlueCo"})
	assert.True(t, inventory.IsValidation(err))
	assert.Equal(t, "555-0101", n.Suppliers()[0].PhoneNumber)
}

func TestSupplierDeleteOrphans(t *testing.T) {
	st := &iotesting.MemStore{
		Plants: []inventory.Plant{
			{ID: 1, Name: "Fern", Quantity: 9, SupplierRef: "GreenCo"},
		},
		Suppliers: []inventory.Supplier{greenCo()},
	}
	n := setup(t, st, time.July)

	res, err := n.DeleteSupplier("GreenCo")
	require.NoError(t, err)
	assert.Empty(t, n.Suppliers())
	assert.Equal(t, "GreenCo", n.Plants()[0].SupplierRef)
	assert.Len(t, res.Warnings, 1)
	assert.Empty(t, n.Alerts())

	_, err = n.DeleteSupplier("GreenCo")
	assert.True(t, inventory.IsNotFound(err))
}

func TestDuplicateSupplierWarning(t *testing.T) {
	st := &iotesting.MemStore{Suppliers: []inventory.Supplier{greenCo()}}
	n := setup(t, st, time.July)

	dup := greenCo()
	dup.PhoneNumber = "555-9999"
	res, err := n.CreateSupplier(dup)
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 1)
	assert.Len(t, n.Suppliers(), 2)

	_, err = n.CreateSupplier(inventory.Supplier{Name: "X", Address: "y"})
	assert.True(t, inventory.IsValidation(err))
	assert.Len(t, n.Suppliers(), 2)
}

func TestFailedSave(t *testing.T) {
	st := &iotesting.MemStore{Suppliers: []inventory.Supplier{greenCo()}}
	n := setup(t, st, time.July)
	assert.True(t, n.Synced())

	st.Fail = true
	res, err := n.CreatePlant(
		inventory.Plant{ID: 1, Name: "Fern", Quantity: 0},
		nursery.SupplierChoice{Name: "GreenCo"},
	)
	require.Error(t, err)
	assert.True(t, iostore.IsPersistence(err))
	assert.Equal(t, 1, res.PlantsChanged)
	assert.False(t, n.Synced())
	assert.Len(t, n.Plants(), 1, "memory stays authoritative")
	assert.Len(t, n.Alerts(), 1)

	st.Fail = false
	require.NoError(t, n.Close())
	assert.True(t, n.Synced())
	assert.True(t, st.Closed)
	assert.Len(t, st.Plants, 1, "close flushes unsaved changes")
}

func TestLoadPartial(t *testing.T) {
	st := &iotesting.MemStore{
		Plants: []inventory.Plant{
			{ID: 1, Name: "Fern", Quantity: 2, SupplierRef: "GreenCo"},
		},
		LoadErr: iostore.StoreDecodeError("mem", "plants", 1,
			errors.New("bad record")),
	}
	n := ionursery.New(config.New(), st, clock(time.July))
	err := n.Load()
	assert.True(t, iostore.IsPersistence(err))
	assert.Len(t, n.Plants(), 1)
	assert.Equal(t, 1, countKind(n, alert.Low, "Fern"))
}

func TestThresholdFromConfig(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptAlertsLowStockThreshold(10)})
	st := &iotesting.MemStore{Plants: []inventory.Plant{
		{ID: 1, Name: "Fern", Quantity: 7, SupplierRef: "GreenCo"},
	}}
	n := ionursery.New(cfg, st, clock(time.July))
	require.NoError(t, n.Load())
	assert.Equal(t, 10, n.Threshold())
	assert.Equal(t, 1, countKind(n, alert.Low, "Fern"))
	assert.False(t, n.InSeason())
}

func TestRoundTripThroughStore(t *testing.T) {
	dir := t.TempDir()
	st, err := iostore.NewJSON(dir, "plants.json", "suppliers.json")
	require.NoError(t, err)

	n := ionursery.New(config.New(), st, clock(time.July))
	require.NoError(t, n.Load())
	_, err = n.CreateSupplier(greenCo())
	require.NoError(t, err)
	_, err = n.CreatePlant(
		inventory.Plant{ID: 1, Name: "Fern", Description: "d", Quantity: 3},
		nursery.SupplierChoice{Name: "GreenCo"},
	)
	require.NoError(t, err)
	plants, suppliers := n.Plants(), n.Suppliers()
	require.NoError(t, n.Close())

	st2, err := iostore.NewJSON(dir, "plants.json", "suppliers.json")
	require.NoError(t, err)
	n2 := ionursery.New(config.New(), st2, clock(time.July))
	require.NoError(t, n2.Load())
	assert.Equal(t, plants, n2.Plants())
	assert.Equal(t, suppliers, n2.Suppliers())
	assert.Equal(t, texts(n), texts(n2))
}
