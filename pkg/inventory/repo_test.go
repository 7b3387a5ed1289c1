package inventory_test

import (
	"testing"

	"github.com/root31/nursery/pkg/errcode"
	"github.com/root31/nursery/pkg/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantRepository(t *testing.T) {
	repo := inventory.NewPlantRepository()
	require.NoError(t, repo.Create(fern()))

	orchid := inventory.Plant{
		ID: 2, Name: "Orchid", Quantity: 8, SupplierRef: inventory.NoSupplier,
	}
	require.NoError(t, repo.Create(orchid))

	t.Run("duplicate id rejected", func(t *testing.T) {
		dup := orchid
		dup.Name = "Other"
		err := repo.Create(dup)
		assert.True(t, inventory.HasCode(err, errcode.PlantDuplicateIDError))
		assert.Equal(t, 2, repo.Len())
	})

	t.Run("get", func(t *testing.T) {
		p, err := repo.Get(2)
		require.NoError(t, err)
		assert.Equal(t, "Orchid", p.Name)

		_, err = repo.Get(99)
		assert.True(t, inventory.IsNotFound(err))
	})

	t.Run("update returns before and after", func(t *testing.T) {
		before, after, err := repo.Update(1, inventory.FieldQuantity, "10")
		require.NoError(t, err)
		assert.Equal(t, 3, before.Quantity)
		assert.Equal(t, 10, after.Quantity)

		p, err := repo.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 10, p.Quantity)
	})

	t.Run("invalid update changes nothing", func(t *testing.T) {
		_, _, err := repo.Update(1, inventory.FieldQuantity, "-1")
		assert.True(t, inventory.IsValidation(err))
		p, err := repo.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 10, p.Quantity)

		_, _, err = repo.Update(77, inventory.FieldName, "x")
		assert.True(t, inventory.IsNotFound(err))
	})

	t.Run("id update is not re-checked", func(t *testing.T) {
		r := inventory.NewPlantRepository()
		r.Load(repo.List())
		_, _, err := r.Update(2, inventory.FieldID, "1")
		require.NoError(t, err)
		p, err := r.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "Fern", p.Name, "first match wins")
		assert.Equal(t, 2, r.Len())
	})

	t.Run("list returns copies", func(t *testing.T) {
		ps := repo.List()
		ps[0].Name = "Changed"
		p, err := repo.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "Fern", p.Name)
	})

	t.Run("helpers", func(t *testing.T) {
		assert.Len(t, repo.ByName("Orchid"), 1)
		assert.False(t, repo.AnyGreenhouse())
		assert.Equal(t, []int{1}, repo.IDsBySupplier("GreenCo"))
		assert.Equal(t, 18, repo.TotalQuantity())

		n := repo.ReassignSupplier("GreenCo", "Leafy")
		assert.Equal(t, 1, n)
		assert.Empty(t, repo.IDsBySupplier("GreenCo"))
	})

	t.Run("delete", func(t *testing.T) {
		p, err := repo.Delete(1)
		require.NoError(t, err)
		assert.Equal(t, "Fern", p.Name)
		assert.Equal(t, 1, repo.Len())

		_, err = repo.Delete(1)
		assert.True(t, inventory.IsNotFound(err))
	})
}

func TestSupplierRepository(t *testing.T) {
	repo := inventory.NewSupplierRepository()
	green := inventory.Supplier{
		Name: "GreenCo", PhoneNumber: "555-0101", Address: "1 Leaf Rd",
		PlantsServed: []int{4},
	}
	require.NoError(t, repo.Create(green))

	t.Run("plants served are not stored", func(t *testing.T) {
		s, err := repo.Get("GreenCo")
		require.NoError(t, err)
		assert.Empty(t, s.PlantsServed)
	})

	t.Run("invalid create", func(t *testing.T) {
		err := repo.Create(inventory.Supplier{Name: "X"})
		assert.True(t, inventory.IsValidation(err))
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("duplicate names allowed", func(t *testing.T) {
		dup := green
		dup.PhoneNumber = "555-9999"
		require.NoError(t, repo.Create(dup))
		assert.Equal(t, 2, repo.Count("GreenCo"))
		s, err := repo.Get("GreenCo")
		require.NoError(t, err)
		assert.Equal(t, "555-0101", s.PhoneNumber, "first match wins")
		_, err = repo.Delete("GreenCo")
		require.NoError(t, err)
		s, err = repo.Get("GreenCo")
		require.NoError(t, err)
		assert.Equal(t, "555-9999", s.PhoneNumber)
	})

	t.Run("update", func(t *testing.T) {
		upd := inventory.Supplier{
			Name: " Leafy ", PhoneNumber: "555-0202", Address: "2 Root St",
		}
		old, err := repo.Update("GreenCo", upd)
		require.NoError(t, err)
		assert.Equal(t, "GreenCo", old.Name)
		assert.True(t, repo.Exists("Leafy"))
		assert.False(t, repo.Exists("GreenCo"))
		assert.Equal(t, []string{"Leafy"}, repo.Names())

		_, err = repo.Update("Leafy", inventory.Supplier{Name: "Leafy"})
		assert.True(t, inventory.IsValidation(err))
		s, err := repo.Get("Leafy")
		require.NoError(t, err)
		assert.Equal(t, "555-0202", s.PhoneNumber)

		_, err = repo.Update("Nope", upd)
		assert.True(t, inventory.IsNotFound(err))
	})
}
