package storage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtruck/apperr"
	"foodtruck/models"
)

func burger() models.MenuItem {
	return models.MenuItem{
		Name:        "Veggie Burger",
		Description: "house patty",
		Price:       decimal.RequireFromString("7.99"),
		Category:    models.CategoryFood,
		Vegan:       true,
		Allergens:   []string{"gluten", "soy"},
		Available:   true,
	}
}

func cola() models.MenuItem {
	return models.MenuItem{
		Name:      "Coca-Cola",
		Price:     decimal.RequireFromString("2.49"),
		Category:  models.CategoryDrinks,
		Available: true,
	}
}

func TestMenuCreateAssignsMaxPlusOneID(t *testing.T) {
	store := NewMenuStore(t.TempDir())

	first, err := store.Create(burger())
	require.NoError(t, err)
	second, err := store.Create(cola())
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// deleting an earlier item leaves the sequence at max(existing)+1
	require.NoError(t, store.Delete(first.ID))
	third, err := store.Create(burger())
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestMenuRoundTripPreservesAllergens(t *testing.T) {
	store := NewMenuStore(t.TempDir())
	created, err := store.Create(burger())
	require.NoError(t, err)

	got, err := store.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"gluten", "soy"}, got.Allergens)
	assert.True(t, got.Price.Equal(created.Price), "got %s", got.Price)
	assert.Equal(t, models.CategoryFood, got.Category)
}

func TestMenuUpdateAndDelete(t *testing.T) {
	store := NewMenuStore(t.TempDir())
	created, err := store.Create(cola())
	require.NoError(t, err)

	created.Price = decimal.RequireFromString("2.99")
	created.Available = false
	require.NoError(t, store.Update(created))

	got, err := store.FindByID(created.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("2.99")))
	assert.False(t, got.Available)
	assert.Empty(t, store.Available())

	require.NoError(t, store.Delete(created.ID))
	_, err = store.FindByID(created.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, store.Delete(created.ID), apperr.ErrNotFound)
	assert.ErrorIs(t, store.Update(created), apperr.ErrNotFound)
}

func TestMenuFindByNameIsCaseInsensitive(t *testing.T) {
	store := NewMenuStore(t.TempDir())
	_, err := store.Create(burger())
	require.NoError(t, err)

	got, err := store.FindByName("veggie burger")
	require.NoError(t, err)
	assert.Equal(t, "Veggie Burger", got.Name)

	_, err = store.FindByName("Mystery Dish")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
