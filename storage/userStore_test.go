package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtruck/apperr"
	"foodtruck/models"
)

func newUser(email string) models.User {
	return models.User{
		Email:     email,
		Password:  "digest",
		FirstName: "Asel",
		LastName:  "Nur",
		Phone:     "555-0101",
		Role:      models.RoleCustomer,
	}
}

func TestCreateRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	store := NewUserStore(t.TempDir())
	require.NoError(t, store.Create(newUser("a@x.com")))

	err := store.Create(newUser("A@X.COM"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// first registration unaffected
	got, err := store.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Len(t, store.All(), 1)
}

func TestFindByEmailIsCaseInsensitive(t *testing.T) {
	store := NewUserStore(t.TempDir())
	require.NoError(t, store.Create(newUser("Chef@Truck.io")))

	got, err := store.FindByEmail("chef@truck.io")
	require.NoError(t, err)
	assert.Equal(t, "Chef@Truck.io", got.Email)

	_, err = store.FindByEmail("nobody@truck.io")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateRewritesMatchingUser(t *testing.T) {
	store := NewUserStore(t.TempDir())
	require.NoError(t, store.Create(newUser("a@x.com")))

	u, err := store.FindByEmail("a@x.com")
	require.NoError(t, err)
	u.Phone = "555-9999"
	require.NoError(t, store.Update(u))

	got, err := store.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "555-9999", got.Phone)

	u.Email = "missing@x.com"
	assert.ErrorIs(t, store.Update(u), apperr.ErrNotFound)
}
