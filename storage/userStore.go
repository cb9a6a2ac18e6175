package storage

import (
	"path/filepath"
	"strconv"
	"strings"

	"foodtruck/apperr"
	"foodtruck/models"
)

var userHeader = []string{"email", "password_digest", "first", "last", "phone", "address", "dob", "sex", "role", "verified"}

type UserStore struct {
	table *Table[models.User]
}

func NewUserStore(dir string) *UserStore {
	return &UserStore{table: NewTable(filepath.Join(dir, "users.csv"), userHeader, encodeUser, decodeUser)}
}

func encodeUser(u models.User) []string {
	return []string{
		u.Email, u.Password, u.FirstName, u.LastName, u.Phone,
		u.Address, u.DateOfBirth, u.Sex, string(u.Role), strconv.FormatBool(u.Verified),
	}
}

func decodeUser(row Row) models.User {
	return models.User{
		Email:       row["email"],
		Password:    row["password_digest"],
		FirstName:   row["first"],
		LastName:    row["last"],
		Phone:       row["phone"],
		Address:     row["address"],
		DateOfBirth: row["dob"],
		Sex:         row["sex"],
		Role:        models.Role(row["role"]),
		Verified:    fieldBool(row["verified"]),
	}
}

func (s *UserStore) All() []models.User {
	return s.table.Load()
}

func (s *UserStore) FindByEmail(email string) (models.User, error) {
	for _, u := range s.table.Load() {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, apperr.NotFoundf("user %s", email)
}

// Create rejects a second registration for the same email regardless of
// case. The duplicate check and the append share the table lock.
func (s *UserStore) Create(u models.User) error {
	return s.table.AppendIf(u, func(existing []models.User) error {
		for _, have := range existing {
			if strings.EqualFold(have.Email, u.Email) {
				return apperr.Conflictf("email %s is already registered", u.Email)
			}
		}
		return nil
	})
}

// Update replaces the stored record matching u.Email. Users are never
// removed, only rewritten.
func (s *UserStore) Update(u models.User) error {
	return s.table.Mutate(func(recs []models.User) ([]models.User, error) {
		for i, have := range recs {
			if strings.EqualFold(have.Email, u.Email) {
				recs[i] = u
				return recs, nil
			}
		}
		return nil, apperr.NotFoundf("user %s", u.Email)
	})
}
