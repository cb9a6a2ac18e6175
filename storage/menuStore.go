package storage

import (
	"path/filepath"
	"strconv"
	"strings"

	"foodtruck/apperr"
	"foodtruck/models"
)

var menuHeader = []string{"id", "name", "description", "price", "category", "vegan", "image", "allergens", "available"}

type MenuStore struct {
	table *Table[models.MenuItem]
}

func NewMenuStore(dir string) *MenuStore {
	return &MenuStore{table: NewTable(filepath.Join(dir, "menu.csv"), menuHeader, encodeMenuItem, decodeMenuItem)}
}

func encodeMenuItem(m models.MenuItem) []string {
	return []string{
		strconv.Itoa(m.ID), m.Name, m.Description, m.Price.String(), string(m.Category),
		strconv.FormatBool(m.Vegan), m.Image, joinTags(m.Allergens), strconv.FormatBool(m.Available),
	}
}

func decodeMenuItem(row Row) models.MenuItem {
	return models.MenuItem{
		ID:          fieldInt(row["id"]),
		Name:        row["name"],
		Description: row["description"],
		Price:       fieldDecimal(row["price"]),
		Category:    models.Category(row["category"]),
		Vegan:       fieldBool(row["vegan"]),
		Image:       row["image"],
		Allergens:   splitTags(row["allergens"]),
		Available:   fieldBool(row["available"]),
	}
}

func (s *MenuStore) All() []models.MenuItem {
	return s.table.Load()
}

func (s *MenuStore) Available() []models.MenuItem {
	var items []models.MenuItem
	for _, item := range s.table.Load() {
		if item.Available {
			items = append(items, item)
		}
	}
	return items
}

func (s *MenuStore) FindByID(id int) (models.MenuItem, error) {
	for _, item := range s.table.Load() {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, apperr.NotFoundf("menu item %d", id)
}

func (s *MenuStore) FindByName(name string) (models.MenuItem, error) {
	for _, item := range s.table.Load() {
		if strings.EqualFold(item.Name, name) {
			return item, nil
		}
	}
	return models.MenuItem{}, apperr.NotFoundf("menu item %q", name)
}

// Create assigns the next free ID under the table lock.
func (s *MenuStore) Create(item models.MenuItem) (models.MenuItem, error) {
	var created models.MenuItem
	err := s.table.Mutate(func(recs []models.MenuItem) ([]models.MenuItem, error) {
		next := 1
		for _, have := range recs {
			if have.ID >= next {
				next = have.ID + 1
			}
		}
		item.ID = next
		created = item
		return append(recs, item), nil
	})
	return created, err
}

func (s *MenuStore) Update(item models.MenuItem) error {
	return s.table.Mutate(func(recs []models.MenuItem) ([]models.MenuItem, error) {
		for i, have := range recs {
			if have.ID == item.ID {
				recs[i] = item
				return recs, nil
			}
		}
		return nil, apperr.NotFoundf("menu item %d", item.ID)
	})
}

func (s *MenuStore) Delete(id int) error {
	return s.table.Mutate(func(recs []models.MenuItem) ([]models.MenuItem, error) {
		for i, have := range recs {
			if have.ID == id {
				return append(recs[:i], recs[i+1:]...), nil
			}
		}
		return nil, apperr.NotFoundf("menu item %d", id)
	})
}
