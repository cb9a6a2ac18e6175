package ordering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"foodtruck/models"
)

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID: 1, Name: "Veggie Burger", Price: decimal.RequireFromString("7.99"),
			Category: models.CategoryFood, Allergens: []string{"gluten", "soy"}, Available: true,
		},
		{
			ID: 2, Name: "Coca-Cola", Price: decimal.RequireFromString("2.49"),
			Category: models.CategoryDrinks, Available: true,
		},
		{
			ID: 3, Name: "Peanut Brownie", Price: decimal.RequireFromString("3.25"),
			Category: models.CategoryDessert, Allergens: []string{"peanuts", "gluten"}, Available: true,
		},
	}
}

func TestParseSummary(t *testing.T) {
	items := ParseSummary("Veggie Burger x2, Coca-Cola x1, Fries")
	assert.Equal(t, []LineItem{
		{Name: "Veggie Burger", Quantity: 2},
		{Name: "Coca-Cola", Quantity: 1},
		{Name: "Fries", Quantity: 1},
	}, items)

	assert.Empty(t, ParseSummary(""))
	assert.Empty(t, ParseSummary(" , , "))
}

func TestPriceSummary(t *testing.T) {
	total := PriceSummary("Veggie Burger x2, Coca-Cola x1", testMenu())
	assert.True(t, total.Equal(decimal.RequireFromString("18.47")), "got %s", total)
}

func TestPriceSummaryDefaultsQuantityToOne(t *testing.T) {
	total := PriceSummary("Coca-Cola", testMenu())
	assert.True(t, total.Equal(decimal.RequireFromString("2.49")), "got %s", total)
}

func TestPriceSummaryIgnoresUnknownItems(t *testing.T) {
	total := PriceSummary("Mystery Dish x3, Coca-Cola x1", testMenu())
	assert.True(t, total.Equal(decimal.RequireFromString("2.49")), "got %s", total)

	assert.True(t, PriceSummary("Mystery Dish x3", testMenu()).IsZero())
}

func TestIsSafeEmptyNoteAlwaysSafe(t *testing.T) {
	assert.True(t, IsSafe("Peanut Brownie x4", "", testMenu()))
	assert.True(t, IsSafe("anything at all", "   ", testMenu()))
}

func TestIsSafeFlagsMatchingAllergen(t *testing.T) {
	menu := testMenu()
	assert.False(t, IsSafe("Veggie Burger x1", "Allergic to SOY", menu))
	assert.False(t, IsSafe("Peanut Brownie x1", "peanuts and shellfish", menu))
	assert.True(t, IsSafe("Coca-Cola x2", "peanuts", menu))
}

func TestIsSafeMatchesItemNamesCaseSensitively(t *testing.T) {
	// "veggie burger" does not contain the menu spelling "Veggie Burger",
	// so its allergens are never collected. Documented behaviour.
	assert.True(t, IsSafe("veggie burger x1", "soy", testMenu()))
}

func TestMaskCard(t *testing.T) {
	assert.Equal(t, "4242", MaskCard("4242 4242 4242 4242"))
	assert.Equal(t, "1111", MaskCard("4111-1111-1111-1111"))
	assert.Equal(t, "123", MaskCard("123"))
	assert.Equal(t, "", MaskCard(""))
}
