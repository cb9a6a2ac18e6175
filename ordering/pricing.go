// Package ordering prices free-text order summaries against the menu,
// screens them against a customer's allergy note, and holds the
// per-session carts they are built from.
package ordering

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"foodtruck/models"
)

// LineItem is one parsed entry of an order summary.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ParseSummary splits a comma-separated "<name> x<qty>" list. A missing
// quantity means one.
func ParseSummary(summary string) []LineItem {
	var items []LineItem
	for _, part := range strings.Split(summary, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, qty := part, 1
		if i := strings.LastIndex(part, " x"); i >= 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(part[i+2:])); err == nil && n > 0 {
				name = strings.TrimSpace(part[:i])
				qty = n
			}
		}
		items = append(items, LineItem{Name: name, Quantity: qty})
	}
	return items
}

// PriceSummary totals the recognised line items of a summary against the
// menu. Names with no menu match contribute zero; they are skipped, not
// rejected.
func PriceSummary(summary string, menu []models.MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range ParseSummary(summary) {
		for _, item := range menu {
			if item.Name == line.Name {
				total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
				break
			}
		}
	}
	return total
}

// IsSafe screens an order summary against the customer's allergy note.
// An empty note is always safe. Otherwise the allergens of every menu
// item whose name appears verbatim in the summary are collected, and the
// order is unsafe when any collected tag occurs in the lowercased note.
// Both containment checks are substring matches.
func IsSafe(summary, allergyNote string, menu []models.MenuItem) bool {
	if strings.TrimSpace(allergyNote) == "" {
		return true
	}
	note := strings.ToLower(allergyNote)
	for _, item := range menu {
		if item.Name == "" || !strings.Contains(summary, item.Name) {
			continue
		}
		for _, tag := range item.Allergens {
			if tag != "" && strings.Contains(note, strings.ToLower(tag)) {
				return false
			}
		}
	}
	return true
}

// MaskCard keeps only the last four digits of a card number.
func MaskCard(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
