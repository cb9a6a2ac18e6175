package storage

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func fieldBool(s string) bool {
	return s == "true" || s == "1"
}

func fieldInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func fieldDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Allergen tags live in one CSV column, separated by semicolons so the
// outer comma quoting stays untouched.
func joinTags(tags []string) string {
	return strings.Join(tags, ";")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(s, ";") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
