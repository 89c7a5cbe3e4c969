// Package projection derives the visible subset of a record list from a
// categorical filter and a free-text query.
package projection

import (
	"strings"

	"github.com/vogue360/studio/internal/model"
)

// All is the filter value that matches every record.
const All = "all"

// Criteria selects records by categorical field and search text.
type Criteria struct {
	Filter string
	Query  string
}

// Normalize returns c with an empty filter turned into All and the query
// trimmed.
func (c Criteria) Normalize() Criteria {
	if c.Filter == "" {
		c.Filter = All
	}
	c.Query = strings.TrimSpace(c.Query)
	return c
}

// Project returns the records of list matching c, in list order. category
// extracts the filtered field and fields the searchable text. The result is
// never nil.
func Project[R any](list []R, c Criteria, category func(R) string, fields func(R) []string) []R {
	c = c.Normalize()
	query := strings.ToLower(c.Query)

	out := make([]R, 0, len(list))
	for _, r := range list {
		if c.Filter != All && category(r) != c.Filter {
			continue
		}
		if query != "" && !containsAny(fields(r), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsAny(fields []string, query string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// Bookings filters by status and searches name, email and phone.
func Bookings(list []model.Booking, c Criteria) []model.Booking {
	return Project(list, c,
		func(b model.Booking) string { return string(b.Status) },
		func(b model.Booking) []string { return []string{b.Name, b.Email, b.Phone} },
	)
}

// Catalog filters by category and searches the item name.
func Catalog(list []model.CatalogItem, c Criteria) []model.CatalogItem {
	return Project(list, c,
		func(i model.CatalogItem) string { return string(i.Category) },
		func(i model.CatalogItem) []string { return []string{i.Name} },
	)
}
