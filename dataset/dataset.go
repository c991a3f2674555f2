// Package dataset holds the read-only price dataset behind the dashboard
// charts and dropdowns.
package dataset

import (
	"sort"

	"digikala-dashboard/models"
)

// Dataset is immutable once built and safe for concurrent readers.
type Dataset struct {
	rows       []models.ListingPrice
	categories []string
	brands     map[string][]string
}

// New indexes rows by category. Rows with an empty brand or category are dropped.
func New(rows []models.ListingPrice) *Dataset {
	d := &Dataset{brands: make(map[string][]string)}

	seen := make(map[string]map[string]bool)
	for _, r := range rows {
		if r.Brand == "" || r.Category == "" {
			continue
		}
		d.rows = append(d.rows, r)

		if seen[r.Category] == nil {
			seen[r.Category] = make(map[string]bool)
			d.categories = append(d.categories, r.Category)
		}
		if !seen[r.Category][r.Brand] {
			seen[r.Category][r.Brand] = true
			d.brands[r.Category] = append(d.brands[r.Category], r.Brand)
		}
	}

	sort.Strings(d.categories)
	for _, b := range d.brands {
		sort.Strings(b)
	}
	return d
}

// Empty returns a dataset with no rows, used when loading fails.
func Empty() *Dataset {
	return New(nil)
}

// Rows returns the dataset rows. Callers must not modify the slice.
func (d *Dataset) Rows() []models.ListingPrice {
	return d.rows
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Categories returns the distinct categories, sorted ascending.
func (d *Dataset) Categories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}

// BrandsForCategory returns the distinct brands that appear together with
// category, sorted ascending. An empty category yields an empty list.
func (d *Dataset) BrandsForCategory(category string) []string {
	if category == "" {
		return []string{}
	}
	brands := d.brands[category]
	out := make([]string, len(brands))
	copy(out, brands)
	return out
}
