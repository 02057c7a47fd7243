// internal/catalog/filter.go
package catalog

import (
	"sort"
	"strings"
)

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
)

// ParseSortOption normalizes a sort value, falling back to newest-first.
func ParseSortOption(s string) SortOption {
	switch SortOption(strings.ToLower(strings.TrimSpace(s))) {
	case SortOldest:
		return SortOldest
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNewest
	}
}

// PriceRange is one of five price bands used for filtering. Bands are
// inclusive at their upper edge: a product priced exactly 100.00 falls in
// "0-100", not "100-200".
type PriceRange string

const (
	PriceAll      PriceRange = "all"
	PriceTo100    PriceRange = "0-100"
	Price100To200 PriceRange = "100-200"
	Price200To500 PriceRange = "200-500"
	PriceOver500  PriceRange = "500+"
)

// PriceRanges lists the selectable bands in display order, "all" first.
var PriceRanges = []PriceRange{PriceAll, PriceTo100, Price100To200, Price200To500, PriceOver500}

// ParsePriceRange normalizes a band value; unknown values are rejected.
func ParsePriceRange(s string) (PriceRange, bool) {
	switch PriceRange(strings.ToLower(strings.TrimSpace(s))) {
	case PriceAll:
		return PriceAll, true
	case PriceTo100:
		return PriceTo100, true
	case Price100To200:
		return Price100To200, true
	case Price200To500:
		return Price200To500, true
	case PriceOver500:
		return PriceOver500, true
	}
	return "", false
}

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Criteria describes one browse request. The zero value is not valid; start
// from DefaultCriteria, which is also the "clear filters" reset state.
type Criteria struct {
	Search      string
	Category    string
	PriceRanges map[PriceRange]bool
	SortBy      SortOption
}

// DefaultCriteria returns the reset state: empty search, all categories,
// {all} price ranges, newest first.
func DefaultCriteria() Criteria {
	return Criteria{
		Search:      "",
		Category:    CategoryAll,
		PriceRanges: map[PriceRange]bool{PriceAll: true},
		SortBy:      SortNewest,
	}
}

// TogglePriceRange flips one band selection, keeping the set consistent:
// choosing "all" clears every other band, choosing a specific band removes
// "all", and removing the last selected band reverts to "all".
func (c *Criteria) TogglePriceRange(r PriceRange) {
	if c.PriceRanges == nil {
		c.PriceRanges = map[PriceRange]bool{PriceAll: true}
	}

	if r == PriceAll {
		c.PriceRanges = map[PriceRange]bool{PriceAll: true}
		return
	}

	delete(c.PriceRanges, PriceAll)

	if c.PriceRanges[r] {
		delete(c.PriceRanges, r)
	} else {
		c.PriceRanges[r] = true
	}

	if len(c.PriceRanges) == 0 {
		c.PriceRanges[PriceAll] = true
	}
}

// matchesPrice reports whether a price falls in any selected band. "all"
// short-circuits to true.
func (c Criteria) matchesPrice(price float64) bool {
	if len(c.PriceRanges) == 0 || c.PriceRanges[PriceAll] {
		return true
	}

	if c.PriceRanges[PriceTo100] && price <= 100 {
		return true
	}
	if c.PriceRanges[Price100To200] && price > 100 && price <= 200 {
		return true
	}
	if c.PriceRanges[Price200To500] && price > 200 && price <= 500 {
		return true
	}
	if c.PriceRanges[PriceOver500] && price > 500 {
		return true
	}

	return false
}

// FilterAndSort narrows and orders a product collection for display. Filters
// compose with AND (search, category, price-band membership); the sort runs
// last as a single stable pass, so equal keys keep their input order. The
// input slice is never mutated.
func FilterAndSort(products []DisplayProduct, c Criteria) []DisplayProduct {
	filtered := make([]DisplayProduct, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(c.Search))
	category := strings.TrimSpace(c.Category)

	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.SellerName), query) {
			continue
		}
		if category != "" && category != CategoryAll && string(p.Category) != category {
			continue
		}
		if !c.matchesPrice(p.Price) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch c.SortBy {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	default: // newest
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}
