package filtering

import (
	"math"
	"sort"
	"strings"

	"github.com/omarsakr/SakrStore/models"
)

// Sort orders recognized by Project. Anything else, including "default",
// preserves catalog order.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Pseudo-categories layered over the real category field.
const (
	CategoryAll       = "All"
	CategoryFeatured  = "Featured"  // products flagged new
	CategoryDiscounts = "Discounts" // products with the discount flag
)

// Project filters and orders the catalog for display: search term against
// name or description, category (real or pseudo), optional price ceiling,
// then sort. It is a pure function of its inputs; an empty result is a
// valid outcome, rendered by the caller as an empty state.
//
// The price ceiling filters on the list price even for discounted products;
// that is the defined behavior, not an oversight.
func Project(products []models.Product, searchTerm, category, sortOrder string, priceCeiling *float64) []models.Product {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if !matchesCategory(p, category) {
			continue
		}
		if priceCeiling != nil && p.ListPrice() > *priceCeiling {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortOrder {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ListPrice() < filtered[j].ListPrice()
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ListPrice() > filtered[j].ListPrice()
		})
	}

	return filtered
}

// MaxListPrice returns the highest list price among the products matching
// the category filter, rounded up. Drives the price slider range.
func MaxListPrice(products []models.Product, category string) float64 {
	var max float64
	for _, p := range products {
		if !matchesCategory(p, category) {
			continue
		}
		if p.ListPrice() > max {
			max = p.ListPrice()
		}
	}
	return math.Ceil(max)
}

func matchesSearch(p models.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func matchesCategory(p models.Product, category string) bool {
	switch category {
	case "", CategoryAll:
		return true
	case CategoryFeatured:
		return p.IsNew
	case CategoryDiscounts:
		return p.Discount
	default:
		return p.Category != "" && strings.EqualFold(p.Category, category)
	}
}
