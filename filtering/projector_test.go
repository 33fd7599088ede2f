package filtering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarsakr/SakrStore/filtering"
	"github.com/omarsakr/SakrStore/models"
)

func floatPtr(f float64) *float64 { return &f }

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Wireless Mouse", Description: "Ergonomic mouse", Price: 10, Category: "Accessories"},
		{ID: "2", Name: "Keyboard", Description: "Mechanical keyboard", Price: 30, Category: "Accessories", IsNew: true},
		{ID: "3", Name: "USB Hub", Description: "4-port hub", Price: 20, Category: "Accessories", Discount: true, DiscountedPrice: 15},
		{ID: "4", Name: "Desk Lamp", Description: "LED lamp", Price: 25, Category: "Home"},
	}
}

func keys(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Key())
	}
	return out
}

func TestProjectNoFilters(t *testing.T) {
	got := filtering.Project(catalogFixture(), "", "", "default", nil)
	assert.Equal(t, []string{"1", "2", "3", "4"}, keys(got))
}

func TestProjectSearchMatchesNameOrDescription(t *testing.T) {
	got := filtering.Project(catalogFixture(), "  MOUSE ", "All", "", nil)
	assert.Equal(t, []string{"1"}, keys(got))

	got = filtering.Project(catalogFixture(), "led", "All", "", nil)
	assert.Equal(t, []string{"4"}, keys(got))
}

func TestProjectCategories(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{"All", []string{"1", "2", "3", "4"}},
		{"Featured", []string{"2"}},
		{"Discounts", []string{"3"}},
		{"accessories", []string{"1", "2", "3"}},
		{"Home", []string{"4"}},
		{"Nonexistent", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := filtering.Project(catalogFixture(), "", tt.category, "", nil)
			assert.Equal(t, tt.want, keys(got))
		})
	}
}

func TestProjectPriceCeilingUsesListPrice(t *testing.T) {
	// The USB Hub sells at 15 but lists at 20; a ceiling of 18 excludes it.
	got := filtering.Project(catalogFixture(), "", "All", "", floatPtr(18))
	assert.Equal(t, []string{"1"}, keys(got))
}

func TestProjectSortByPrice(t *testing.T) {
	got := filtering.Project(catalogFixture(), "", "All", filtering.SortPriceAsc, nil)
	assert.Equal(t, []string{"1", "3", "4", "2"}, keys(got))

	got = filtering.Project(catalogFixture(), "", "All", filtering.SortPriceDesc, nil)
	assert.Equal(t, []string{"2", "4", "3", "1"}, keys(got))
}

func TestProjectUnknownSortPreservesOrder(t *testing.T) {
	got := filtering.Project(catalogFixture(), "", "All", "alphabetical", nil)
	assert.Equal(t, []string{"1", "2", "3", "4"}, keys(got))
}

func TestProjectEmptyResultIsValid(t *testing.T) {
	got := filtering.Project(catalogFixture(), "nothing matches", "All", "", nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMaxListPrice(t *testing.T) {
	assert.Equal(t, 30.0, filtering.MaxListPrice(catalogFixture(), "All"))
	assert.Equal(t, 25.0, filtering.MaxListPrice(catalogFixture(), "Home"))
	assert.Equal(t, 20.0, filtering.MaxListPrice(catalogFixture(), "Discounts"))
	assert.Equal(t, 0.0, filtering.MaxListPrice(catalogFixture(), "Nonexistent"))
}

func TestMaxListPriceRoundsUp(t *testing.T) {
	products := []models.Product{{ID: "1", Price: 19.5}}
	assert.Equal(t, 20.0, filtering.MaxListPrice(products, "All"))
}
