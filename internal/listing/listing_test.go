package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/storefront/internal/catalog"
)

func twoProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Price: 10, Category: "A", Rating: 4},
		{ID: 2, Price: 5, Category: "B", Rating: 2},
	}
}

func ids(items []catalog.Product) []int {
	out := make([]int, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func mixedCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Price: 20, Category: "Books", Rating: 4.6},
		{ID: 2, Price: 5, Category: "Toys", Rating: 3.9},
		{ID: 3, Price: 20, Category: "Books", Rating: 2},
		{ID: 4, Price: 5, Category: "Books", Rating: 4.5},
		{ID: 5, Price: 12.5, Category: "Garden", Rating: 0},
		{ID: 6, Price: 20, Category: "Toys", Rating: 5},
	}
}

func TestFilterAndSort_CategoryScenario(t *testing.T) {
	f := DefaultFilters()
	f.Category = "A"
	assert.Equal(t, []int{1}, ids(FilterAndSort(twoProducts(), f)))
}

func TestFilterAndSort_RatingScenario(t *testing.T) {
	f := DefaultFilters()
	f.MinRating = 3
	assert.Equal(t, []int{1}, ids(FilterAndSort(twoProducts(), f)))
}

func TestFilterAndSort_DefaultKeepsCatalogOrder(t *testing.T) {
	got := FilterAndSort(mixedCatalog(), DefaultFilters())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(got))
}

func TestFilterAndSort_UnknownCategoryMatchesNothing(t *testing.T) {
	f := DefaultFilters()
	f.Category = "Nope"
	got := FilterAndSort(mixedCatalog(), f)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilterAndSort_RatingBoundaryIsInclusive(t *testing.T) {
	f := DefaultFilters()
	f.MinRating = 4.5
	assert.Equal(t, []int{1, 4, 6}, ids(FilterAndSort(mixedCatalog(), f)))
}

func TestFilterAndSort_StableSorts(t *testing.T) {
	f := DefaultFilters()

	f.SortBy = SortPriceAsc
	assert.Equal(t, []int{2, 4, 5, 1, 3, 6}, ids(FilterAndSort(mixedCatalog(), f)))

	f.SortBy = SortPriceDesc
	assert.Equal(t, []int{1, 3, 6, 5, 2, 4}, ids(FilterAndSort(mixedCatalog(), f)))
}

func TestFilterAndSort_CombinedFilters(t *testing.T) {
	f := Filters{Category: "Books", MinRating: 3, SortBy: SortPriceAsc}
	assert.Equal(t, []int{4, 1}, ids(FilterAndSort(mixedCatalog(), f)))
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	in := mixedCatalog()
	f := DefaultFilters()
	f.SortBy = SortPriceDesc
	_ = FilterAndSort(in, f)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(in))
}

func TestFilterAndSort_PredicatesHoldForAllFilterStates(t *testing.T) {
	products := mixedCatalog()
	categories := append([]string{CategoryAll, "Missing"}, UniqueCategories(products)...)
	for _, cat := range categories {
		for _, rating := range RatingOptions {
			for _, sortBy := range SortOptions {
				f := Filters{Category: cat, MinRating: rating, SortBy: sortBy.Value}
				got := FilterAndSort(products, f)

				included := make(map[int]bool, len(got))
				for _, p := range got {
					included[p.ID] = true
				}
				for _, p := range products {
					want := (cat == CategoryAll || p.Category == cat) && (rating == 0 || p.Rating >= rating)
					assert.Equal(t, want, included[p.ID], "filters=%+v product=%d", f, p.ID)
				}
			}
		}
	}
}

func TestUniqueCategories(t *testing.T) {
	got := UniqueCategories(mixedCatalog())
	assert.Equal(t, []string{"Books", "Garden", "Toys"}, got)

	assert.Empty(t, UniqueCategories(nil))

	// Idempotent when fed back through as products.
	again := make([]catalog.Product, 0, len(got))
	for _, c := range got {
		again = append(again, catalog.Product{Category: c})
	}
	assert.Equal(t, got, UniqueCategories(again))
}

func TestTotalPagesAndClamp(t *testing.T) {
	tests := []struct {
		requested, count, size int
		wantTotal, wantPage    int
	}{
		{1, 0, 12, 0, 1},
		{5, 0, 12, 0, 1},
		{1, 12, 12, 1, 1},
		{2, 13, 12, 2, 2},
		{9, 25, 12, 3, 3},
		{0, 25, 12, 3, 1},
		{-3, 25, 12, 3, 1},
		{2, 30, 0, 3, 2},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("req%d_count%d_size%d", tt.requested, tt.count, tt.size)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.wantTotal, TotalPages(tt.count, tt.size))
			assert.Equal(t, tt.wantPage, ClampPage(tt.requested, tt.count, tt.size))
		})
	}
}

func catalogOf(n int) []catalog.Product {
	out := make([]catalog.Product, n)
	for i := range out {
		out[i] = catalog.Product{ID: i + 1, Category: "A", Price: float64(i)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	products := catalogOf(30)

	page := Paginate(products, 3, DefaultPageSize)
	require.Equal(t, 3, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 30, page.Total)
	assert.Equal(t, []int{25, 26, 27, 28, 29, 30}, ids(page.Items))

	page = Paginate(products, 99, DefaultPageSize)
	assert.Equal(t, 3, page.Number)

	empty := Paginate(nil, 4, DefaultPageSize)
	assert.Equal(t, 1, empty.Number)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Items)
}

func TestPager_ResetsOnSignatureChange(t *testing.T) {
	products := catalogOf(30)
	var p Pager
	f := DefaultFilters()

	assert.True(t, p.Sync(f))
	p.Next(len(products), DefaultPageSize)
	p.Next(len(products), DefaultPageSize)
	assert.Equal(t, 3, p.Requested())

	// Same signature keeps the page.
	assert.False(t, p.Sync(f))
	assert.Equal(t, 3, p.Requested())

	f.SortBy = SortPriceDesc
	assert.True(t, p.Sync(f))
	assert.Equal(t, 1, p.Requested())

	p.Prev(len(products), DefaultPageSize)
	assert.Equal(t, 1, p.Requested())
}

func TestPager_ViewClampsAfterFiltering(t *testing.T) {
	products := catalogOf(30)
	var p Pager
	f := DefaultFilters()
	p.Sync(f)
	p.Set(3)

	page := p.View(products, f, DefaultPageSize)
	assert.Equal(t, 3, page.Number)

	f.Category = "B"
	page = p.View(products, f, DefaultPageSize)
	assert.Equal(t, 1, page.Number)
	assert.Empty(t, page.Items)
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "all-0-none", DefaultFilters().Signature())
	assert.Equal(t, "Books-4.5-price-asc", Filters{Category: "Books", MinRating: 4.5, SortBy: SortPriceAsc}.Signature())
}

func TestSortLabel(t *testing.T) {
	assert.Equal(t, "Price: High to Low", SortLabel(SortPriceDesc))
	assert.Equal(t, "weird", SortLabel(SortOption("weird")))
}
