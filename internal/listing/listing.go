package listing

import (
	"sort"

	"github.com/five82/storefront/internal/catalog"
)

// DefaultPageSize is the number of products shown per page.
const DefaultPageSize = 12

// FilterAndSort returns the products that pass f, ordered per f.SortBy.
// The input is never modified. Filtering keeps catalog order and price
// sorting is stable, so equal prices stay in catalog order.
func FilterAndSort(products []catalog.Product, f Filters) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if f.MinRating > 0 && p.Rating < f.MinRating {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// UniqueCategories returns the distinct categories of products in ascending
// lexical order.
func UniqueCategories(products []catalog.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// TotalPages returns ceil(count/size). A non-positive size falls back to
// DefaultPageSize.
func TotalPages(count, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// ClampPage bounds requested to [1, max(1, TotalPages(count, size))]. An
// empty list clamps to page 1.
func ClampPage(requested, count, size int) int {
	upper := max(1, TotalPages(count, size))
	return max(1, min(requested, upper))
}

// Page is one slice of a derived product list.
type Page struct {
	Items      []catalog.Product
	Number     int // clamped, 1-based
	TotalPages int // zero when the list is empty
	Total      int // length of the full list
}

// Paginate returns the clamped page of products.
func Paginate(products []catalog.Product, requested, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	number := ClampPage(requested, len(products), size)
	start := (number - 1) * size
	end := min(start+size, len(products))

	var items []catalog.Product
	if start < end {
		items = products[start:end]
	}
	return Page{
		Items:      items,
		Number:     number,
		TotalPages: TotalPages(len(products), size),
		Total:      len(products),
	}
}

// Pager remembers the requested page across renders and resets it to 1
// whenever the filter signature changes. The zero value starts on page 1.
type Pager struct {
	signature string
	page      int
	synced    bool
}

// Sync records f and resets the page if its signature differs from the last
// one seen. It reports whether a reset happened.
func (p *Pager) Sync(f Filters) bool {
	sig := f.Signature()
	if p.synced && sig == p.signature {
		return false
	}
	p.signature = sig
	p.synced = true
	p.page = 1
	return true
}

// Requested returns the raw requested page, before clamping.
func (p *Pager) Requested() int {
	if p.page < 1 {
		return 1
	}
	return p.page
}

// Set requests page n. Values below 1 are stored as 1.
func (p *Pager) Set(n int) {
	p.page = max(1, n)
}

// Next advances one page within count items.
func (p *Pager) Next(count, size int) {
	p.page = ClampPage(p.Requested()+1, count, size)
}

// Prev moves back one page within count items.
func (p *Pager) Prev(count, size int) {
	p.page = ClampPage(p.Requested()-1, count, size)
}

// View syncs the pager with f and returns the visible page of products.
func (p *Pager) View(products []catalog.Product, f Filters, size int) Page {
	p.Sync(f)
	return Paginate(FilterAndSort(products, f), p.Requested(), size)
}
