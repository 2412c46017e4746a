// Package listing derives the visible product list from raw catalog data and
// the current filter selection.
//
// Everything here is pure: no function stores state of its own or mutates its
// input, so callers recompute on every change instead of caching.
//
//	products ──┐
//	           ├─> FilterAndSort ─> Paginate(page, 12) ─> Page
//	filters ───┘
//
// Filtering applies the category match (unless "all") and the minimum rating
// (unless 0), in that order. Sorting by price is stable.
//
// Pagination never yields page 0: an empty list still has a valid, empty
// page 1. Pager tracks the requested page and resets it to 1 when the
// category/rating/sort tuple changes, compared by Filters.Signature.
package listing
