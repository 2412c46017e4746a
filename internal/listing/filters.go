package listing

import (
	"strconv"
)

// SortOption selects the price ordering of the visible list.
type SortOption string

const (
	SortNone      SortOption = "none"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// RatingOptions are the minimum-rating thresholds offered to the user.
// Zero disables the rating filter.
var RatingOptions = []float64{0, 1, 2, 3, 4, 4.5}

// SortChoice pairs a SortOption with its display label.
type SortChoice struct {
	Value SortOption
	Label string
}

// SortOptions lists the sort choices in display order.
var SortOptions = []SortChoice{
	{Value: SortNone, Label: "Default"},
	{Value: SortPriceAsc, Label: "Price: Low to High"},
	{Value: SortPriceDesc, Label: "Price: High to Low"},
}

// SortLabel returns the display label for s, or the raw value when unknown.
func SortLabel(s SortOption) string {
	for _, c := range SortOptions {
		if c.Value == s {
			return c.Label
		}
	}
	return string(s)
}

// Filters is the current category/rating/sort selection.
type Filters struct {
	Category  string     `json:"category"`
	MinRating float64    `json:"minRating"`
	SortBy    SortOption `json:"sortBy"`
}

// DefaultFilters returns the reset state {all, 0, none}.
func DefaultFilters() Filters {
	return Filters{Category: CategoryAll, MinRating: 0, SortBy: SortNone}
}

// Signature identifies the filter tuple for page-reset tracking. MinRating
// uses its shortest decimal form, so 4.5 renders as "4.5" and 0 as "0".
func (f Filters) Signature() string {
	return f.Category + "-" + strconv.FormatFloat(f.MinRating, 'f', -1, 64) + "-" + string(f.SortBy)
}
