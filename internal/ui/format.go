package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/five82/storefront/internal/listing"
)

// DefaultCurrency prefixes every rendered price unless configured otherwise.
const DefaultCurrency = "₹"

const (
	maxStars     = 5
	maxCartBadge = 99

	// Compare-at markups shown next to the real price.
	cardMarkup   = "1.15"
	detailMarkup = "1.2"
	cardDiscount = "Save 15%"
)

const (
	starFull  = "★"
	starHalf  = "⯪"
	starEmpty = "☆"
)

// Stars renders rating as five glyphs: floor(rating) full stars, one half
// star when the fractional part is at least .5, and empty stars after.
func Stars(rating float64) string {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	full := min(int(math.Floor(rating)), maxStars)
	half := 0
	if full < maxStars && rating-math.Floor(rating) >= 0.5 {
		half = 1
	}
	return strings.Repeat(starFull, full) +
		strings.Repeat(starHalf, half) +
		strings.Repeat(starEmpty, maxStars-full-half)
}

// Price converts a catalog price into an exact decimal.
func Price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// FormatPrice renders amount with two decimals behind the currency symbol.
func FormatPrice(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}

// CompareAt returns the inflated "was" price for v using markup.
func CompareAt(v float64, markup string) decimal.Decimal {
	return Price(v).Mul(decimal.RequireFromString(markup))
}

// Savings returns how much cheaper v is than its compare-at price.
func Savings(v float64, markup string) decimal.Decimal {
	return CompareAt(v, markup).Sub(Price(v))
}

// CartBadge returns the header badge for a cart holding n items in total:
// empty for zero and "99+" above 99.
func CartBadge(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > maxCartBadge:
		return strconv.Itoa(maxCartBadge) + "+"
	default:
		return strconv.Itoa(n)
	}
}

// RatingLabel names a minimum-rating threshold.
func RatingLabel(r float64) string {
	if r <= 0 {
		return "All ratings"
	}
	return strconv.FormatFloat(r, 'f', -1, 64) + "+ " + starFull
}

// CategoryLabel names a category filter value.
func CategoryLabel(c string) string {
	if c == "" || c == listing.CategoryAll {
		return "All categories"
	}
	return c
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
