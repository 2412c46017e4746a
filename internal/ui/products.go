package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/listing"
	"github.com/five82/storefront/internal/state"
)

// Column widths for the product list.
const (
	nameWidth     = 32
	categoryWidth = 14
	priceWidth    = 12
)

// handleProductsKey processes keyboard input for the product list.
func (m *Model) handleProductsKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.productRow > 0 {
			m.productRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.productRow < len(m.page.Items)-1 {
			m.productRow++
		}
	case key.Matches(msg, m.keys.NextPage):
		m.pager.Set(m.page.Number)
		m.pager.Next(m.page.Total, m.pageSize)
		m.productRow = 0
		m.refreshSnapshot()
	case key.Matches(msg, m.keys.PrevPage):
		m.pager.Set(m.page.Number)
		m.pager.Prev(m.page.Total, m.pageSize)
		m.productRow = 0
		m.refreshSnapshot()
	case key.Matches(msg, m.keys.CycleCategory):
		m.store.SetCategory(nextCategory(m.snapshot))
		m.refreshSnapshot()
	case key.Matches(msg, m.keys.CycleRating):
		m.store.SetMinRating(nextRating(m.snapshot.Filters.MinRating))
		m.refreshSnapshot()
	case key.Matches(msg, m.keys.CycleSort):
		m.store.SetSortBy(nextSort(m.snapshot.Filters.SortBy))
		m.refreshSnapshot()
	case key.Matches(msg, m.keys.ResetFilters):
		m.store.ResetFilters()
		m.refreshSnapshot()
		m.setStatus("Filters reset")
	}

	p, ok := m.selectedProduct()
	if !ok {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Open):
		m.openDetail(p.ID)
	case key.Matches(msg, m.keys.AddToCart):
		m.addToCart(p)
	case key.Matches(msg, m.keys.ToggleFavorite):
		m.toggleFavorite(p)
	}
}

// selectedProduct returns the product under the cursor on the current page.
func (m Model) selectedProduct() (catalog.Product, bool) {
	if m.productRow < 0 || m.productRow >= len(m.page.Items) {
		return catalog.Product{}, false
	}
	return m.page.Items[m.productRow], true
}

func (m *Model) addToCart(p catalog.Product) {
	err := m.store.AddToCart(p)
	m.report("cart", err, "Added "+p.Name+" to cart")
}

func (m *Model) toggleFavorite(p catalog.Product) {
	wasFavorite := m.snapshot.IsFavorite(p.ID)
	err := m.store.ToggleFavorite(p.ID)
	msg := "Added " + p.Name + " to favorites"
	if wasFavorite {
		msg = "Removed " + p.Name + " from favorites"
	}
	m.report("favorites", err, msg)
}

// nextCategory cycles all -> each known category -> all.
func nextCategory(s state.Snapshot) string {
	options := append([]string{listing.CategoryAll}, s.Categories()...)
	i := slices.Index(options, s.Filters.Category)
	return options[(i+1)%len(options)]
}

func nextRating(current float64) float64 {
	i := slices.Index(listing.RatingOptions, current)
	return listing.RatingOptions[(i+1)%len(listing.RatingOptions)]
}

func nextSort(current listing.SortOption) listing.SortOption {
	i := slices.IndexFunc(listing.SortOptions, func(c listing.SortChoice) bool {
		return c.Value == current
	})
	return listing.SortOptions[(i+1)%len(listing.SortOptions)].Value
}

// renderProducts renders the filter bar, the visible page, and the pager.
func (m Model) renderProducts() string {
	styles := m.theme.Styles()
	products := m.snapshot.Products

	var b strings.Builder
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	switch {
	case products.Status == state.LoadLoading && len(products.Items) == 0:
		b.WriteString(m.spinner.View() + styles.MutedText.Render(" Loading products..."))
		return b.String()

	case products.Error != "" && len(products.Items) == 0:
		b.WriteString(styles.DangerText.Render("Error: " + products.Error))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Press ctrl+r to try again"))
		return b.String()

	case m.page.Total == 0:
		b.WriteString(styles.Text.Bold(true).Render("No products found"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Try adjusting your filters, or press 0 to reset them"))
		return b.String()
	}

	for i, p := range m.page.Items {
		b.WriteString(m.renderProductRow(p, i == m.productRow))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(showingLabel(m.page.Total, len(m.snapshot.Products.Items))))
	b.WriteString(styles.FaintText.Render("  ·  "))
	b.WriteString(styles.Text.Render(fmt.Sprintf("Page %d of %d", m.page.Number, m.page.TotalPages)))
	return b.String()
}

// renderFilterBar shows the active category, rating, and sort selection.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles()
	f := m.snapshot.Filters

	parts := []string{
		styles.FaintText.Render("Category ") + styles.AccentText.Render(CategoryLabel(f.Category)),
		styles.FaintText.Render("Min rating ") + styles.AccentText.Render(RatingLabel(f.MinRating)),
		styles.FaintText.Render("Sort ") + styles.AccentText.Render(listing.SortLabel(f.SortBy)),
	}
	return strings.Join(parts, styles.FaintText.Render("  │  "))
}

// renderProductRow renders one product card as a single line.
func (m Model) renderProductRow(p catalog.Product, selected bool) string {
	styles := m.theme.Styles()

	cursor := "  "
	if selected {
		cursor = "› "
	}
	fav := "  "
	if m.snapshot.IsFavorite(p.ID) {
		fav = styles.Favorite.Render("♥") + " "
	}
	inCart := ""
	if item, ok := m.snapshot.CartItem(p.ID); ok {
		inCart = styles.SuccessText.Render(fmt.Sprintf("  in cart ×%d", item.Quantity))
	}

	name := pad(truncate(p.Name, nameWidth), nameWidth)
	if selected {
		name = styles.Selected.Render(name)
	} else {
		name = styles.Text.Render(name)
	}

	row := cursor + fav + name + "  " +
		styles.MutedText.Render(pad(truncate(p.Category, categoryWidth), categoryWidth)) + "  " +
		styles.Star.Render(Stars(p.Rating)) + " " +
		styles.FaintText.Render(fmt.Sprintf("%.1f", p.Rating)) + "  " +
		styles.Price.Render(pad(FormatPrice(m.currency, Price(p.Price)), priceWidth)) + " " +
		styles.FaintText.Strikethrough(true).Render(FormatPrice(m.currency, CompareAt(p.Price, cardMarkup))) + " " +
		styles.WarningText.Render(cardDiscount) +
		inCart
	return row
}

// showingLabel summarizes the filtered count, noting the catalog size when
// filters hide part of it.
func showingLabel(filtered, total int) string {
	noun := "products"
	if filtered == 1 {
		noun = "product"
	}
	label := fmt.Sprintf("Showing %d %s", filtered, noun)
	if filtered != total {
		label += fmt.Sprintf(" (filtered from %d total)", total)
	}
	return label
}
