package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/storefront/internal/catalog"
)

// handleFavoritesKey processes keyboard input for the favorites view.
func (m *Model) handleFavoritesKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.ClearAll) {
		if len(m.snapshot.Favorites) > 0 {
			m.report("favorites", m.store.ClearFavorites(), "Favorites cleared")
		}
		return
	}

	favorites := m.snapshot.FavoriteProducts()
	if m.favoriteRow < 0 || m.favoriteRow >= len(favorites) {
		return
	}
	p := favorites[m.favoriteRow]

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.favoriteRow > 0 {
			m.favoriteRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.favoriteRow < len(favorites)-1 {
			m.favoriteRow++
		}
	case key.Matches(msg, m.keys.ToggleFavorite):
		m.toggleFavorite(p)
	case key.Matches(msg, m.keys.AddToCart):
		m.addToCart(p)
	case key.Matches(msg, m.keys.Open):
		m.openDetail(p.ID)
	}
}

// renderFavorites lists favorited products that exist in the catalog.
func (m Model) renderFavorites() string {
	styles := m.theme.Styles()
	favorites := m.snapshot.FavoriteProducts()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("My Favorites"))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %d saved", len(m.snapshot.Favorites))))
	b.WriteString("\n\n")

	if len(favorites) == 0 {
		b.WriteString(styles.MutedText.Render("No favorites yet"))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Press f on a product to save it here"))
		return b.String()
	}

	for i, p := range favorites {
		b.WriteString(m.renderFavoriteRow(p, i == m.favoriteRow))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFavoriteRow(p catalog.Product, selected bool) string {
	styles := m.theme.Styles()

	cursor := "  "
	name := pad(truncate(p.Name, nameWidth), nameWidth)
	if selected {
		cursor = "› "
		name = styles.Selected.Render(name)
	} else {
		name = styles.Text.Render(name)
	}

	row := cursor + styles.Favorite.Render("♥") + " " + name + "  " +
		styles.Star.Render(Stars(p.Rating)) + "  " +
		styles.Price.Render(FormatPrice(m.currency, Price(p.Price)))
	if m.snapshot.IsInCart(p.ID) {
		row += styles.SuccessText.Render("  in cart")
	}
	return row
}
